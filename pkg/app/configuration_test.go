package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kingpin/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lx-s/Mute/pkg/common"
)

func parseConfiguration(t *testing.T, args ...string) Configuration {
	instance := NewConfiguration()
	cmd := kingpin.New("mute", "")
	instance.SetupConfiguration(cmd)

	_, err := cmd.Parse(common.NormalizeArgs(args))
	require.NoError(t, err)

	return instance
}

func TestConfiguration_flagsAreCommutativeAndCaseInsensitive(t *testing.T) {
	expected := parseConfiguration(t, "--silent", "--unmute")

	for _, args := range [][]string{
		{"-silent", "-unmute"},
		{"-unmute", "-silent"},
		{"-SILENT", "-Unmute"},
		{"--Unmute", "--silent"},
	} {
		assert.Equal(t, expected, parseConfiguration(t, args...), "args: %v", args)
	}
}

func TestConfiguration_flagsAreOptionalAndIndependent(t *testing.T) {
	assert.Equal(t, Configuration{}, parseConfiguration(t))
	assert.Equal(t, Configuration{Silent: true}, parseConfiguration(t, "-silent"))
	assert.Equal(t, Configuration{Unmute: true}, parseConfiguration(t, "-unmute"))
}

func TestConfiguration_unknownArgumentsFailTheParse(t *testing.T) {
	instance := NewConfiguration()
	cmd := kingpin.New("mute", "")
	instance.SetupConfiguration(cmd)

	_, err := cmd.Parse(common.NormalizeArgs([]string{"-silent", "-nope"}))

	assert.Error(t, err)
}

func TestConfiguration_loadFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "configuration.yml")
	require.NoError(t, os.WriteFile(fn, []byte("silent: true\n"), 0600))

	instance := NewConfiguration()
	require.NoError(t, instance.loadFromFile(fn, false))

	assert.True(t, instance.Silent)
	assert.False(t, instance.Unmute)
}

func TestConfiguration_loadFromFile_toleratesEmptyFiles(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "configuration.yml")
	require.NoError(t, os.WriteFile(fn, nil, 0600))

	instance := NewConfiguration()
	require.NoError(t, instance.loadFromFile(fn, false))

	assert.Equal(t, NewConfiguration(), instance)
}

func TestConfiguration_loadFromFile_rejectsUnknownKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "configuration.yml")
	require.NoError(t, os.WriteFile(fn, []byte("snilent: true\n"), 0600))

	instance := NewConfiguration()

	assert.Error(t, instance.loadFromFile(fn, false))
}

func TestConfiguration_loadFromFile_absent(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "configuration.yml")

	instance := NewConfiguration()

	assert.NoError(t, instance.loadFromFile(fn, true))
	assert.Error(t, instance.loadFromFile(fn, false))
}

package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_Statusf(t *testing.T) {
	buf := new(bytes.Buffer)
	instance := Reporter{W: buf}

	instance.Statusf("> %s is now %s", "Speakers", "muted")

	assert.Equal(t, "> Speakers is now muted\n", buf.String())
}

func TestReporter_Statusf_silent(t *testing.T) {
	buf := new(bytes.Buffer)
	instance := Reporter{W: buf, Silent: true}

	instance.Statusf("> %s is now %s", "Speakers", "muted")

	assert.Empty(t, buf.String())
}

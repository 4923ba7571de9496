package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lx-s/Mute/pkg/common"
)

func NewConfiguration() Configuration {
	return Configuration{}
}

// Configuration holds everything which influences a run. It is immutable
// once App.Initialize returned.
type Configuration struct {
	Silent bool `yaml:"silent,omitempty"`
	Unmute bool `yaml:"unmute,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("silent", "Don't print any output.").
		Envar("MUTE_SILENT").
		BoolVar(&this.Silent)
	using.Flag("unmute", "Instead of muting, do the opposite.").
		Envar("MUTE_UNMUTE").
		BoolVar(&this.Unmute)
}

func (this *Configuration) loadFrom(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(this); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (this *Configuration) loadFromFile(fn string, ignoreNotFound bool) error {
	f, err := os.Open(fn)
	if os.IsNotExist(err) && ignoreNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open configuration file %q: %w", fn, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := this.loadFrom(f); err != nil {
		return fmt.Errorf("cannot load configuration file %q: %w", fn, err)
	}

	return nil
}

func (this *Configuration) loadDefault(ignoreNotFound bool) error {
	return this.loadFromFile(defaultConfigurationFile(), ignoreNotFound)
}

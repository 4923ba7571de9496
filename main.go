package main

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/native"
	"github.com/echocat/slf4g/native/consumer"
	"github.com/echocat/slf4g/native/facade/value"

	"github.com/lx-s/Mute/pkg/app"
	"github.com/lx-s/Mute/pkg/common"
)

func main() {
	wf := &writerFacade{delegate: os.Stderr}
	consumer.Default = consumer.NewWriter(wf)
	lv := value.NewProvider(native.DefaultProvider)

	a := app.NewApp()
	a.OnSilent = wf.silence

	failed := false
	cmd := kingpin.New(filepath.Base(os.Args[0]), "Mutes or unmutes all active audio output devices.").
		Action(func(*kingpin.ParseContext) error {
			if err := a.Initialize(); err != nil {
				log.WithError(err).
					Error("Cannot initialize.")
				failed = true
				return nil
			}
			defer func() {
				_ = a.Dispose()
			}()

			if err := a.Run(); err != nil {
				log.WithError(err).
					Error("Cannot mute audio endpoints.")
				failed = true
			}
			return nil
		})
	a.SetupConfiguration(cmd)

	cmd.Flag("log.level", "").
		SetValue(lv.Level)
	cmd.Flag("log.format", "").
		Default("text").
		SetValue(lv.Consumer.Formatter)
	cmd.Flag("log.color", "").
		Default("always").
		SetValue(lv.Consumer.Formatter.ColorMode)

	args := common.NormalizeArgs(os.Args[1:])
	if _, err := cmd.Parse(args); err != nil {
		cmd.Errorf("%v", err)
		cmd.Usage(args)
		os.Exit(1)
	}

	if failed {
		os.Exit(1)
	}
}

// writerFacade lets the log output be redirected even after the consumer was
// already created around it.
type writerFacade struct {
	delegate io.Writer
	mutex    sync.RWMutex
}

func (this *writerFacade) Write(p []byte) (n int, err error) {
	this.mutex.RLock()
	defer this.mutex.RUnlock()

	return this.delegate.Write(p)
}

func (this *writerFacade) silence() {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	this.delegate = io.Discard
}

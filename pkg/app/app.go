package app

import (
	"fmt"

	"dario.cat/mergo"
	log "github.com/echocat/slf4g"

	"github.com/lx-s/Mute/pkg/audio"
	"github.com/lx-s/Mute/pkg/common"
	"github.com/lx-s/Mute/pkg/console"
)

// Stack is the capability surface of the platform audio subsystem used by
// App. Satisfied by audio.Stack.
type Stack interface {
	SetupConfiguration(common.FlagHolder)
	Initialize() error
	Dispose() error
	FindEndpoints() (audio.Endpoints, error)
}

func NewApp() *App {
	return &App{
		AudioStack: &audio.Stack{},
		config:     NewConfiguration(),
	}
}

type App struct {
	AudioStack Stack
	Reporter   Reporter

	// ConfigurationFile overrides the default configuration file location.
	// If set, the file has to exist.
	ConfigurationFile string

	// OnSilent is called once if the effective configuration requests full
	// silence; the hosting binary silences its log output here.
	OnSilent func()

	configFromFlags Configuration
	config          Configuration
}

func (this *App) SetupConfiguration(using common.FlagHolder) {
	this.AudioStack.SetupConfiguration(using)
	this.configFromFlags.SetupConfiguration(using)

	using.Flag("configuration", "Defines the file from which the configuration should be loaded.").
		Short('c').
		Envar("MUTE_CONFIGURATION").
		StringVar(&this.ConfigurationFile)
}

func (this *App) Initialize() (rErr error) {
	success := false
	defer func() {
		if !success {
			if err := this.Dispose(); err != nil && rErr == nil {
				rErr = err
			}
		}
	}()

	if err := this.loadConfiguration(); err != nil {
		return err
	}

	if this.config.Silent {
		this.Reporter.Silent = true
		if f := this.OnSilent; f != nil {
			f()
		}
	}

	if err := console.Prepare(); err != nil {
		log.WithError(err).
			Debug("Cannot prepare console; continue with its defaults.")
	}

	if err := this.AudioStack.Initialize(); err != nil {
		return err
	}

	success = true
	return nil
}

func (this *App) loadConfiguration() error {
	if fn := this.ConfigurationFile; fn != "" {
		if err := this.config.loadFromFile(fn, false); err != nil {
			return err
		}
	} else if err := this.config.loadDefault(true); err != nil {
		return err
	}
	return mergo.Merge(&this.config, this.configFromFlags)
}

// Run executes one mute (or unmute) pass over all active audio rendering
// endpoints. A failing enumeration aborts the run; a failing endpoint only
// skips this endpoint.
func (this *App) Run() error {
	endpoints, err := this.AudioStack.FindEndpoints()
	if err != nil {
		return fmt.Errorf("cannot find audio endpoints: %w", err)
	}
	defer func() {
		_ = endpoints.Close()
	}()

	if endpoints.IsZero() {
		log.Debug("No active audio endpoints present; nothing to do.")
		return nil
	}

	desired := !this.config.Unmute
	for i, candidate := range endpoints {
		this.ensureEndpoint(uint32(i), candidate, desired)
	}

	return nil
}

func (this *App) ensureEndpoint(index uint32, of audio.Endpoint, desired bool) {
	l := log.With("endpoint", index)

	name, err := of.FriendlyName()
	if err != nil {
		l.WithError(err).
			Warn("Cannot resolve name of audio endpoint; skipping this endpoint.")
		return
	}
	l = l.With("name", name)

	this.Reporter.Statusf("Found audio endpoint %q", name)
	this.logSessions(l, of)

	volume, err := of.Volume()
	if err != nil {
		l.WithError(err).
			Warn("Cannot acquire volume control of audio endpoint; skipping this endpoint.")
		return
	}
	defer func() {
		_ = volume.Close()
	}()

	muted, err := volume.Muted()
	if err != nil {
		l.WithError(err).
			Warn("Cannot get mute status of audio endpoint; skipping this endpoint.")
		return
	}

	if muted == desired {
		this.Reporter.Statusf("> %s is already %s.", name, mutedString(desired))
		return
	}

	if err := volume.SetMuted(desired); err != nil {
		l.WithError(err).
			Warn("Cannot set mute status of audio endpoint.")
		return
	}

	this.Reporter.Statusf("> %s is now %s", name, mutedString(desired))
}

func (this *App) logSessions(l log.Logger, of audio.Endpoint) {
	if !l.IsDebugEnabled() {
		return
	}
	sessions, err := of.Sessions()
	if err != nil {
		l.WithError(err).
			Debug("Cannot introspect audio sessions of endpoint.")
		return
	}
	l.With("sessions", sessions).
		Debug("Active audio sessions of endpoint discovered.")
}

func (this *App) Dispose() error {
	return this.AudioStack.Dispose()
}

func mutedString(muted bool) string {
	if muted {
		return "muted"
	}
	return "unmuted"
}

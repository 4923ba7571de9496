package audio

// Endpoint is an opaque handle to one active audio rendering device. The
// device itself is owned by the platform; an Endpoint only reads its name,
// lists its sessions and reads/writes its mute flag.
type Endpoint interface {
	// FriendlyName resolves the human-readable display name of the device.
	FriendlyName() (string, error)

	// Volume acquires the volume control of the device. The caller owns the
	// result and has to Close it.
	Volume() (VolumeControl, error)

	// Sessions lists the currently active audio sessions of the device.
	Sessions() (Sessions, error)

	Close() error
}

type VolumeControl interface {
	Muted() (bool, error)
	SetMuted(muted bool) error
	Close() error
}

type Endpoints []Endpoint

func (this Endpoints) IsZero() bool {
	return len(this) <= 0
}

func (this Endpoints) HasContent() bool {
	return !this.IsZero()
}

// Close closes every contained endpoint and returns the first error
// encountered, after all of them were closed.
func (this Endpoints) Close() (rErr error) {
	for _, v := range this {
		if err := v.Close(); err != nil && rErr == nil {
			rErr = err
		}
	}
	return
}

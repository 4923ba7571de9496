//go:build windows

package audio

import (
	"fmt"

	"github.com/moutend/go-wca/pkg/wca"
)

type endpoint struct {
	device *wca.IMMDevice
	index  uint32
}

func (this *endpoint) FriendlyName() (string, error) {
	var propertyStore *wca.IPropertyStore
	if err := this.device.OpenPropertyStore(wca.STGM_READ, &propertyStore); err != nil {
		return "", fmt.Errorf("cannot get properties of audio endpoint #%d: %w", this.index, err)
	}
	defer propertyStore.Release()

	var name wca.PROPVARIANT
	if err := propertyStore.GetValue(&wca.PKEY_Device_FriendlyName, &name); err != nil {
		return "", fmt.Errorf("cannot get name of audio endpoint #%d: %w", this.index, err)
	}

	return name.String(), nil
}

func (this *endpoint) Volume() (VolumeControl, error) {
	// Acquiring the session stack first; devices whose session stack is
	// broken should be reported before their volume interface is touched.
	var sessionManager *wca.IAudioSessionManager2
	if err := this.device.Activate(wca.IID_IAudioSessionManager2, wca.CLSCTX_ALL, nil, &sessionManager); err != nil {
		return nil, fmt.Errorf("cannot get session manager of audio endpoint #%d: %w", this.index, err)
	}
	defer sessionManager.Release()

	var sessionEnumerator *wca.IAudioSessionEnumerator
	if err := sessionManager.GetSessionEnumerator(&sessionEnumerator); err != nil {
		return nil, fmt.Errorf("cannot get session control of audio endpoint #%d: %w", this.index, err)
	}
	sessionEnumerator.Release()

	var endpointVolume *wca.IAudioEndpointVolume
	if err := this.device.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &endpointVolume); err != nil {
		return nil, fmt.Errorf("cannot activate endpoint volume of audio endpoint #%d: %w", this.index, err)
	}

	return &volumeControl{endpointVolume}, nil
}

func (this *endpoint) Close() error {
	if v := this.device; v != nil {
		v.Release()
		this.device = nil
	}
	return nil
}

type volumeControl struct {
	handle *wca.IAudioEndpointVolume
}

func (this *volumeControl) Muted() (bool, error) {
	var muted bool
	if err := this.handle.GetMute(&muted); err != nil {
		return false, fmt.Errorf("cannot get mute status: %w", err)
	}
	return muted, nil
}

func (this *volumeControl) SetMuted(muted bool) error {
	if err := this.handle.SetMute(muted, nil); err != nil {
		return fmt.Errorf("cannot set mute status: %w", err)
	}
	return nil
}

func (this *volumeControl) Close() error {
	if v := this.handle; v != nil {
		v.Release()
		this.handle = nil
	}
	return nil
}

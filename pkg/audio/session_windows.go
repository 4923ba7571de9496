//go:build windows

package audio

import (
	"fmt"
	"unsafe"

	"github.com/moutend/go-wca/pkg/wca"
)

func (this *endpoint) Sessions() (result Sessions, _ error) {
	var sessionManager *wca.IAudioSessionManager2
	if err := this.device.Activate(wca.IID_IAudioSessionManager2, wca.CLSCTX_ALL, nil, &sessionManager); err != nil {
		return nil, fmt.Errorf("cannot get session manager of audio endpoint #%d: %w", this.index, err)
	}
	defer sessionManager.Release()

	var enumerator *wca.IAudioSessionEnumerator
	if err := sessionManager.GetSessionEnumerator(&enumerator); err != nil {
		return nil, fmt.Errorf("cannot get audio sessions of audio endpoint #%d: %w", this.index, err)
	}
	defer enumerator.Release()

	var count int
	if err := enumerator.GetCount(&count); err != nil {
		return nil, fmt.Errorf("cannot get count of audio sessions of audio endpoint #%d: %w", this.index, err)
	}

	for i := 0; i < count; i++ {
		session, ok, err := this.introspectSessionOf(enumerator, i)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, session)
		}
	}

	result.ResolveHolderNames()
	return
}

func (this *endpoint) introspectSessionOf(sessions *wca.IAudioSessionEnumerator, sessionIndex int) (Session, bool, error) {
	var sessionControl *wca.IAudioSessionControl
	if err := sessions.GetSession(sessionIndex, &sessionControl); err != nil {
		return Session{}, false, fmt.Errorf("cannot get audio session %d of audio endpoint #%d: %w", sessionIndex, this.index, err)
	}
	defer sessionControl.Release()

	return this.introspectSession(sessionControl, sessionIndex)
}

func (this *endpoint) introspectSession(sessionControl *wca.IAudioSessionControl, sessionIndex int) (Session, bool, error) {
	dispatch, err := sessionControl.QueryInterface(wca.IID_IAudioSessionControl2)
	if err != nil {
		return Session{}, false, fmt.Errorf("cannot get audio session control %d of audio endpoint #%d: %w", sessionIndex, this.index, err)
	}
	sessionControl2 := (*wca.IAudioSessionControl2)(unsafe.Pointer(dispatch))
	defer sessionControl2.Release()

	var pid uint32
	// Exclude the system sound session
	if err := sessionControl2.IsSystemSoundsSession(); err == nil {
		return Session{}, false, nil
	} else if err.Error() == "Incorrect function." {
		if err := sessionControl2.GetProcessId(&pid); err != nil {
			return Session{}, false, fmt.Errorf("cannot get PID of process which holds session %d of audio endpoint #%d: %w", sessionIndex, this.index, err)
		}
	} else {
		return Session{}, false, fmt.Errorf("cannot determine if audio session %d of audio endpoint #%d is a system session or not: %w", sessionIndex, this.index, err)
	}

	var state uint32
	if err := sessionControl.GetState(&state); err != nil {
		return Session{}, false, fmt.Errorf("cannot get state of audio session %d of audio endpoint #%d: %w", sessionIndex, this.index, err)
	}
	switch state {
	case 1:
		return Session{
			HolderPid: pid,
		}, true, nil
	default:
		return Session{}, false, nil
	}
}

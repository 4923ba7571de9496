//go:build !windows

package audio

import "fmt"

type Stack struct{}

func (this *Stack) Initialize() error {
	return nil
}

func (this *Stack) Dispose() error {
	return nil
}

func (this *Stack) FindEndpoints() (Endpoints, error) {
	return nil, fmt.Errorf("audio endpoints are only supported on windows")
}

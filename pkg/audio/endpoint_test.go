package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closableEndpoint struct {
	closeErr error
	closed   bool
}

func (this *closableEndpoint) FriendlyName() (string, error) {
	return "test", nil
}

func (this *closableEndpoint) Volume() (VolumeControl, error) {
	return nil, errors.New("not supported")
}

func (this *closableEndpoint) Sessions() (Sessions, error) {
	return nil, nil
}

func (this *closableEndpoint) Close() error {
	this.closed = true
	return this.closeErr
}

func TestEndpoints_Close_closesEveryEndpoint(t *testing.T) {
	expectedErr := errors.New("expected")
	e1 := &closableEndpoint{}
	e2 := &closableEndpoint{closeErr: expectedErr}
	e3 := &closableEndpoint{}
	instance := Endpoints{e1, e2, e3}

	actualErr := instance.Close()

	assert.Equal(t, expectedErr, actualErr)
	assert.True(t, e1.closed)
	assert.True(t, e2.closed)
	assert.True(t, e3.closed)
}

func TestEndpoints_IsZero(t *testing.T) {
	assert.True(t, Endpoints{}.IsZero())
	assert.True(t, Endpoints(nil).IsZero())
	assert.False(t, Endpoints{&closableEndpoint{}}.IsZero())
}

func TestEndpoints_HasContent(t *testing.T) {
	assert.False(t, Endpoints{}.HasContent())
	assert.True(t, Endpoints{&closableEndpoint{}}.HasContent())
}

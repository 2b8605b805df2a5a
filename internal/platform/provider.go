package platform

import (
	"errors"
)

// Provider bundles the UI backends a frame is driven with.
type Provider struct {
	Input  Input
	Drawer Drawer
}

// ErrUnsupported is returned when no UI backend has been registered.
var ErrUnsupported = errors.New("no UI backend registered; import a backend such as internal/platform/headless")

// NewProviderFunc is set by backend packages via init().
// See internal/platform/headless for the default registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider from the registered backend.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

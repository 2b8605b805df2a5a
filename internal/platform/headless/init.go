package headless

import "github.com/mj1618/dockyard/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Input:  NewInput(),
			Drawer: NewRecorder(),
		}, nil
	}
}

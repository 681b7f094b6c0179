package internal

import "github.com/theyemeni/client-app-sdk/pkg/webmsg"

// Lifecycle notifies the host of client application lifecycle transitions.
type Lifecycle struct {
	ch *webmsg.Channel
}

// Bootstrapped tells the host the application has finished initializing
// and is ready to be shown.
func (f *Lifecycle) Bootstrapped() error {
	return f.ch.Post("bootstrapped", nil)
}

// Stopped tells the host the application has finished its shutdown work
// and may be torn down.
func (f *Lifecycle) Stopped() error {
	return f.ch.Post("stopped", nil)
}

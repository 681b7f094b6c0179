package webmsg

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Protocol identifies messages produced by this SDK so the host frame can
// discriminate them from unrelated cross-window traffic.
const Protocol = "purecloud-client-apps"

// ErrNoSender is returned when a channel is used before a transport has
// been attached. Resolution and construction still succeed without one;
// only outbound calls fail.
var ErrNoSender = errors.New("webmsg: no sender configured")

// Config is the channel configuration shared by every capability facade of
// a client application instance. It is built once during construction and
// must be treated as read-only afterwards.
type Config struct {
	// TargetOrigin is the only origin outbound messages may be delivered
	// to and the only origin inbound messages may be accepted from.
	TargetOrigin string
}

// Envelope is the outbound message shape handed to the transport.
type Envelope struct {
	Protocol      string         `json:"protocol"`
	Action        string         `json:"action"`
	CorrelationID string         `json:"correlationId"`
	Payload       map[string]any `json:"payload,omitempty"`
}

// Sender delivers envelopes to the host frame. Implementations live outside
// this module (a browser postMessage bridge in production, a fake in tests)
// and must enforce targetOrigin on every delivery.
type Sender interface {
	Post(targetOrigin string, e Envelope) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(targetOrigin string, e Envelope) error

func (f SenderFunc) Post(targetOrigin string, e Envelope) error {
	return f(targetOrigin, e)
}

// Channel binds a channel configuration to a sender and stamps every
// outbound message with the protocol marker and a fresh correlation id.
type Channel struct {
	cfg    *Config
	sender Sender
}

// NewChannel creates a channel over the given configuration.
// A nil sender produces a channel whose calls fail with ErrNoSender.
func NewChannel(cfg *Config, sender Sender) *Channel {
	return &Channel{cfg: cfg, sender: sender}
}

// Config returns the shared channel configuration.
func (c *Channel) Config() *Config {
	return c.cfg
}

// Post builds an envelope for the action and delivers it to the host frame
// at the configured target origin.
func (c *Channel) Post(action string, payload map[string]any) error {
	if c.sender == nil {
		return ErrNoSender
	}
	e := Envelope{
		Protocol:      Protocol,
		Action:        action,
		CorrelationID: uuid.NewString(),
		Payload:       payload,
	}
	if err := c.sender.Post(c.cfg.TargetOrigin, e); err != nil {
		return fmt.Errorf("webmsg: posting %q: %w", action, err)
	}
	return nil
}

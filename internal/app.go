package internal

import (
	"log/slog"

	"github.com/theyemeni/client-app-sdk/pkg/environments"
	"github.com/theyemeni/client-app-sdk/pkg/logger"
	"github.com/theyemeni/client-app-sdk/pkg/webmsg"
)

// App is one client application instance: the resolved channel
// configuration plus the capability facades that share it.
// App is immutable after creation - all configuration is done via New().
type App struct {
	// Resolution inputs, collapsed to one mode in New.
	location        Location
	catalog         *environments.Catalog
	queryParam      string
	environmentHint string
	originHint      string
	queryParamSet   bool
	environmentSet  bool
	originSet       bool

	// Channel state after successful construction.
	cfg         *webmsg.Config
	environment string

	// Collaborators.
	sender webmsg.Sender
	logger *slog.Logger

	// Capability facades, all holding the same channel.
	alerting         *Alerting
	lifecycle        *Lifecycle
	coreUI           *CoreUI
	users            *Users
	conversations    *Conversations
	externalContacts *ExternalContacts
	directory        *Directory
}

// New creates a client application with the given options.
//
// Construction is atomic: either the environment resolves to exactly one
// target origin and every facade is created around that configuration, or
// a *ConfigurationError is returned and nothing is created.
func New(opts ...Option) (*App, error) {
	a := &App{
		catalog: environments.Builtin(),
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(a)
	}

	res, err := resolve(a.resolutionInput(), a.catalog, a.location)
	if err != nil {
		return nil, err
	}

	a.cfg = &webmsg.Config{TargetOrigin: res.targetOrigin}
	a.environment = res.environment

	ch := webmsg.NewChannel(a.cfg, a.sender)
	a.alerting = &Alerting{ch: ch}
	a.lifecycle = &Lifecycle{ch: ch}
	a.coreUI = &CoreUI{ch: ch}
	a.users = &Users{ch: ch}
	a.conversations = &Conversations{ch: ch}
	a.externalContacts = &ExternalContacts{ch: ch}
	a.directory = &Directory{ch: ch}

	a.logger.Debug("channel established",
		slog.String("target_origin", res.targetOrigin),
		slog.String("environment", res.environment),
	)

	return a, nil
}

// resolutionInput collapses the declared options into exactly one input,
// honoring the documented precedence: query parameter, then explicit
// environment, then explicit origin, then default.
func (a *App) resolutionInput() resolutionInput {
	switch {
	case a.queryParamSet:
		return resolutionInput{mode: modeQueryParam, value: a.queryParam}
	case a.environmentSet:
		return resolutionInput{mode: modeEnvironment, value: a.environmentHint}
	case a.originSet:
		return resolutionInput{mode: modeOrigin, value: a.originHint}
	default:
		return resolutionInput{mode: modeNone}
	}
}

// Environment returns the resolved short environment identifier, or the
// empty string when a custom origin bypassed catalog validation.
func (a *App) Environment() string {
	return a.environment
}

// TargetOrigin returns the origin all facades are bound to.
func (a *App) TargetOrigin() string {
	return a.cfg.TargetOrigin
}

// Config returns the shared channel configuration.
// Facades hold the same pointer; treat it as read-only.
func (a *App) Config() *webmsg.Config {
	return a.cfg
}

// Alerting returns the alerting facade.
func (a *App) Alerting() *Alerting {
	return a.alerting
}

// Lifecycle returns the lifecycle facade.
func (a *App) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// CoreUI returns the core UI facade.
func (a *App) CoreUI() *CoreUI {
	return a.coreUI
}

// Users returns the users facade.
func (a *App) Users() *Users {
	return a.users
}

// Conversations returns the conversations facade.
func (a *App) Conversations() *Conversations {
	return a.conversations
}

// ExternalContacts returns the external contacts facade.
func (a *App) ExternalContacts() *ExternalContacts {
	return a.externalContacts
}

// Directory returns the directory facade.
func (a *App) Directory() *Directory {
	return a.directory
}

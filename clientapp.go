package clientapp

import (
	"log/slog"

	"github.com/theyemeni/client-app-sdk/internal"
	"github.com/theyemeni/client-app-sdk/pkg/environments"
	"github.com/theyemeni/client-app-sdk/pkg/logger"
	"github.com/theyemeni/client-app-sdk/pkg/webmsg"
)

// Type aliases - public API
type (
	// App is one client application instance: the resolved channel
	// configuration plus the capability facades that share it.
	App = internal.App

	// Option configures the client application.
	Option = internal.Option

	// ConfigurationError reports that construction could not produce
	// exactly one valid target origin.
	ConfigurationError = internal.ConfigurationError

	// Location provides the embedding page's query string to the
	// environment resolver.
	Location = internal.Location

	// StaticLocation is a Location with a fixed query string.
	StaticLocation = internal.StaticLocation

	// Alerting surfaces attention-grabbing popups in the host UI.
	Alerting = internal.Alerting

	// Lifecycle notifies the host of lifecycle transitions.
	Lifecycle = internal.Lifecycle

	// CoreUI drives shared chrome in the host UI.
	CoreUI = internal.CoreUI

	// Users opens user-centric views in the host UI.
	Users = internal.Users

	// Conversations opens interaction-centric views in the host UI.
	Conversations = internal.Conversations

	// ExternalContacts opens external-relationship views in the host UI.
	ExternalContacts = internal.ExternalContacts

	// Directory opens org-directory views in the host UI.
	Directory = internal.Directory

	// ToastOption configures a toast popup.
	ToastOption = internal.ToastOption

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add instance-scoped values to logs.
	ContextExtractor = logger.ContextExtractor

	// Catalog is a read-only table of known environments.
	Catalog = environments.Catalog

	// EnvironmentDescriptor identifies one known deployment environment.
	EnvironmentDescriptor = environments.Descriptor

	// ChannelConfig is the channel configuration shared by every facade.
	ChannelConfig = webmsg.Config

	// Sender delivers envelopes to the host frame.
	Sender = webmsg.Sender

	// SenderFunc adapts a function to the Sender interface.
	SenderFunc = webmsg.SenderFunc
)

// Toast types understood by the host UI.
const (
	ToastInfo    = internal.ToastInfo
	ToastSuccess = internal.ToastSuccess
	ToastError   = internal.ToastError
)

// New creates a client application with the given options.
//
// Exactly one of WithEnvironmentQueryParam, WithEnvironment, or WithOrigin
// selects the target environment; with none of them the default catalog
// environment is used. Construction is atomic: it either returns a fully
// formed application whose facades all share one channel configuration, or
// a *ConfigurationError and no application at all.
//
// Example:
//
//	app, err := clientapp.New(
//	    clientapp.WithEnvironmentQueryParam("pcEnvironment"),
//	    clientapp.WithLocation(loc),
//	    clientapp.WithSender(bridge),
//	)
//	if err != nil {
//	    return err
//	}
//	_ = app.Lifecycle().Bootstrapped()
func New(opts ...Option) (*App, error) {
	return internal.New(opts...)
}

// App options

// WithEnvironmentQueryParam declares the name of a query-string parameter
// on the embedding page that carries the environment hint.
// Takes precedence over WithEnvironment and WithOrigin.
func WithEnvironmentQueryParam(name string) Option {
	return internal.WithEnvironmentQueryParam(name)
}

// WithEnvironment declares an explicit environment identifier, validated
// against the catalog with fuzzy matching (case-insensitive ids, full
// origins, and legacy aliases are accepted).
func WithEnvironment(id string) Option {
	return internal.WithEnvironment(id)
}

// WithOrigin declares an explicit target origin, bypassing catalog
// validation entirely. Applications built this way report no environment
// id from Environment().
func WithOrigin(origin string) Option {
	return internal.WithOrigin(origin)
}

// WithLocation injects the page location used by query-parameter
// resolution. Required when WithEnvironmentQueryParam is used.
func WithLocation(loc Location) Option {
	return internal.WithLocation(loc)
}

// WithCatalog replaces the builtin environment catalog, e.g. one loaded
// with environments.LoadFS for a private deployment.
func WithCatalog(c *Catalog) Option {
	return internal.WithCatalog(c)
}

// WithSender attaches the transport that delivers messages to the host
// frame. Without one, facade calls fail with webmsg.ErrNoSender.
func WithSender(s Sender) Option {
	return internal.WithSender(s)
}

// WithLogger creates a diagnostics logger with a component name and
// optional context extractors. The component name is added to every entry
// for easy filtering.
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom diagnostics logger.
//
// Example:
//
//	customLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	clientapp.New(
//	    clientapp.WithCustomLogger(customLogger),
//	)
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// Toast options

// WithToastID tags the toast so later calls with the same id replace it
// instead of stacking a new popup.
func WithToastID(id string) ToastOption {
	return internal.WithToastID(id)
}

// WithToastType sets the toast type (ToastInfo, ToastSuccess, ToastError).
func WithToastType(t string) ToastOption {
	return internal.WithToastType(t)
}

// WithToastTimeout sets how many seconds the toast stays up.
// Zero keeps it up until the user dismisses it.
func WithToastTimeout(seconds int) ToastOption {
	return internal.WithToastTimeout(seconds)
}

// WithMarkdownMessage renders the toast message as markdown.
func WithMarkdownMessage() ToastOption {
	return internal.WithMarkdownMessage()
}

// Error helpers

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	return internal.IsConfigurationError(err)
}

// AsConfigurationError extracts the ConfigurationError from an error if
// present. Returns nil otherwise.
func AsConfigurationError(err error) *ConfigurationError {
	return internal.AsConfigurationError(err)
}

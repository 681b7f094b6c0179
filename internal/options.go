package internal

import (
	"log/slog"

	"github.com/theyemeni/client-app-sdk/pkg/environments"
	"github.com/theyemeni/client-app-sdk/pkg/logger"
	"github.com/theyemeni/client-app-sdk/pkg/webmsg"
)

// Option configures the client application.
type Option func(*App)

// WithEnvironmentQueryParam declares the name of a query-string parameter
// on the embedding page that carries the environment hint.
// Takes precedence over WithEnvironment and WithOrigin.
func WithEnvironmentQueryParam(name string) Option {
	return func(a *App) {
		a.queryParam = name
		a.queryParamSet = true
	}
}

// WithEnvironment declares an explicit environment identifier, validated
// against the catalog with fuzzy matching.
func WithEnvironment(id string) Option {
	return func(a *App) {
		a.environmentHint = id
		a.environmentSet = true
	}
}

// WithOrigin declares an explicit target origin, bypassing catalog
// validation entirely. The caller gives up the known-environment guarantee;
// Environment() reports no id for applications built this way.
func WithOrigin(origin string) Option {
	return func(a *App) {
		a.originHint = origin
		a.originSet = true
	}
}

// WithLocation injects the page location used by query-parameter
// resolution.
func WithLocation(loc Location) Option {
	return func(a *App) {
		a.location = loc
	}
}

// WithCatalog replaces the builtin environment catalog.
func WithCatalog(c *environments.Catalog) Option {
	return func(a *App) {
		if c != nil {
			a.catalog = c
		}
	}
}

// WithSender attaches the transport that delivers messages to the host
// frame. Without one, facade calls fail with webmsg.ErrNoSender.
func WithSender(s webmsg.Sender) Option {
	return func(a *App) {
		a.sender = s
	}
}

// WithLogger creates a diagnostics logger with a component name and
// optional context extractors. The component name is added to every entry.
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(extractors...).With(slog.String("component", component))
	}
}

// WithCustomLogger sets a fully custom diagnostics logger.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

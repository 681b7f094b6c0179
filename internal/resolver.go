package internal

import (
	"net/url"
	"strings"

	"github.com/theyemeni/client-app-sdk/pkg/environments"
)

// Location provides access to the embedding page's address. It is injected
// rather than read from a global so resolution is testable outside a
// browser context.
type Location interface {
	// RawQuery returns the page's query string without the leading "?".
	RawQuery() string
}

// StaticLocation is a Location with a fixed query string.
// Useful in tests and server-side rendering.
type StaticLocation string

func (l StaticLocation) RawQuery() string {
	return string(l)
}

// resolutionMode enumerates the mutually exclusive ways a caller can
// declare which environment to talk to.
type resolutionMode int

const (
	modeNone resolutionMode = iota
	modeQueryParam
	modeEnvironment
	modeOrigin
)

// resolutionInput carries exactly one declared input.
// Illegal combinations are unrepresentable: options collapse to a single
// input before resolution runs.
type resolutionInput struct {
	mode  resolutionMode
	value string
}

// resolution is the outcome of a successful resolve: exactly one of a
// catalog descriptor or a caller-supplied custom origin.
type resolution struct {
	targetOrigin string
	environment  string // short id; empty for a custom origin
}

// resolve turns a resolution input into a target origin against the given
// catalog. Every failure is a *ConfigurationError.
func resolve(in resolutionInput, catalog *environments.Catalog, loc Location) (resolution, error) {
	switch in.mode {
	case modeQueryParam:
		return resolveQueryParam(in.value, catalog, loc)

	case modeEnvironment:
		id := strings.TrimSpace(in.value)
		if id == "" {
			return resolution{}, newConfigError("environment cannot be blank")
		}
		d, ok := catalog.Lookup(id, true)
		if !ok {
			return resolution{}, newConfigError("unknown environment %q", id)
		}
		return resolution{targetOrigin: d.Origin, environment: d.ID}, nil

	case modeOrigin:
		origin := strings.TrimSpace(in.value)
		if origin == "" {
			return resolution{}, newConfigError("origin cannot be blank")
		}
		// The caller explicitly opts out of catalog validation here; the
		// origin is taken verbatim and no environment id is recorded.
		return resolution{targetOrigin: origin}, nil

	default:
		d := catalog.Default()
		return resolution{targetOrigin: d.Origin, environment: d.ID}, nil
	}
}

func resolveQueryParam(param string, catalog *environments.Catalog, loc Location) (resolution, error) {
	param = strings.TrimSpace(param)
	if param == "" {
		return resolution{}, newConfigError("environment query parameter name cannot be blank")
	}
	if loc == nil {
		return resolution{}, newConfigError("no page location available to read query parameter %q", param)
	}

	values, err := url.ParseQuery(loc.RawQuery())
	if err != nil {
		return resolution{}, &ConfigurationError{
			Err:    err,
			Reason: "malformed page query string",
		}
	}

	hints := values[param]
	switch {
	case len(hints) == 0:
		return resolution{}, newConfigError("query parameter %q not found", param)
	case len(hints) > 1:
		return resolution{}, newConfigError("query parameter %q is ambiguous: %d values", param, len(hints))
	}

	d, ok := catalog.Lookup(hints[0], true)
	if !ok {
		return resolution{}, newConfigError("query parameter %q names unknown environment %q", param, hints[0])
	}
	return resolution{targetOrigin: d.Origin, environment: d.ID}, nil
}

// Package clientapp is an SDK for web applications embedded inside a
// hosting platform window. It resolves which deployment environment the
// embedded application is allowed to talk to, validates that environment
// against a catalog of known origins, and hands every capability facade
// (alerting, lifecycle, UI, users, conversations, external contacts,
// directory) the same immutable channel configuration.
//
// # Environment resolution
//
// Exactly one resolution input is honored per construction, checked in
// this order:
//
//   - WithEnvironmentQueryParam(name): the environment hint is read from
//     the embedding page's query string. The parameter must be present
//     exactly once and must name a known environment.
//   - WithEnvironment(id): an explicit identifier, matched against the
//     catalog fuzzily (case-insensitive, full origins, legacy aliases).
//   - WithOrigin(origin): an explicit origin taken verbatim, with no
//     catalog validation. The caller opts out of the known-environment
//     guarantee and Environment() reports no id.
//   - none of the above: the catalog's default environment.
//
// Any failure surfaces as a *ConfigurationError from New; there is no
// partially constructed application.
//
// # Talking to the host
//
// Facades post protocol envelopes through the transport attached with
// WithSender. The transport is outside this module; it must deliver every
// envelope to, and accept replies only from, the configured target origin.
//
//	app, err := clientapp.New(
//	    clientapp.WithEnvironment("mypurecloud.ie"),
//	    clientapp.WithSender(bridge),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = app.Lifecycle().Bootstrapped()
//	_ = app.Alerting().ShowToast("Saved", "Your changes are live",
//	    clientapp.WithToastType(clientapp.ToastSuccess),
//	)
//
// Construction is a single synchronous call and each application instance
// owns its configuration and facades exclusively; the environment catalog
// is the only shared state and it is immutable.
package clientapp

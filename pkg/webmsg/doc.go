// Package webmsg provides the cross-window message primitives shared by
// the SDK's capability facades: the immutable channel configuration, the
// outbound envelope shape, and the Sender seam the transport plugs into.
//
// The package deliberately knows nothing about request/response
// correlation, retries, or per-capability payload schemas; those belong to
// the transport and to the host application.
package webmsg

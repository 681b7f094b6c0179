// Package environments holds the authoritative mapping from short
// environment identifiers to hosting-platform origins.
//
// The catalog is static configuration data embedded at build time and is
// never mutated at runtime, which makes it safe to share across client
// application instances without synchronization.
//
// # Lookup
//
// Lookup supports an exact mode for verbatim identifiers and a fuzzy mode
// for the hint shapes callers have historically supplied:
//
//	cat := environments.Builtin()
//
//	d, ok := cat.Lookup("mypurecloud.com", false)          // exact id
//	d, ok = cat.Lookup("MyPureCloud.COM", true)            // case-insensitive
//	d, ok = cat.Lookup("https://apps.mypurecloud.com", true) // full origin
//	d, ok = cat.Lookup("use2.us-gov-pure.cloud", true)     // regional prefix
//
// A miss is reported through the second return value; Lookup itself never
// returns an error.
//
// # Custom catalogs
//
// Deployments with a private environment set can load their own catalog
// from any fs.FS:
//
//	cat, err := environments.LoadFS(configFS, "environments.yaml")
package environments

package clientapp

// Name is the library's human-readable name.
const Name = "client-app-sdk"

// Version is the library version, set at build time for release builds.
const Version = "1.0.0"

// About returns the "library name vX.Y.Z" descriptor.
func About() string {
	return Name + " v" + Version
}

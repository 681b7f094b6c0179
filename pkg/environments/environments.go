package environments

import (
	_ "embed"
	"strings"
)

//go:embed catalog.yaml
var builtinYAML []byte

// builtin is parsed once at package load; the file is part of the build,
// so a parse failure is a programming error, not a runtime condition.
var builtin = mustParse(builtinYAML)

// Descriptor identifies one known deployment environment of the hosting
// platform. Descriptors are immutable values; the full set is fixed at
// build time.
type Descriptor struct {
	// ID is the short environment identifier, conventionally the
	// environment's top-level domain (e.g. "mypurecloud.com").
	ID string `yaml:"id"`

	// Origin is the fully qualified scheme+host origin of the hosting
	// apps domain for this environment.
	Origin string `yaml:"origin"`

	// Region is informational (e.g. "us-east-1").
	Region string `yaml:"region,omitempty"`

	// Aliases are additional identifiers accepted by fuzzy lookup.
	Aliases []string `yaml:"aliases,omitempty"`
}

// Catalog is a read-only table of known environments.
// It is safe for unsynchronized concurrent reads.
type Catalog struct {
	byID      map[string]int
	ordered   []Descriptor
	defaultID string
}

// Builtin returns the compiled-in catalog.
func Builtin() *Catalog {
	return builtin
}

// Default returns the designated default environment.
func (c *Catalog) Default() Descriptor {
	return c.ordered[c.byID[c.defaultID]]
}

// All returns the descriptors in catalog order.
// The returned slice is a copy and may be modified freely.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Lookup resolves an environment identifier to its descriptor.
//
// In exact mode (fuzzy=false) only a verbatim ID match is accepted.
// Fuzzy mode additionally accepts the historically supported hint shapes:
// case-insensitive ids, configured aliases, a full origin/URL or host that
// ends with a known id, and a hint carrying an extra leading regional DNS
// label. The second return value reports whether a descriptor matched;
// Lookup never fails in any other way.
func (c *Catalog) Lookup(query string, fuzzy bool) (Descriptor, bool) {
	if i, ok := c.byID[query]; ok {
		return c.ordered[i], true
	}
	if !fuzzy {
		return Descriptor{}, false
	}

	q := normalize(query)
	if q == "" {
		return Descriptor{}, false
	}
	if i, ok := c.byID[q]; ok {
		return c.ordered[i], true
	}

	for _, d := range c.ordered {
		for _, alias := range d.Aliases {
			if q == normalize(alias) {
				return d, true
			}
		}
	}

	// Hints shaped like a full origin or host: match on the id suffix,
	// e.g. "https://apps.mypurecloud.com" collapses to "mypurecloud.com".
	for _, d := range c.ordered {
		if strings.HasSuffix(q, "."+d.ID) {
			return d, true
		}
	}

	// Hints with a surplus regional prefix, e.g. "use2.us-gov-pure.cloud"
	// supplied against a catalog listing "us-gov-pure.cloud" as an alias.
	if _, rest, found := strings.Cut(q, "."); found && strings.Contains(rest, ".") {
		if i, ok := c.byID[rest]; ok {
			return c.ordered[i], true
		}
	}

	return Descriptor{}, false
}

// normalize lowercases a hint and strips any URL scheme, path, and port so
// that origin-shaped hints reduce to a bare host.
func normalize(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	if _, rest, found := strings.Cut(q, "://"); found {
		q = rest
	}
	if host, _, found := strings.Cut(q, "/"); found {
		q = host
	}
	if host, _, found := strings.Cut(q, ":"); found {
		q = host
	}
	return q
}

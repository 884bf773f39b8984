package app

import (
	"net/url"
	"strings"
)

// originAllowed reports whether a request origin matches one of the configured
// allowed_origins entries. Entries are bare hosts ("sman1gebog.sch.id"),
// optionally with a leading "*." to cover subdomains; ports are ignored unless
// the entry itself carries one.
func originAllowed(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}
	bare := host
	if i := strings.LastIndex(bare, ":"); i >= 0 {
		bare = bare[:i]
	}

	for _, pattern := range patterns {
		candidate := bare
		if strings.Contains(pattern, ":") {
			candidate = host
		}
		if pattern == candidate {
			return true
		}
		if suffix, ok := strings.CutPrefix(pattern, "*."); ok {
			if candidate == suffix || strings.HasSuffix(candidate, "."+suffix) {
				return true
			}
		}
	}
	return false
}

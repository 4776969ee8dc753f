package admin

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/haukened/backlist/internal/backlist/domain"
)

// Warning flags a list entry that will not behave the way it reads.
type Warning struct {
	Entry  string
	Reason string
}

const (
	reasonPublicSuffix = "public suffix: every direct subdomain will match"
	reasonUppercase    = "contains uppercase: hosts are lowercased, so this entry never matches a host"
	reasonPattern      = "wildcards and CIDR ranges are not supported: the entry only matches literally"
	reasonURL          = "looks like a URL: list entries must be bare hosts or IPs"
)

// Lint reports suspicious entries. It never changes the list.
func Lint(entries domain.ParsedList) []Warning {
	var out []Warning
	for _, e := range entries {
		if w, ok := lintEntry(e); ok {
			out = append(out, w)
		}
	}
	return out
}

func lintEntry(e string) (Warning, bool) {
	if net.ParseIP(e) != nil {
		return Warning{}, false
	}
	switch {
	case strings.Contains(e, "://"):
		return Warning{Entry: e, Reason: reasonURL}, true
	case strings.ContainsAny(e, "*/"):
		return Warning{Entry: e, Reason: reasonPattern}, true
	case strings.ToLower(e) != e:
		return Warning{Entry: e, Reason: reasonUppercase}, true
	}
	// Single-label names outside the ICANN list (e.g. "localhost") fall under
	// the implicit "*" rule; only flag real suffixes.
	if ps, icann := publicsuffix.PublicSuffix(e); ps == e && (icann || strings.Contains(e, ".")) {
		return Warning{Entry: e, Reason: reasonPublicSuffix}, true
	}
	return Warning{}, false
}

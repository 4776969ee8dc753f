// Package matcher tests hosts and IPs against whitelist/blacklist entries.
package matcher

import (
	"github.com/haukened/backlist/internal/backlist/common/log"
	"github.com/haukened/backlist/internal/backlist/common/utils"
	"github.com/haukened/backlist/internal/backlist/domain"
)

// Set is anything that answers exact membership for a list entry.
// domain.ParsedList and the compiled sets in repos/listcache implement it.
type Set interface {
	Contains(entry string) bool
}

var _ Set = domain.ParsedList(nil)

// InList reports whether needle matches entries. See InSet.
func InList(needle string, entries domain.ParsedList) bool {
	return InSet(needle, entries)
}

// InSet reports whether needle matches the set, either exactly or through its
// parent domain. Only the first label is stripped: "sub.example.com" matches
// an "example.com" entry, "a.b.example.com" does not. Comparison is exact and
// case-sensitive, so IP entries match only their literal string.
//
// An empty needle or nil set never matches.
func InSet(needle string, set Set) bool {
	if needle == "" {
		log.Warn(nil, "matcher: empty needle, treating as no match")
		return false
	}
	if set == nil {
		log.Warn(map[string]any{"needle": needle}, "matcher: nil list, treating as no match")
		return false
	}
	if set.Contains(needle) {
		return true
	}
	if parent, ok := utils.ParentDomain(needle); ok {
		return set.Contains(parent)
	}
	return false
}

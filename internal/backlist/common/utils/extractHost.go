package utils

import "strings"

// schemes recognized in front of an author URL. Matching is case-insensitive.
var schemes = []string{"http://", "https://"}

// ExtractHost returns the lowercased host of a URL-like string.
//
// An optional http:// or https:// scheme and an optional "www." prefix are
// stripped, then everything up to the first '/', '?' or '#' is taken as the
// host. The scheme is optional, so bare "example.com" works. The result is not
// validated as a domain; ports and IP literals are kept verbatim.
// ok is false when nothing is left to capture.
func ExtractHost(raw string) (host string, ok bool) {
	s := strings.TrimSpace(raw)
	for _, scheme := range schemes {
		if hasPrefixFold(s, scheme) {
			s = s[len(scheme):]
			break
		}
	}
	if hasPrefixFold(s, "www.") {
		s = s[len("www."):]
	}
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "", false
	}
	return strings.ToLower(s), true
}

// ParentDomain strips the first label: "sub.example.com" -> "example.com".
// ok is false when name has no dot or nothing follows it.
func ParentDomain(name string) (parent string, ok bool) {
	i := strings.IndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}

// EnsureScheme prefixes "http://" to author URLs stored without a scheme.
func EnsureScheme(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	for _, scheme := range schemes {
		if hasPrefixFold(s, scheme) {
			return s
		}
	}
	return "http://" + s
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

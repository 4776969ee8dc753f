package domain

import (
	"fmt"
	"strings"
)

// ListName identifies one of the two host/IP lists.
type ListName string

const (
	Whitelist ListName = "whitelist"
	Blacklist ListName = "blacklist"
)

// ParseListName accepts "whitelist"/"blacklist" and the short "white"/"black" forms.
func ParseListName(s string) (ListName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "whitelist", "white":
		return Whitelist, nil
	case "blacklist", "black":
		return Blacklist, nil
	default:
		return "", fmt.Errorf("unsupported list: %q", s)
	}
}

// SettingKey returns the settings-store key holding the raw list text.
func (n ListName) SettingKey() string {
	switch n {
	case Whitelist:
		return SettingWhitelist
	case Blacklist:
		return SettingBlacklist
	default:
		return ""
	}
}

// Settings-store keys. The names match what the platform already stores.
const (
	SettingSelfApprove = "back_list_blog"
	SettingWhitelist   = "back_list_white"
	SettingBlacklist   = "back_list_black"
	SettingBlogURL     = "blog_url"
)

// ParsedList is the ordered, trimmed, non-empty entry sequence of a list.
type ParsedList []string

// Contains reports exact, case-sensitive membership.
func (l ParsedList) Contains(s string) bool {
	for _, e := range l {
		if e == s {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (l ParsedList) Len() int { return len(l) }

// String joins entries back into newline-delimited text.
func (l ParsedList) String() string {
	return strings.Join(l, "\n")
}

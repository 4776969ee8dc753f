package utils

import (
	"strings"

	"github.com/haukened/backlist/internal/backlist/domain"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ParseList splits newline-delimited list text into entries.
//
// Behavior:
// - "\r\n", "\r" and "\n" all end a line
// - each line is trimmed of surrounding whitespace
// - blank lines are dropped
// - source order is kept, duplicates included
//
// Empty input yields an empty, non-nil list.
func ParseList(raw string) domain.ParsedList {
	out := make(domain.ParsedList, 0, strings.Count(raw, "\n")+1)
	for _, line := range strings.Split(lineEndings.Replace(raw), "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// AppendEntry adds entry as a new line of raw list text.
// An empty raw list becomes just the entry, with no leading newline.
func AppendEntry(raw, entry string) string {
	if strings.TrimSpace(raw) == "" {
		return entry
	}
	return strings.TrimRight(raw, "\r\n") + "\n" + entry
}

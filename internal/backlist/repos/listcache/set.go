package listcache

import (
	bitsbloom "github.com/bits-and-blooms/bloom/v3"

	"github.com/haukened/backlist/internal/backlist/common/utils"
	"github.com/haukened/backlist/internal/backlist/domain"
)

// DefaultFPRate is the bloom false-positive target used when none is configured.
const DefaultFPRate = 0.01

// Set is an immutable compiled list: the parsed entries, an exact index and a
// bloom filter that rejects most misses before the index is consulted.
// Safe for concurrent reads.
type Set struct {
	entries domain.ParsedList
	index   map[string]struct{}
	bf      *bitsbloom.BloomFilter
}

// Compile parses raw list text into a Set. fpRate outside (0,1) uses DefaultFPRate.
func Compile(raw string, fpRate float64) *Set {
	if !(fpRate > 0 && fpRate < 1) {
		fpRate = DefaultFPRate
	}
	entries := utils.ParseList(raw)
	n := uint(len(entries))
	if n == 0 {
		n = 1
	}
	s := &Set{
		entries: entries,
		index:   make(map[string]struct{}, len(entries)),
		bf:      bitsbloom.NewWithEstimates(n, fpRate),
	}
	for _, e := range entries {
		s.index[e] = struct{}{}
		s.bf.AddString(e)
	}
	return s
}

// Contains reports exact, case-sensitive membership.
func (s *Set) Contains(entry string) bool {
	if s == nil || entry == "" {
		return false
	}
	if !s.bf.TestString(entry) {
		return false
	}
	_, ok := s.index[entry]
	return ok
}

// Entries returns the parsed entries in source order. Callers must not modify it.
func (s *Set) Entries() domain.ParsedList {
	if s == nil {
		return domain.ParsedList{}
	}
	return s.entries
}

// Len returns the number of entries, duplicates included.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

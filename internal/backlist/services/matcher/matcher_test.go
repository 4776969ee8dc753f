package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/haukened/backlist/internal/backlist/domain"
)

func TestInList(t *testing.T) {
	tests := []struct {
		name    string
		needle  string
		entries domain.ParsedList
		want    bool
	}{
		{"exact host", "example.com", domain.ParsedList{"example.com"}, true},
		{"child matches parent entry", "sub.example.com", domain.ParsedList{"example.com"}, true},
		{"parent does not match child entry", "example.com", domain.ParsedList{"sub.example.com"}, false},
		{"only one level stripped", "a.b.example.com", domain.ParsedList{"example.com"}, false},
		{"second level listed", "a.b.example.com", domain.ParsedList{"b.example.com"}, true},
		{"empty needle", "", domain.ParsedList{"example.com", ""}, false},
		{"empty list", "example.com", domain.ParsedList{}, false},
		{"nil list", "example.com", nil, false},
		{"case sensitive", "example.com", domain.ParsedList{"Example.com"}, false},
		{"ip exact", "203.0.113.5", domain.ParsedList{"203.0.113.5"}, true},
		{"ip no cidr", "203.0.113.5", domain.ParsedList{"203.0.113.0/24"}, false},
		{"no dot no parent", "localhost", domain.ParsedList{"com"}, false},
		{"similar suffix does not match", "anotherexample.com", domain.ParsedList{"example.com"}, false},
		{"later entry matches", "b.org", domain.ParsedList{"a.org", "x.b.org", "b.org"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InList(tt.needle, tt.entries))
		})
	}
}

type mockSet struct {
	mock.Mock
}

func (m *mockSet) Contains(entry string) bool {
	return m.Called(entry).Bool(0)
}

func TestInSet_ProbesExactThenParent(t *testing.T) {
	s := &mockSet{}
	s.On("Contains", "www2.example.com").Return(false).Once()
	s.On("Contains", "example.com").Return(true).Once()

	assert.True(t, InSet("www2.example.com", s))
	s.AssertExpectations(t)
}

func TestInSet_ExactHitSkipsParent(t *testing.T) {
	s := &mockSet{}
	s.On("Contains", "sub.example.com").Return(true).Once()

	assert.True(t, InSet("sub.example.com", s))
	s.AssertNotCalled(t, "Contains", "example.com")
}

func TestInSet_NilSet(t *testing.T) {
	assert.False(t, InSet("example.com", nil))
}

func BenchmarkInList_Miss(b *testing.B) {
	entries := make(domain.ParsedList, 0, 200)
	for i := 0; i < 200; i++ {
		entries = append(entries, "host"+string(rune('a'+i%26))+".example.org")
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = InList("deep.sub.example.net", entries)
	}
}

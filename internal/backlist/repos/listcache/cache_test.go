package listcache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_HitsAndMisses(t *testing.T) {
	c, err := New(4, 0.01)
	require.NoError(t, err)

	a1 := c.Get("a.com\nb.com")
	a2 := c.Get("a.com\nb.com")
	assert.Same(t, a1, a2, "identical raw text returns the same compiled set")

	b := c.Get("a.com\nb.com\nc.com")
	assert.NotSame(t, a1, b, "edited text compiles fresh")
	assert.True(t, b.Contains("c.com"))

	st := c.Stats()
	assert.Equal(t, 4, st.Capacity)
	assert.Equal(t, 2, st.Size)
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(2), st.Misses)
}

func TestCache_Evictions(t *testing.T) {
	c, err := New(2, 0.01)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		c.Get(fmt.Sprintf("h%d.example", i))
	}
	st := c.Stats()
	assert.Equal(t, 2, st.Size)
	assert.Equal(t, uint64(3), st.Evictions)

	c.Purge()
	st = c.Stats()
	assert.Equal(t, 0, st.Size)
	assert.Equal(t, uint64(5), st.Evictions, "purge counts as eviction")
}

func TestCache_Disabled(t *testing.T) {
	c, err := New(0, 0.01)
	require.NoError(t, err)

	s1 := c.Get("a.com")
	s2 := c.Get("a.com")
	assert.NotSame(t, s1, s2)
	assert.True(t, s2.Contains("a.com"))

	c.Purge()
	st := c.Stats()
	assert.Equal(t, 0, st.Capacity)
	assert.Equal(t, 0, st.Size)
	assert.Equal(t, uint64(0), st.Hits)
	assert.Equal(t, uint64(2), st.Misses)
}

func BenchmarkCache_Get_Hit(b *testing.B) {
	c, _ := New(8, 0.01)
	raw := "a.example\nb.example\nc.example\n198.51.100.7"
	c.Get(raw)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Get(raw)
	}
}

package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/backlist/internal/backlist/common/clock"
)

func TestMemoryStore_GetSetUpdate(t *testing.T) {
	ctx := context.Background()
	clk := &clock.MockClock{CurrentTime: time.Unix(1723550000, 0)}
	s := NewMemory(clk, map[string]string{"back_list_white": "a.com"})

	got, err := s.Get(ctx, "back_list_white")
	require.NoError(t, err)
	assert.Equal(t, "a.com", got)

	got, err = s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, s.Set(ctx, "back_list_black", "spam.example"))
	clk.Advance(time.Minute)
	require.NoError(t, s.Update(ctx, "back_list_white", func(cur string) (string, error) {
		return cur + "\nb.com", nil
	}))

	got, _ = s.Get(ctx, "back_list_white")
	assert.Equal(t, "a.com\nb.com", got)

	st := s.Stats()
	assert.Equal(t, uint64(2), st.Keys)
	assert.Equal(t, uint64(2), st.Version)
	assert.Equal(t, clk.Now().Unix(), st.UpdatedUnix)
}

func TestMemoryStore_UpdateErrorLeavesValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemory(nil, map[string]string{"k": "v"})
	boom := errors.New("boom")

	err := s.Update(ctx, "k", func(string) (string, error) { return "x", boom })
	assert.ErrorIs(t, err, boom)

	got, _ := s.Get(ctx, "k")
	assert.Equal(t, "v", got)
	assert.Equal(t, uint64(0), s.Stats().Version)
}

func TestMemoryStore_SeedIsCopied(t *testing.T) {
	seed := map[string]string{"k": "v"}
	s := NewMemory(nil, seed)
	seed["k"] = "changed"

	got, _ := s.Get(context.Background(), "k")
	assert.Equal(t, "v", got)
}

func TestMemoryStore_ClosedAndCanceled(t *testing.T) {
	s := NewMemory(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, s.Close())
	_, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Set(context.Background(), "k", "v"), ErrClosed)
}

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/textlens/internal/models"
)

func TestMemoryStoreStartsEmpty(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	_, found, err := s.GetSelection(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreReselectionReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	require.NoError(t, s.SetSelection(ctx, "abc", models.ModeSentiment))
	require.NoError(t, s.SetSelection(ctx, "abc", models.ModeTranslate))
	require.NoError(t, s.SetSelection(ctx, "xyz", models.ModeKeywords))

	mode, found, err := s.GetSelection(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.ModeTranslate, mode)

	mode, _, _ = s.GetSelection(ctx, "xyz")
	assert.Equal(t, models.ModeKeywords, mode)
}

func TestMemoryStoreExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	require.NoError(t, s.SetSelection(ctx, "old", models.ModeEnhance))
	now = now.Add(30 * time.Second)
	require.NoError(t, s.SetSelection(ctx, "new", models.ModeEnhance))

	now = now.Add(45 * time.Second)
	_, found, _ := s.GetSelection(ctx, "old")
	assert.False(t, found)
	_, found, _ = s.GetSelection(ctx, "new")
	assert.True(t, found)

	now = now.Add(time.Minute)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 0, s.Sweep())
	assert.Empty(t, s.entries)
}

func TestMemoryStoreRejectsEmptyID(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	err := s.SetSelection(context.Background(), "", models.ModeSentiment)
	assert.True(t, errors.Is(err, ErrInvalidSession))

	_, _, err = s.GetSelection(context.Background(), "")
	assert.True(t, errors.Is(err, ErrInvalidSession))
}

func TestRunSweeperStopsOnCancel(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.RunSweeper(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "textlens:session:abc", Key("abc"))
}

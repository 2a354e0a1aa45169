// Package session keeps the per-browser selection state of the page.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/spacesedan/textlens/internal/clients"
	"github.com/spacesedan/textlens/internal/models"
)

const keyPrefix = "textlens:session:"

var ErrInvalidSession = errors.New("[Session] empty session id")

// Store holds the selected mode of each session. A session without a
// selection reports found == false.
type Store interface {
	GetSelection(ctx context.Context, id string) (models.Mode, bool, error)
	SetSelection(ctx context.Context, id string, mode models.Mode) error
}

type entry struct {
	mode      models.Mode
	expiresAt time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) GetSelection(_ context.Context, id string) (models.Mode, bool, error) {
	if id == "" {
		return "", false, ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return "", false, nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, id)
		return "", false, nil
	}
	return e.mode, true, nil
}

func (s *MemoryStore) SetSelection(_ context.Context, id string, mode models.Mode) error {
	if id == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = entry{mode: mode, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps on every tick until ctx is done.
func (s *MemoryStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				slog.Debug("[SessionStore] Swept expired sessions",
					slog.Int("removed", removed))
			}
		}
	}
}

// ValkeyStore keeps selections in Valkey so several page servers can share
// sessions.
type ValkeyStore struct {
	client *clients.ValkeyClient
	ttl    time.Duration
}

func NewValkeyStore(client *clients.ValkeyClient, ttl time.Duration) *ValkeyStore {
	return &ValkeyStore{client: client, ttl: ttl}
}

func Key(id string) string {
	return keyPrefix + id
}

func (s *ValkeyStore) GetSelection(ctx context.Context, id string) (models.Mode, bool, error) {
	if id == "" {
		return "", false, ErrInvalidSession
	}

	raw, found, err := s.client.Get(ctx, Key(id))
	if err != nil || !found {
		return "", false, err
	}

	mode, ok := models.ParseMode(raw)
	if !ok {
		slog.Warn("[SessionStore] Discarding unknown stored mode",
			slog.String("mode", raw))
		return "", false, nil
	}
	return mode, true, nil
}

func (s *ValkeyStore) SetSelection(ctx context.Context, id string, mode models.Mode) error {
	if id == "" {
		return ErrInvalidSession
	}
	return s.client.SetWithTTL(ctx, Key(id), string(mode), s.ttl)
}

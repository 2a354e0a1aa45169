package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go/mock"
	"go.uber.org/mock/gomock"

	"github.com/spacesedan/textlens/internal/clients"
	"github.com/spacesedan/textlens/internal/models"
)

func newValkeyStore(t *testing.T, ttl time.Duration) (*ValkeyStore, *mock.Client) {
	t.Helper()
	m := mock.NewClient(gomock.NewController(t))
	return NewValkeyStore(&clients.ValkeyClient{Client: m}, ttl), m
}

func TestValkeyStoreSetSelectionUsesPrefixedKeyAndTTL(t *testing.T) {
	s, m := newValkeyStore(t, time.Hour)
	m.EXPECT().Do(gomock.Any(), mock.Match("SET", "textlens:session:abc", "summarize", "PX", "3600000")).
		Return(mock.Result(mock.ValkeyString("OK")))

	require.NoError(t, s.SetSelection(context.Background(), "abc", models.ModeSummarize))
}

func TestValkeyStoreGetSelection(t *testing.T) {
	s, m := newValkeyStore(t, time.Hour)
	m.EXPECT().Do(gomock.Any(), mock.Match("GET", "textlens:session:abc")).
		Return(mock.Result(mock.ValkeyString("translate")))

	mode, found, err := s.GetSelection(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.ModeTranslate, mode)
}

func TestValkeyStoreMissingSessionIsNotFound(t *testing.T) {
	s, m := newValkeyStore(t, time.Hour)
	m.EXPECT().Do(gomock.Any(), mock.Match("GET", "textlens:session:gone")).
		Return(mock.Result(mock.ValkeyNil()))

	_, found, err := s.GetSelection(context.Background(), "gone")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestValkeyStoreDiscardsUnknownMode(t *testing.T) {
	s, m := newValkeyStore(t, time.Hour)
	m.EXPECT().Do(gomock.Any(), mock.Match("GET", "textlens:session:abc")).
		Return(mock.Result(mock.ValkeyString("poetry")))

	mode, found, err := s.GetSelection(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, mode)
}

func TestValkeyStoreReportsErrors(t *testing.T) {
	s, m := newValkeyStore(t, time.Hour)
	m.EXPECT().Do(gomock.Any(), mock.Match("GET", "textlens:session:abc")).
		Return(mock.ErrorResult(errors.New("NOAUTH Authentication required"))).
		Times(clients.MAX_RETRIES)

	_, found, err := s.GetSelection(context.Background(), "abc")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestValkeyStoreRejectsEmptyID(t *testing.T) {
	// no expectations: any call to the mock fails the test
	s, _ := newValkeyStore(t, time.Hour)

	_, _, err := s.GetSelection(context.Background(), "")
	assert.True(t, errors.Is(err, ErrInvalidSession))
	assert.True(t, errors.Is(s.SetSelection(context.Background(), "", models.ModeEnhance), ErrInvalidSession))
}

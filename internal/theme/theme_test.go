package theme

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/folio/internal/anim"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDefaultsToBlue(t *testing.T) {
	s := New(1280, &MemoryStore{}, anim.NewManualClock(epoch))
	assert.Equal(t, Blue, s.Current())
}

func TestLoadsStoredPreference(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save(Red))
	s := New(1280, store, anim.NewManualClock(epoch))
	assert.Equal(t, Red, s.Current())
}

func TestMobileLocked(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save(Red))
	store.Saves = 0

	s := New(768, store, anim.NewManualClock(epoch))
	assert.True(t, s.Mobile())
	assert.Equal(t, Blue, s.Current())

	got, changed, err := s.Toggle()
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, Blue, got)

	link, err := s.Apply(Red)
	require.NoError(t, err)
	assert.Equal(t, "/static/css/main_blue_theme.css", link.Href)
	assert.Zero(t, store.Saves)
}

func TestToggleGuard(t *testing.T) {
	clock := anim.NewManualClock(epoch)
	store := &MemoryStore{}
	s := New(1024, store, clock)

	got, changed, err := s.Toggle()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, Red, got)

	clock.Advance(399 * time.Millisecond)
	got, changed, _ = s.Toggle()
	assert.False(t, changed)
	assert.Equal(t, Red, got)

	clock.Advance(time.Millisecond)
	got, changed, _ = s.Toggle()
	assert.True(t, changed)
	assert.Equal(t, Blue, got)
	assert.Equal(t, 2, store.Saves)

	stored, ok := store.Load()
	assert.True(t, ok)
	assert.Equal(t, Blue, stored)
}

func TestApplyLink(t *testing.T) {
	s := New(1024, nil, nil)
	link, err := s.Apply(Red)
	require.NoError(t, err)
	assert.Equal(t, Link{ID: "theme-style", Href: "/static/css/main.css"}, link)
}

func TestSessionStore(t *testing.T) {
	cookies := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	req := httptest.NewRequest("GET", "/", nil)
	sess, err := cookies.Get(req, "folio")
	require.NoError(t, err)

	store := SessionStore{Session: sess}
	_, ok := store.Load()
	assert.False(t, ok)

	require.NoError(t, store.Save(Red))
	got, ok := store.Load()
	assert.True(t, ok)
	assert.Equal(t, Red, got)

	sess.Values[SessionKey] = "green"
	_, ok = store.Load()
	assert.False(t, ok)
}

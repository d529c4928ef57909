package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/Sill-Liu/test-platform/internal/models"
)

// UserStore holds registered users, keyed lookups by username.
type UserStore struct {
	mu    sync.RWMutex
	items []models.User
	seq   int
}

// NewUserStore seeds the store.
func NewUserStore(seed []models.User) *UserStore {
	return &UserStore{
		items: append([]models.User(nil), seed...),
		seq:   len(seed),
	}
}

// Add registers a new user. Returns false when the username is taken.
func (s *UserStore) Add(username, name, passwordHash string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.items {
		if u.Username == username {
			return models.User{}, false
		}
	}

	s.seq++
	u := models.User{
		ID:           fmt.Sprintf("user_%03d", s.seq),
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		CreateTime:   time.Now().Format("2006-01-02 15:04:05"),
	}
	s.items = append(s.items, u)
	return u, true
}

// ByUsername returns the user with the given username.
func (s *UserStore) ByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.items {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// ByID returns the user with the given id.
func (s *UserStore) ByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.items {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// PrefsStore keeps per-user preferences, the server-side stand-in for the
// client's persisted darkMode / rememberedUser keys.
type PrefsStore struct {
	mu    sync.RWMutex
	prefs map[string]models.Preferences
}

func NewPrefsStore() *PrefsStore {
	return &PrefsStore{prefs: make(map[string]models.Preferences)}
}

// Get returns the stored preferences, falling back to the defaults (light
// mode, no remembered user) when nothing has been set.
func (s *PrefsStore) Get(username string) models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prefs[username]
	if !ok {
		return models.Preferences{DarkMode: "false"}
	}
	if p.DarkMode == "" {
		p.DarkMode = "false"
	}
	return p
}

// Set replaces the stored preferences for a user.
func (s *PrefsStore) Set(username string, p models.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[username] = p
}

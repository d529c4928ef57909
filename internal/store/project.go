package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Sill-Liu/test-platform/internal/models"
)

// NewProject is the caller-supplied part of a project.
type NewProject struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
	Admin string `json:"admin"`
}

// Validate reports every missing required field.
func (n NewProject) Validate() error {
	var verr models.ValidationError
	if n.Name == "" {
		verr.Add("name", "required")
	}
	if n.Owner == "" {
		verr.Add("owner", "required")
	}
	return verr.Err()
}

// ProjectPatch is a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Name  *string `json:"name"`
	Owner *string `json:"owner"`
	Admin *string `json:"admin"`
}

// ProjectStore holds the ordered project collection.
type ProjectStore struct {
	mu    sync.RWMutex
	items []models.Project
	seq   int
}

// NewProjectStore seeds the store. The sequence counter is monotonic and
// independent of the collection size, so deleted ids are never reissued.
func NewProjectStore(seed []models.Project) *ProjectStore {
	return &ProjectStore{
		items: append([]models.Project(nil), seed...),
		seq:   len(seed),
	}
}

// Add appends a new project and returns it.
func (s *ProjectStore) Add(input NewProject) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	p := models.Project{
		ID:         fmt.Sprintf("proj_%03d", s.seq),
		Name:       input.Name,
		Owner:      input.Owner,
		Admin:      input.Admin,
		CreateTime: time.Now().Format("2006-01-02 15:04:05"),
	}
	s.items = append(s.items, p)
	return p
}

// Edit shallow-merges patch into the project with the given id. The second
// return value is false when the id is unknown and the call was a no-op.
func (s *ProjectStore) Edit(id string, patch ProjectPatch) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		p := &s.items[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Owner != nil {
			p.Owner = *patch.Owner
		}
		if patch.Admin != nil {
			p.Admin = *patch.Admin
		}
		return *p, true
	}
	return models.Project{}, false
}

// Delete removes the project. Iterations referencing it are left alone.
func (s *ProjectStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Search returns projects whose name or id contains keyword, in store order.
// The match is case-sensitive.
func (s *ProjectStore) Search(keyword string) []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Project
	for _, p := range s.items {
		if strings.Contains(p.Name, keyword) || strings.Contains(p.ID, keyword) {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the project with the given id.
func (s *ProjectStore) Get(id string) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// List returns a copy of the collection in insertion order.
func (s *ProjectStore) List() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Project(nil), s.items...)
}

package store

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/Sill-Liu/test-platform/internal/models"
)

// NewIteration is the caller-supplied part of an iteration. The id, create
// time and the three derived counters are assigned by the store.
type NewIteration struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
	Creator   string `json:"creator"`
	Admin     string `json:"admin"`
	StartTime string `json:"startTime"`
}

// Validate reports every missing required field.
func (n NewIteration) Validate() error {
	var verr models.ValidationError
	if n.ProjectID == "" {
		verr.Add("projectId", "required")
	}
	if n.Name == "" {
		verr.Add("name", "required")
	}
	if n.Creator == "" {
		verr.Add("creator", "required")
	}
	return verr.Err()
}

// IterationPatch is a partial update. Nil fields are left untouched; set
// fields replace the existing value, including the derived counters, which
// share this mutation path with cascades.
type IterationPatch struct {
	Name                *string `json:"name"`
	Creator             *string `json:"creator"`
	Admin               *string `json:"admin"`
	StartTime           *string `json:"startTime"`
	DemandCount         *int    `json:"demandCount"`
	FinishedDemandCount *int    `json:"finishedDemandCount"`
	Progress            *int    `json:"progress"`
}

// IterationStore holds the ordered iteration collection. The counters on each
// record are owned by the cascade rules fired from the demand store.
type IterationStore struct {
	mu    sync.RWMutex
	items []models.Iteration
	seq   int

	// OnProgress, when set, is called after a cascade changes an
	// iteration's counters. Set before any cascade can fire.
	OnProgress func(models.Iteration)
}

// NewIterationStore seeds the store. The sequence counter starts past the
// seed so later deletes can never cause an id to be reissued.
func NewIterationStore(seed []models.Iteration) *IterationStore {
	s := &IterationStore{
		items: append([]models.Iteration(nil), seed...),
		seq:   len(seed),
	}
	return s
}

// Add appends a new iteration with zeroed counters and returns it.
func (s *IterationStore) Add(input NewIteration) models.Iteration {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	it := models.Iteration{
		ID:         fmt.Sprintf("iter_%03d", s.seq),
		ProjectID:  input.ProjectID,
		Name:       input.Name,
		Creator:    input.Creator,
		Admin:      input.Admin,
		StartTime:  input.StartTime,
		CreateTime: time.Now().Format("2006-01-02 15:04:05"),
	}
	s.items = append(s.items, it)
	return it
}

// Edit shallow-merges patch into the iteration with the given id. The second
// return value is false when the id is unknown and the call was a no-op.
func (s *IterationStore) Edit(id string, patch IterationPatch) (models.Iteration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		it := &s.items[i]
		if patch.Name != nil {
			it.Name = *patch.Name
		}
		if patch.Creator != nil {
			it.Creator = *patch.Creator
		}
		if patch.Admin != nil {
			it.Admin = *patch.Admin
		}
		if patch.StartTime != nil {
			it.StartTime = *patch.StartTime
		}
		if patch.DemandCount != nil {
			it.DemandCount = *patch.DemandCount
		}
		if patch.FinishedDemandCount != nil {
			it.FinishedDemandCount = *patch.FinishedDemandCount
		}
		if patch.Progress != nil {
			it.Progress = *patch.Progress
		}
		return *it, true
	}
	return models.Iteration{}, false
}

// Delete removes the iteration. Dependent demands are not touched; they keep
// referencing the deleted id and later cascades against it are no-ops.
func (s *IterationStore) Delete(id string) bool {
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

// Search returns iterations whose name or id contains keyword, in store
// order. The match is case-sensitive.
func (s *IterationStore) Search(keyword string) []models.Iteration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Iteration
	for _, it := range s.items {
		if strings.Contains(it.Name, keyword) || strings.Contains(it.ID, keyword) {
			out = append(out, it)
		}
	}
	return out
}

// Get returns the iteration with the given id.
func (s *IterationStore) Get(id string) (models.Iteration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Iteration{}, false
}

// List returns a copy of the collection in insertion order.
func (s *IterationStore) List() []models.Iteration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Iteration(nil), s.items...)
}

// ByProject returns the iterations belonging to a project, in store order.
func (s *IterationStore) ByProject(projectID string) []models.Iteration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Iteration
	for _, it := range s.items {
		if it.ProjectID == projectID {
			out = append(out, it)
		}
	}
	return out
}

// adjustCounters applies a cascade delta to the iteration's counters and
// recomputes progress. Unknown ids are skipped silently: the iteration may
// have been deleted between scheduling and application.
func (s *IterationStore) adjustCounters(id string, demandDelta, finishedDelta int) {
	s.mu.Lock()
	var changed *models.Iteration
	for i := range s.items {
		if s.items[i].ID == id {
			it := &s.items[i]
			it.DemandCount += demandDelta
			it.FinishedDemandCount += finishedDelta
			it.Progress = progressOf(it.FinishedDemandCount, it.DemandCount)
			copied := *it
			changed = &copied
			break
		}
	}
	s.mu.Unlock()

	if changed != nil && s.OnProgress != nil {
		s.OnProgress(*changed)
	}
}

// progressOf is the single progress formula: 0 for an empty iteration,
// otherwise the percentage rounded half away from zero.
func progressOf(finished, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(finished) / float64(total) * 100))
}

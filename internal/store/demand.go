package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Sill-Liu/test-platform/internal/models"
)

// NewDemand is the caller-supplied part of a demand.
type NewDemand struct {
	IterationID   string              `json:"iterationId"`
	Name          string              `json:"name"`
	Creator       string              `json:"creator"`
	Priority      models.Priority     `json:"priority"`
	Status        models.DemandStatus `json:"status"`
	ExpectEndTime string              `json:"expectEndTime"`
}

// Validate reports every missing or malformed field.
func (n NewDemand) Validate() error {
	var verr models.ValidationError
	if n.IterationID == "" {
		verr.Add("iterationId", "required")
	}
	if n.Name == "" {
		verr.Add("name", "required")
	}
	if n.Creator == "" {
		verr.Add("creator", "required")
	}
	if !n.Priority.IsValid() {
		verr.Add("priority", "must be HIGH, MIDDLE or LOW")
	}
	if !n.Status.IsValid() {
		verr.Add("status", "unknown status")
	}
	return verr.Err()
}

// DemandPatch is a partial update; nil fields are left untouched.
type DemandPatch struct {
	Name          *string              `json:"name"`
	Creator       *string              `json:"creator"`
	Priority      *models.Priority     `json:"priority"`
	Status        *models.DemandStatus `json:"status"`
	ExpectEndTime *string              `json:"expectEndTime"`
}

// DemandStore holds the ordered demand collection and fires the cascade rules
// that keep the owning iteration's counters consistent. Cascades are handed
// to the runner, so they apply after the mutation returns; see CascadeRunner.
type DemandStore struct {
	mu    sync.Mutex
	items []models.Demand
	seq   int

	iterations *IterationStore
	cascades   *CascadeRunner
}

// NewDemandStore seeds the store and wires the cascade target. A nil runner
// makes every cascade apply inline.
func NewDemandStore(seed []models.Demand, iterations *IterationStore, cascades *CascadeRunner) *DemandStore {
	return &DemandStore{
		items:      append([]models.Demand(nil), seed...),
		seq:        len(seed),
		iterations: iterations,
		cascades:   cascades,
	}
}

// Add appends a new demand and schedules the demand-count cascade on its
// iteration.
func (s *DemandStore) Add(input NewDemand) models.Demand {
	s.mu.Lock()
	s.seq++
	d := models.Demand{
		ID:            fmt.Sprintf("demand_%03d", s.seq),
		IterationID:   input.IterationID,
		Name:          input.Name,
		Creator:       input.Creator,
		Priority:      input.Priority,
		Status:        input.Status,
		CreateTime:    time.Now().Format("2006-01-02 15:04:05"),
		ExpectEndTime: input.ExpectEndTime,
	}
	s.items = append(s.items, d)
	s.mu.Unlock()

	// Creation only bumps the demand count; the finished count moves on
	// status edits and deletes.
	iterID := d.IterationID
	s.cascades.Enqueue(func() {
		s.iterations.adjustCounters(iterID, 1, 0)
	})
	return d
}

// Edit shallow-merges patch into the demand. A status change whose finished
// classification flips schedules the finished-count cascade, computed against
// the pre-edit status and the pre-edit iteration id.
func (s *DemandStore) Edit(id string, patch DemandPatch) (models.Demand, bool) {
	s.mu.Lock()

	idx := -1
	for i := range s.items {
		if s.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.Demand{}, false
	}

	d := &s.items[idx]
	iterID := d.IterationID
	finishedDelta := 0
	if patch.Status != nil {
		wasFinished := d.Status.IsFinished()
		isFinished := patch.Status.IsFinished()
		switch {
		case !wasFinished && isFinished:
			finishedDelta = 1
		case wasFinished && !isFinished:
			finishedDelta = -1
		}
	}

	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Creator != nil {
		d.Creator = *patch.Creator
	}
	if patch.Priority != nil {
		d.Priority = *patch.Priority
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.ExpectEndTime != nil {
		d.ExpectEndTime = *patch.ExpectEndTime
	}
	updated := *d
	s.mu.Unlock()

	if finishedDelta != 0 {
		delta := finishedDelta
		s.cascades.Enqueue(func() {
			s.iterations.adjustCounters(iterID, 0, delta)
		})
	}
	return updated, true
}

// Delete removes the demand and schedules the count cascade, decrementing the
// finished count as well when the deleted demand was in a finished state.
func (s *DemandStore) Delete(id string) bool {
	s.mu.Lock()

	idx := -1
	for i := range s.items {
		if s.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return false
	}

	deleted := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.mu.Unlock()

	finishedDelta := 0
	if deleted.Status.IsFinished() {
		finishedDelta = -1
	}
	s.cascades.Enqueue(func() {
		s.iterations.adjustCounters(deleted.IterationID, -1, finishedDelta)
	})
	return true
}

// Search returns demands whose name or id contains keyword, in store order.
// The match is case-sensitive.
func (s *DemandStore) Search(keyword string) []models.Demand {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Demand
	for _, d := range s.items {
		if strings.Contains(d.Name, keyword) || strings.Contains(d.ID, keyword) {
			out = append(out, d)
		}
	}
	return out
}

// Get returns the demand with the given id.
func (s *DemandStore) Get(id string) (models.Demand, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.items {
		if d.ID == id {
			return d, true
		}
	}
	return models.Demand{}, false
}

// List returns a copy of the collection in insertion order.
func (s *DemandStore) List() []models.Demand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Demand(nil), s.items...)
}

// ByIteration returns the demands belonging to an iteration, in store order.
func (s *DemandStore) ByIteration(iterationID string) []models.Demand {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Demand
	for _, d := range s.items {
		if d.IterationID == iterationID {
			out = append(out, d)
		}
	}
	return out
}

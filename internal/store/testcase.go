package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Sill-Liu/test-platform/internal/models"
)

// NewTestCase is the caller-supplied part of a test case.
type NewTestCase struct {
	Name        string `json:"name"`
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
}

// Validate reports every missing required field.
func (n NewTestCase) Validate() error {
	var verr models.ValidationError
	if n.Name == "" {
		verr.Add("name", "required")
	}
	if n.ProjectID == "" {
		verr.Add("projectId", "required")
	}
	return verr.Err()
}

// TestCaseStore holds the ordered test-case collection.
type TestCaseStore struct {
	mu    sync.RWMutex
	items []models.TestCase
	seq   int
}

// NewTestCaseStore seeds the store.
func NewTestCaseStore(seed []models.TestCase) *TestCaseStore {
	return &TestCaseStore{
		items: append([]models.TestCase(nil), seed...),
		seq:   len(seed),
	}
}

// Add appends a new test case and returns it.
func (s *TestCaseStore) Add(input NewTestCase) models.TestCase {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	tc := models.TestCase{
		ID:          fmt.Sprintf("tc_%03d", s.seq),
		Name:        input.Name,
		ProjectID:   input.ProjectID,
		ProjectName: input.ProjectName,
		CreateTime:  time.Now().Format("2006-01-02 15:04:05"),
	}
	s.items = append(s.items, tc)
	return tc
}

// Delete removes the test case with the given id.
func (s *TestCaseStore) Delete(id string) bool {
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

// Search returns test cases whose name or id contains keyword, in store
// order. The match is case-sensitive.
func (s *TestCaseStore) Search(keyword string) []models.TestCase {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TestCase
	for _, tc := range s.items {
		if strings.Contains(tc.Name, keyword) || strings.Contains(tc.ID, keyword) {
			out = append(out, tc)
		}
	}
	return out
}

// List returns a copy of the collection in insertion order.
func (s *TestCaseStore) List() []models.TestCase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TestCase(nil), s.items...)
}

// ByProject returns the test cases belonging to a project, in store order.
// An empty projectID means no restriction.
func (s *TestCaseStore) ByProject(projectID string) []models.TestCase {
	if projectID == "" {
		return s.List()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TestCase
	for _, tc := range s.items {
		if tc.ProjectID == projectID {
			out = append(out, tc)
		}
	}
	return out
}

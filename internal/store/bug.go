package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sill-Liu/test-platform/internal/models"
)

// NewBug is the caller-supplied part of a bug report.
type NewBug struct {
	Title              string             `json:"title"`
	Version            string             `json:"version"`
	Severity           models.BugSeverity `json:"severity"`
	Priority           models.Priority    `json:"priority"`
	Handler            string             `json:"handler"`
	StartDate          string             `json:"startDate"`
	EndDate            string             `json:"endDate"`
	Creator            string             `json:"creator"`
	Platform           string             `json:"platform"`
	TestData           string             `json:"testData"`
	APIURL             string             `json:"apiUrl"`
	TestSteps          string             `json:"testSteps"`
	TestResult         string             `json:"testResult"`
	ExpectedResult     string             `json:"expectedResult"`
	RelatedRequirement string             `json:"relatedRequirement"`
	ReproduceRule      string             `json:"reproduceRule"`
	Attachment         string             `json:"attachment"`
}

// Validate reports every missing or malformed field.
func (n NewBug) Validate() error {
	var verr models.ValidationError
	if n.Title == "" {
		verr.Add("title", "required")
	}
	if n.Creator == "" {
		verr.Add("creator", "required")
	}
	if n.Handler == "" {
		verr.Add("handler", "required")
	}
	switch n.Severity {
	case models.SeverityMinor, models.SeverityMajor, models.SeverityCritical:
	default:
		verr.Add("severity", "must be MINOR, MAJOR or CRITICAL")
	}
	if !n.Priority.IsValid() {
		verr.Add("priority", "must be HIGH, MIDDLE or LOW")
	}
	return verr.Err()
}

// BugStore holds bug reports and their comments. Bug ids are a monotonic
// BUG-<n> sequence continuing past the seed; comments use UUIDs.
type BugStore struct {
	mu       sync.Mutex
	items    []models.Bug
	comments []models.Comment
	seq      int
}

// NewBugStore seeds the store. nextSeq is the first numeric id to assign
// (the seed occupies the range below it).
func NewBugStore(seed []models.Bug, nextSeq int) *BugStore {
	return &BugStore{
		items: append([]models.Bug(nil), seed...),
		seq:   nextSeq,
	}
}

// Add appends a new bug with status PENDING and returns it.
func (s *BugStore) Add(input NewBug) models.Bug {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := models.Bug{
		ID:                 fmt.Sprintf("BUG-%d", s.seq),
		Title:              input.Title,
		Type:               "BUG",
		Version:            input.Version,
		Severity:           input.Severity,
		Priority:           input.Priority,
		Status:             models.BugPending,
		Handler:            input.Handler,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		Creator:            input.Creator,
		CreateTime:         time.Now().Format("2006-01-02 15:04:05"),
		Platform:           input.Platform,
		TestData:           input.TestData,
		APIURL:             input.APIURL,
		TestSteps:          input.TestSteps,
		TestResult:         input.TestResult,
		ExpectedResult:     input.ExpectedResult,
		RelatedRequirement: input.RelatedRequirement,
		ReproduceRule:      input.ReproduceRule,
		Attachment:         input.Attachment,
	}
	s.seq++
	s.items = append(s.items, b)
	return b
}

// UpdateStatus moves a bug to a new status.
func (s *BugStore) UpdateStatus(id string, status models.BugStatus) (models.Bug, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			return s.items[i], true
		}
	}
	return models.Bug{}, false
}

// Delete removes the bug and its comments.
func (s *BugStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			kept := s.comments[:0]
			for _, c := range s.comments {
				if c.BugID != id {
					kept = append(kept, c)
				}
			}
			s.comments = kept
			return true
		}
	}
	return false
}

// Search returns bugs whose title or id contains keyword, in store order.
// The match is case-sensitive; list endpoints apply the case-insensitive
// query layer instead.
func (s *BugStore) Search(keyword string) []models.Bug {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Bug
	for _, b := range s.items {
		if strings.Contains(b.Title, keyword) || strings.Contains(b.ID, keyword) {
			out = append(out, b)
		}
	}
	return out
}

// Get returns the bug with the given id.
func (s *BugStore) Get(id string) (models.Bug, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.items {
		if b.ID == id {
			return b, true
		}
	}
	return models.Bug{}, false
}

// List returns a copy of the collection in insertion order.
func (s *BugStore) List() []models.Bug {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Bug(nil), s.items...)
}

// AddComment attaches a comment to an existing bug. Returns false when the
// bug id is unknown.
func (s *BugStore) AddComment(bugID, content, creator string) (models.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, b := range s.items {
		if b.ID == bugID {
			found = true
			break
		}
	}
	if !found {
		return models.Comment{}, false
	}

	c := models.Comment{
		ID:         uuid.NewString(),
		BugID:      bugID,
		Content:    content,
		Creator:    creator,
		CreateTime: time.Now().Format("2006-01-02 15:04:05"),
	}
	s.comments = append(s.comments, c)
	return c, true
}

// CommentsFor returns the comments on a bug, oldest first.
func (s *BugStore) CommentsFor(bugID string) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Comment
	for _, c := range s.comments {
		if c.BugID == bugID {
			out = append(out, c)
		}
	}
	return out
}

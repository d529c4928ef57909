package store

import (
	"testing"

	"github.com/Sill-Liu/test-platform/internal/models"
)

func newBug(title string) NewBug {
	return NewBug{
		Title:    title,
		Severity: models.SeverityMajor,
		Priority: models.PriorityHigh,
		Handler:  "Wang Wu",
		Creator:  "Zhang San",
	}
}

func TestBugIDsContinueSeedSequence(t *testing.T) {
	s := NewBugStore(seedBugs(8), bugSeedBase+8)

	b := s.Add(newBug("dialog resets on drag"))
	if b.ID != "BUG-1008" {
		t.Errorf("ID = %q, want BUG-1008", b.ID)
	}
	if b.Status != models.BugPending {
		t.Errorf("Status = %q, want PENDING", b.Status)
	}
	if b.Type != "BUG" {
		t.Errorf("Type = %q", b.Type)
	}

	// The sequence is monotonic across deletes.
	if !s.Delete(b.ID) {
		t.Fatal("delete failed")
	}
	if next := s.Add(newBug("another")); next.ID != "BUG-1009" {
		t.Errorf("ID = %q, want BUG-1009", next.ID)
	}
}

func TestDeleteBugRemovesComments(t *testing.T) {
	s := NewBugStore(seedBugs(8), bugSeedBase+8)

	c1, ok := s.AddComment("BUG-1000", "reproduced on staging", "Wang Wu")
	if !ok {
		t.Fatal("comment rejected")
	}
	c2, _ := s.AddComment("BUG-1000", "fix pending review", "Zhang San")
	if c1.ID == c2.ID {
		t.Error("comment ids collide")
	}
	s.AddComment("BUG-1001", "unrelated", "Li Si")

	if !s.Delete("BUG-1000") {
		t.Fatal("delete failed")
	}
	if got := s.CommentsFor("BUG-1000"); got != nil {
		t.Errorf("comments survived bug delete: %+v", got)
	}
	if got := s.CommentsFor("BUG-1001"); len(got) != 1 {
		t.Errorf("unrelated comments touched: %+v", got)
	}
}

func TestAddCommentUnknownBug(t *testing.T) {
	s := NewBugStore(nil, bugSeedBase)

	if _, ok := s.AddComment("BUG-9999", "ghost", "nobody"); ok {
		t.Error("comment accepted for unknown bug")
	}
}

func TestNewBugValidation(t *testing.T) {
	err := NewBug{Priority: "URGENT"}.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	if err := newBug("valid").Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
}

func TestUpdateBugStatus(t *testing.T) {
	s := NewBugStore(seedBugs(8), bugSeedBase+8)

	b, ok := s.UpdateStatus("BUG-1001", models.BugClosed)
	if !ok {
		t.Fatal("update failed")
	}
	if b.Status != models.BugClosed {
		t.Errorf("Status = %q", b.Status)
	}

	if _, ok := s.UpdateStatus("BUG-9999", models.BugClosed); ok {
		t.Error("update of unknown id returned ok")
	}
}

package store

import (
	"errors"
	"testing"

	"github.com/Sill-Liu/test-platform/internal/models"
)

func TestAddProjectAssignsSequentialID(t *testing.T) {
	s := NewProjectStore(seedProjects())

	p := s.Add(NewProject{Name: "Payment Gateway", Owner: "Wang Wu", Admin: "Zhao Liu"})
	if p.ID != "proj_003" {
		t.Errorf("ID = %q, want proj_003", p.ID)
	}
	if p.CreateTime == "" {
		t.Error("CreateTime not set")
	}

	list := s.List()
	if len(list) != 3 || list[2].ID != p.ID {
		t.Errorf("new project not appended: %+v", list)
	}
}

func TestProjectIDsNotReusedAfterDelete(t *testing.T) {
	s := NewProjectStore(seedProjects())

	p := s.Add(NewProject{Name: "Payment Gateway", Owner: "Wang Wu"})
	if !s.Delete(p.ID) {
		t.Fatal("delete failed")
	}

	next := s.Add(NewProject{Name: "Reporting", Owner: "Li Si"})
	if next.ID != "proj_004" {
		t.Errorf("ID = %q, want proj_004", next.ID)
	}
}

func TestEditProjectShallowMerge(t *testing.T) {
	s := NewProjectStore(seedProjects())

	owner := "Li Si"
	p, ok := s.Edit("proj_001", ProjectPatch{Owner: &owner})
	if !ok {
		t.Fatal("edit failed")
	}
	if p.Owner != "Li Si" {
		t.Errorf("Owner = %q", p.Owner)
	}
	if p.Name != "Test Platform V1" || p.CreateTime != "2024-01-01 10:00:00" {
		t.Errorf("unrelated fields changed: %+v", p)
	}
}

func TestProjectNotFoundIsSoft(t *testing.T) {
	s := NewProjectStore(seedProjects())

	name := "x"
	if _, ok := s.Edit("proj_999", ProjectPatch{Name: &name}); ok {
		t.Error("edit of unknown id returned ok")
	}
	if s.Delete("proj_999") {
		t.Error("delete of unknown id returned true")
	}
	if len(s.List()) != 2 {
		t.Error("collection changed by failed operations")
	}
}

func TestProjectSearchByNameOrID(t *testing.T) {
	s := NewProjectStore(seedProjects())

	if got := s.Search("proj_002"); len(got) != 1 || got[0].Name != "User Center Rework" {
		t.Errorf("search by id = %+v", got)
	}
	if got := s.Search("Platform"); len(got) != 1 || got[0].ID != "proj_001" {
		t.Errorf("search by name = %+v", got)
	}
	if got := s.Search("proj_"); len(got) != 2 {
		t.Errorf("prefix search = %+v", got)
	}
	if got := s.Search("platform"); got != nil {
		t.Errorf("store search should be case-sensitive, got %+v", got)
	}
}

func TestProjectSearchDoesNotMutate(t *testing.T) {
	s := NewProjectStore(seedProjects())

	before := s.List()
	s.Search("proj_")
	s.Search("nothing")
	after := s.List()

	if len(before) != len(after) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("record %d changed", i)
		}
	}
}

func TestNewProjectValidationListsEveryField(t *testing.T) {
	err := NewProject{}.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("failing fields = %d, want 2 (name, owner)", len(verr.Fields))
	}

	if err := (NewProject{Name: "n", Owner: "o"}).Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
}

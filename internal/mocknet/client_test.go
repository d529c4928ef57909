package mocknet

import (
	"testing"
	"time"

	"github.com/Sill-Liu/test-platform/internal/models"
)

func TestKnownRoutesResolve(t *testing.T) {
	c := NewClient(0)

	tests := []struct {
		url string
	}{
		{"/api/dashboard"},
		{"/api/projects"},
		{"/api/requirements"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			resp := c.Get(tt.url)
			if resp.Code != CodeOK {
				t.Fatalf("code = %d, want 200", resp.Code)
			}
			if resp.Message != "success" {
				t.Errorf("message = %q", resp.Message)
			}
			if resp.Data == nil {
				t.Error("data is nil")
			}
		})
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	c := NewClient(0)

	resp := c.Get("/api/unknown")
	if resp.Code != CodeNotFound {
		t.Errorf("code = %d, want 404", resp.Code)
	}
	if resp.Data != nil {
		t.Errorf("data = %+v, want nil", resp.Data)
	}
}

func TestRequirementDetailPattern(t *testing.T) {
	c := NewClient(0)

	resp := c.Get("/api/requirements/req_001")
	if resp.Code != CodeOK {
		t.Fatalf("code = %d, want 200", resp.Code)
	}
	detail, ok := resp.Data.(models.Requirement)
	if !ok {
		t.Fatalf("data type = %T", resp.Data)
	}
	if detail.ReqID != "req_001" {
		t.Errorf("ReqID = %q", detail.ReqID)
	}

	resp = c.Get("/api/requirements/req_999")
	if resp.Code != CodeNotFound {
		t.Errorf("unknown id code = %d, want 404", resp.Code)
	}
}

func TestFixedLatencyElapses(t *testing.T) {
	latency := 50 * time.Millisecond
	c := NewClient(latency)

	start := time.Now()
	c.Get("/api/dashboard")
	if elapsed := time.Since(start); elapsed < latency {
		t.Errorf("resolved after %v, want at least %v", elapsed, latency)
	}
}

func TestDispatchPanicBecomes500(t *testing.T) {
	c := NewClient(0)
	c.routes["/api/broken"] = func() any { panic("boom") }

	resp := c.Get("/api/broken")
	if resp.Code != CodeError {
		t.Errorf("code = %d, want 500", resp.Code)
	}
	if resp.Message != "request failed" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestPayloadsAreFreshPerCall(t *testing.T) {
	c := NewClient(0)

	first := c.Get("/api/projects").Data.([]models.ProjectOverview)
	first[0].ProjectName = "mutated"

	second := c.Get("/api/projects").Data.([]models.ProjectOverview)
	if second[0].ProjectName == "mutated" {
		t.Error("caller mutation leaked into later responses")
	}
}

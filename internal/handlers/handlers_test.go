package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Sill-Liu/test-platform/internal/auth"
	"github.com/Sill-Liu/test-platform/internal/handlers"
	"github.com/Sill-Liu/test-platform/internal/mocknet"
	"github.com/Sill-Liu/test-platform/internal/models"
	"github.com/Sill-Liu/test-platform/internal/router"
	"github.com/Sill-Liu/test-platform/internal/store"
)

// newTestServer builds a fully seeded router with inline cascades and a
// zero-latency mock transport, so counter assertions never race the worker.
func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "handler-test-secret")
	if err := auth.InitJWTSecret(); err != nil {
		t.Fatalf("InitJWTSecret: %v", err)
	}

	s := store.NewWithRunner(nil)
	handlers.Init(s, mocknet.NewClient(0))
	return router.NewRouter(s), s
}

func doJSON(t *testing.T, r *gin.Engine, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return resp.Token
}

func TestHealthCheckIsPublic(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/pm/projects", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/pm/projects", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestLoginTokenAuthenticatesMe(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.Username != "admin" {
		t.Errorf("username = %q, want admin", resp.User.Username)
	}
}

func TestListProjectsReturnsSeed(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/pm/projects", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var projects []models.Project
	if err := json.Unmarshal(w.Body.Bytes(), &projects); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("len = %d, want 2", len(projects))
	}
	if projects[0].ID != "proj_001" || projects[1].ID != "proj_002" {
		t.Errorf("ids = %q, %q", projects[0].ID, projects[1].ID)
	}
}

func iterationByID(t *testing.T, r *gin.Engine, token, projectID, id string) models.Iteration {
	t.Helper()

	w := doJSON(t, r, http.MethodGet, "/api/pm/projects/"+projectID+"/iterations", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list iterations status = %d", w.Code)
	}

	var iterations []models.Iteration
	if err := json.Unmarshal(w.Body.Bytes(), &iterations); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, it := range iterations {
		if it.ID == id {
			return it
		}
	}
	t.Fatalf("iteration %q not in listing", id)
	return models.Iteration{}
}

func TestCreateDemandUpdatesIterationCounters(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/pm/iterations/iter_001/demands", token, gin.H{
		"name":     "export audit trail",
		"creator":  "Zhang San",
		"priority": "HIGH",
		"status":   "PENDING_REVIEW",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var created models.Demand
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != "demand_003" {
		t.Errorf("id = %q, want demand_003", created.ID)
	}

	// Seeded at 5/3/60; creation moves only the demand count.
	it := iterationByID(t, r, token, "proj_001", "iter_001")
	if it.DemandCount != 6 || it.FinishedDemandCount != 3 || it.Progress != 50 {
		t.Errorf("counters = %d/%d/%d, want 6/3/50",
			it.DemandCount, it.FinishedDemandCount, it.Progress)
	}
}

func TestDemandStatusEditMovesProgress(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	// demand_002 is seeded TESTING (not finished) in iter_001.
	w := doJSON(t, r, http.MethodPatch, "/api/pm/demands/demand_002", token, gin.H{
		"status": "ONLINE",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	it := iterationByID(t, r, token, "proj_001", "iter_001")
	if it.DemandCount != 5 || it.FinishedDemandCount != 4 || it.Progress != 80 {
		t.Errorf("counters = %d/%d/%d, want 5/4/80",
			it.DemandCount, it.FinishedDemandCount, it.Progress)
	}
}

func TestDemandStatusEnumRejected(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPatch, "/api/pm/demands/demand_001", token, gin.H{
		"status": "SHIPPED",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateDemandValidationListsFields(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/pm/iterations/iter_001/demands", token, gin.H{
		"priority": "HIGH",
		"status":   "DEVELOPING",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Fields []models.FieldError `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// name and creator are both missing and both must be reported.
	if len(resp.Fields) != 2 {
		t.Errorf("fields = %+v, want 2 entries", resp.Fields)
	}
}

func TestRequirementDetailProxiesEnvelope(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/requirements/req_001", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Code    int                `json:"code"`
		Message string             `json:"message"`
		Data    models.Requirement `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != 200 || resp.Message != "success" {
		t.Errorf("envelope = %d %q", resp.Code, resp.Message)
	}
	if resp.Data.ReqID != "req_001" {
		t.Errorf("reqId = %q", resp.Data.ReqID)
	}

	w = doJSON(t, r, http.MethodGet, "/api/requirements/req_999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", w.Code)
	}
}

func TestListRequirementsFiltered(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/requirements?projectId=proj_002", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data []models.Requirement `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ReqID != "req_003" {
		t.Errorf("data = %+v, want only req_003", resp.Data)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/preferences", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var prefs models.Preferences
	if err := json.Unmarshal(w.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if prefs.DarkMode != "false" {
		t.Errorf("default darkMode = %q, want \"false\"", prefs.DarkMode)
	}

	w = doJSON(t, r, http.MethodPost, "/api/preferences", token, gin.H{"darkMode": "true"})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if prefs.DarkMode != "true" {
		t.Errorf("darkMode = %q, want \"true\"", prefs.DarkMode)
	}

	w = doJSON(t, r, http.MethodPost, "/api/preferences", token, gin.H{"darkMode": "dim"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid value: status = %d, want 400", w.Code)
	}
}

func TestCreateAndDeleteBug(t *testing.T) {
	r, _ := newTestServer(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/bugs", token, gin.H{
		"title":    "[PC py-companion] toolbar icons overlap after resize",
		"severity": "MAJOR",
		"priority": "HIGH",
		"creator":  "Wang Wu",
		"handler":  "Li Si",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var created models.Bug
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != "BUG-1008" {
		t.Errorf("id = %q, want BUG-1008 after the 8 seeded bugs", created.ID)
	}
	if created.Status != models.BugPending {
		t.Errorf("status = %q, want PENDING", created.Status)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/bugs/"+created.ID, token, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", w.Code)
	}
}

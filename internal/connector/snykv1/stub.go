package snykv1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// StubServer hosts an in-memory Snyk v1 API for tests (no network
// listeners). Fixture IDs are generated per instance and exposed as fields
// so tests can assert against them.
type StubServer struct {
	token     string
	handler   http.Handler
	transport http.RoundTripper
	baseURL   string

	OrgIDs        []string
	ProjectID     string
	IntegrationID string
	SnapshotID    string
	JobID         string

	// NoLocation makes import creation answer without a Location header.
	NoLocation bool
	// AbsoluteLocation makes the Location header a full URL instead of a path.
	AbsoluteLocation bool

	// LastBody holds the decoded body of the most recent write request.
	LastBody map[string]any
	// LastQuery holds the query parameters of the most recent request.
	LastQuery url.Values
}

// NewStubServer constructs a deterministic stub without binding to a port.
func NewStubServer() *StubServer {
	s := &StubServer{
		token:         "stub-token",
		baseURL:       "http://stub.snyk.local/v1/",
		OrgIDs:        []string{uuid.NewString(), uuid.NewString(), uuid.NewString()},
		ProjectID:     uuid.NewString(),
		IntegrationID: uuid.NewString(),
		SnapshotID:    uuid.NewString(),
		JobID:         uuid.NewString(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handle)
	s.handler = mux
	s.transport = &stubRoundTripper{handler: mux}
	return s
}

// URL returns the stub base URL (no network listener is used).
func (s *StubServer) URL() string {
	return s.baseURL
}

// Transport returns a RoundTripper that serves requests in-process.
func (s *StubServer) Transport() http.RoundTripper {
	return s.transport
}

func (s *StubServer) handle(w http.ResponseWriter, r *http.Request) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth != "token "+s.token {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
		return
	}

	s.LastQuery = r.URL.Query()
	if r.Method != http.MethodGet && r.Method != http.MethodDelete {
		body, _ := io.ReadAll(r.Body)
		s.LastBody = nil
		_ = json.Unmarshal(body, &s.LastBody)
	}

	path := strings.TrimPrefix(r.URL.Path, "/v1")
	switch {
	case path == "/orgs" && r.Method == http.MethodGet:
		s.handleOrgs(w, r)
	case strings.HasSuffix(path, "/history") && r.Method == http.MethodGet:
		s.handleHistory(w, r)
	case strings.HasSuffix(path, "/import") && r.Method == http.MethodPost:
		s.handleImport(w, r)
	case strings.HasSuffix(path, "/webhooks") && r.Method == http.MethodPost:
		writeJSON(w, map[string]any{"id": uuid.NewString(), "url": "https://hooks.local/x", "secret": "shh"})
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	}
}

// handleOrgs pages through the org fixtures with page/perPage semantics.
func (s *StubServer) handleOrgs(w http.ResponseWriter, r *http.Request) {
	page := 1
	if parsed, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && parsed > 0 {
		page = parsed
	}
	perPage := DefaultLimit
	if parsed, err := strconv.Atoi(r.URL.Query().Get("perPage")); err == nil && parsed > 0 {
		perPage = parsed
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(s.OrgIDs) {
		start = len(s.OrgIDs)
	}
	if end > len(s.OrgIDs) {
		end = len(s.OrgIDs)
	}

	orgs := make([]any, 0, end-start)
	for _, id := range s.OrgIDs[start:end] {
		orgs = append(orgs, map[string]any{
			"id":   id,
			"name": "Org " + id[:8],
			"slug": "org-" + id[:8],
			"url":  "https://api.snyk.io/org/" + id,
		})
	}
	writeJSON(w, map[string]any{"orgs": orgs})
}

func (s *StubServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"snapshots": []any{
			map[string]any{
				"id":      s.SnapshotID,
				"created": "2025-06-01T00:00:00Z",
				"issueCounts": map[string]any{
					"high": 3, "medium": 1,
				},
			},
		},
	})
}

func (s *StubServer) handleImport(w http.ResponseWriter, r *http.Request) {
	if s.NoLocation {
		w.WriteHeader(http.StatusCreated)
		return
	}
	location := "/org/" + s.OrgIDs[0] + "/integrations/" + s.IntegrationID + "/import/" + s.JobID
	if s.AbsoluteLocation {
		location = "https://api.snyk.io/v1" + location
	}
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte("{}"))
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

type stubRoundTripper struct {
	handler http.Handler
}

func (rt *stubRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rr := httptest.NewRecorder()
	rt.handler.ServeHTTP(rr, req)
	res := rr.Result()
	res.Request = req
	return res, nil
}

package snykrest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// StubServer hosts an in-memory Snyk REST API for tests (no network
// listeners). Fixture IDs are generated per instance and exposed as fields
// so tests can assert against them.
type StubServer struct {
	token     string
	handler   http.Handler
	transport http.RoundTripper
	baseURL   string

	GroupID    string
	OrgIDs     []string
	ProjectID  string
	TargetID   string
	UserID     string
	RoleID     string
	Membership string

	// LastBody holds the decoded body of the most recent write request.
	LastBody map[string]any
	// LastQuery holds the query parameters of the most recent request.
	LastQuery url.Values
}

// NewStubServer constructs a deterministic stub without binding to a port.
func NewStubServer() *StubServer {
	s := &StubServer{
		token:      "stub-token",
		baseURL:    "http://stub.snyk.local/rest/",
		GroupID:    uuid.NewString(),
		OrgIDs:     []string{uuid.NewString(), uuid.NewString(), uuid.NewString()},
		ProjectID:  uuid.NewString(),
		TargetID:   uuid.NewString(),
		UserID:     uuid.NewString(),
		RoleID:     uuid.NewString(),
		Membership: uuid.NewString(),
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
		_, _ = w.Write([]byte(`{"errors":[{"detail":"unauthorized"}]}`))
		return
	}
	if r.URL.Query().Get("version") == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"detail":"version parameter required"}]}`))
		return
	}

	s.LastQuery = r.URL.Query()
	if r.Method != http.MethodGet && r.Method != http.MethodDelete {
		body, _ := io.ReadAll(r.Body)
		s.LastBody = nil
		_ = json.Unmarshal(body, &s.LastBody)
	}

	path := strings.TrimPrefix(r.URL.Path, "/rest")
	switch {
	case path == "/orgs" && r.Method == http.MethodGet:
		s.handleOrgs(w, r)
	case strings.HasSuffix(path, "/projects") && r.Method == http.MethodGet:
		s.handleProjects(w, r)
	case strings.HasSuffix(path, "/memberships") && r.Method == http.MethodPost:
		writeStatusJSON(w, http.StatusCreated, s.membershipDocument())
	case strings.Contains(path, "/memberships/") && r.Method == http.MethodPatch:
		writeStatusJSON(w, http.StatusOK, s.membershipDocument())
	case strings.Contains(path, "/projects/") && r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"detail":"not found"}]}`))
	}
}

// handleOrgs serves two pages: a full first page with a next link and a
// short second page that ends pagination.
func (s *StubServer) handleOrgs(w http.ResponseWriter, r *http.Request) {
	cursor := r.URL.Query().Get("starting_after")
	if cursor == "" {
		writeStatusJSON(w, http.StatusOK, map[string]any{
			"data": []any{
				s.orgResource(s.OrgIDs[0], "alpha"),
				s.orgResource(s.OrgIDs[1], "beta"),
			},
			"links": map[string]any{
				"next": "/rest/orgs?starting_after=page-two&version=" + r.URL.Query().Get("version"),
			},
		})
		return
	}
	writeStatusJSON(w, http.StatusOK, map[string]any{
		"data":  []any{s.orgResource(s.OrgIDs[2], "gamma")},
		"links": map[string]any{},
	})
}

func (s *StubServer) handleProjects(w http.ResponseWriter, r *http.Request) {
	writeStatusJSON(w, http.StatusOK, map[string]any{
		"data": []any{
			map[string]any{
				"id":   s.ProjectID,
				"type": "project",
				"attributes": map[string]any{
					"name":   "backend/package.json",
					"origin": "github",
					"type":   "npm",
					"status": "active",
					"tags": []any{
						map[string]any{"key": "team", "value": "platform"},
					},
				},
				"relationships": map[string]any{
					"organization": map[string]any{
						"data": map[string]any{"id": s.OrgIDs[0], "type": "org"},
					},
					"target": map[string]any{
						"data": map[string]any{"id": s.TargetID, "type": "target"},
					},
				},
			},
		},
		"links": map[string]any{},
	})
}

func (s *StubServer) orgResource(id, slug string) map[string]any {
	return map[string]any{
		"id":   id,
		"type": "org",
		"attributes": map[string]any{
			"name":        strings.ToUpper(slug[:1]) + slug[1:],
			"slug":        slug,
			"is_personal": false,
		},
		"relationships": map[string]any{
			"group": map[string]any{
				"data": map[string]any{"id": s.GroupID, "type": "group"},
			},
		},
	}
}

func (s *StubServer) membershipDocument() map[string]any {
	return map[string]any{
		"data": map[string]any{
			"id":   s.Membership,
			"type": "org_membership",
			"attributes": map[string]any{
				"created_at": "2025-01-01T00:00:00Z",
			},
			"relationships": map[string]any{
				"user": map[string]any{
					"data": map[string]any{"id": s.UserID, "type": "user"},
				},
				"role": map[string]any{
					"data": map[string]any{"id": s.RoleID, "type": "org_role"},
				},
				"org": map[string]any{
					"data": map[string]any{"id": s.OrgIDs[0], "type": "org"},
				},
			},
		},
	}
}

func writeStatusJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/vnd.api+json")
	w.WriteHeader(status)
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

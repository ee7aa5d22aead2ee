package proxy

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payments-admin/internal/lib/sl"
	"github.com/magabrotheeeer/payments-admin/internal/metrics"
)

type upstreamRequest struct {
	Method string
	URI    string
	Header http.Header
	Body   string
}

func newUpstream(t *testing.T, status int, contentType, body string) (*httptest.Server, func() upstreamRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		last upstreamRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		last = upstreamRequest{Method: r.Method, URI: r.URL.RequestURI(), Header: r.Header.Clone(), Body: string(b)}
		mu.Unlock()
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		} else {
			w.Header()["Content-Type"] = nil
		}
		w.Header().Set("X-Upstream-Secret", "leak")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, func() upstreamRequest {
		mu.Lock()
		defer mu.Unlock()
		return last
	}
}

func newRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Handle("/api/proxy/admin/*", h)
	return r
}

func TestHandler_PassThrough(t *testing.T) {
	upstream, last := newUpstream(t, http.StatusCreated, "application/json; charset=utf-8", `{"success":true,"data":{"id":"p1"}}`)
	h := New(sl.Discard(), "admin", upstream.URL+"/api/v1/admin/", upstream.Client(), metrics.New(), 0)

	req := httptest.NewRequest(http.MethodPatch, "/api/proxy/admin/payments/p1/status?notify=true", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", "session=xyz")
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	rec := httptest.NewRecorder()

	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"success":true,"data":{"id":"p1"}}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Empty(t, rec.Header().Get("X-Upstream-Secret"))

	got := last()
	assert.Equal(t, http.MethodPatch, got.Method)
	assert.Equal(t, "/api/v1/admin/payments/p1/status?notify=true", got.URI)
	assert.Equal(t, `{"status":"completed"}`, got.Body)
	assert.Equal(t, "Bearer abc", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Empty(t, got.Header.Get("Cookie"))
	assert.Empty(t, got.Header.Get("X-Forwarded-For"))
}

func TestHandler_RelaysErrorStatus(t *testing.T) {
	upstream, _ := newUpstream(t, http.StatusUnauthorized, "application/json", `{"success":false,"message":"Token expired"}`)
	h := New(sl.Discard(), "admin", upstream.URL, upstream.Client(), nil, 0)

	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy/admin/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Token expired"}`, rec.Body.String())
}

func TestHandler_DefaultContentType(t *testing.T) {
	upstream, _ := newUpstream(t, http.StatusOK, "", `{"success":true}`)
	h := New(sl.Discard(), "admin", upstream.URL, upstream.Client(), nil, 0)

	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy/admin/profile", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHandler_BodyOmittedForGetAndHead(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodHead} {
		t.Run(method, func(t *testing.T) {
			upstream, last := newUpstream(t, http.StatusOK, "application/json", `{}`)
			h := New(sl.Discard(), "admin", upstream.URL, upstream.Client(), nil, 0)

			req := httptest.NewRequest(method, "/api/proxy/admin/users?page=1&limit=10", strings.NewReader(`{"ignored":true}`))
			req.Header.Set("Content-Type", "application/json")
			newRouter(h).ServeHTTP(httptest.NewRecorder(), req)

			got := last()
			assert.Equal(t, method, got.Method)
			assert.Equal(t, "/users?page=1&limit=10", got.URI)
			assert.Empty(t, got.Body)
		})
	}
}

type mockDoer struct {
	mock.Mock
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

func TestHandler_TransportFailure(t *testing.T) {
	doer := new(mockDoer)
	doer.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		return r.URL.String() == "https://api.example.com/v1/admin/dashboard/stats"
	})).Return(nil, errors.New("dial tcp: connection refused")).Once()

	h := New(sl.Discard(), "admin", "https://api.example.com/v1/admin", doer, metrics.New(), 0)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy/admin/dashboard/stats", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Proxy request failed", body["message"])
	assert.Equal(t, "dial tcp: connection refused", body["error"])
	doer.AssertExpectations(t)
}

func TestHandler_Timeout(t *testing.T) {
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		upstream.Close()
	})

	h := New(sl.Discard(), "admin", upstream.URL, upstream.Client(), nil, 50*time.Millisecond)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy/admin/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Proxy request failed")
	assert.Contains(t, rec.Body.String(), "deadline exceeded")
}

func TestHandler_Target(t *testing.T) {
	h := New(sl.Discard(), "admin", "https://api.example.com/v1/admin/", nil, nil, 0)

	tests := []struct {
		path  string
		query string
		want  string
	}{
		{path: "users", want: "https://api.example.com/v1/admin/users"},
		{path: "/users/u1", want: "https://api.example.com/v1/admin/users/u1"},
		{path: "payments", query: "status=pending&page=2", want: "https://api.example.com/v1/admin/payments?status=pending&page=2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, h.Target(tt.path, tt.query))
	}
}

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lockit/core/cookie"
	"github.com/dmitrymomot/lockit/core/session"
	"github.com/dmitrymomot/lockit/core/sessiontransport"
	"github.com/dmitrymomot/lockit/middleware"
)

type testData struct {
	Theme string `json:"theme"`
}

func newStack(t *testing.T) (*sessiontransport.Cookie[testData], *session.Manager[testData]) {
	t.Helper()

	cookies, err := cookie.New([]string{"0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)

	mgr := session.NewManager(session.NewMemoryStore[testData]())
	return sessiontransport.NewCookie(mgr, cookies, "sid"), mgr
}

func TestSession_InjectsSessionIntoContext(t *testing.T) {
	transport, _ := newStack(t)

	var got session.Session[testData]
	var found bool
	handler := middleware.Session[testData](transport)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = middleware.GetSession[testData](r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.10:4321"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, found)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.IsAuthenticated())
}

func TestSession_PersistsMutations(t *testing.T) {
	transport, mgr := newStack(t)

	var sessID uuid.UUID
	handler := middleware.Session[testData](transport)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession[testData](r.Context())
		require.True(t, ok)

		sess.SetData(testData{Theme: "dark"})
		middleware.SetSession(r.Context(), sess)
		sessID = sess.ID
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.10:4321"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	stored, err := mgr.GetByID(context.Background(), sessID)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored.Data.Theme)
}

func TestSession_Skip(t *testing.T) {
	transport, _ := newStack(t)

	cfg := middleware.SessionConfig[testData]{
		Transport: transport,
		Skip: func(r *http.Request) bool {
			return r.URL.Path == "/health"
		},
	}

	handler := middleware.SessionWithConfig(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found := middleware.GetSession[testData](r.Context())
		assert.False(t, found)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
}

func TestSessionWithConfig_RequiresTransport(t *testing.T) {
	assert.Panics(t, func() {
		middleware.SessionWithConfig(middleware.SessionConfig[testData]{})
	})
}

func TestSession_LogoutClearsCookie(t *testing.T) {
	transport, _ := newStack(t)

	handler := middleware.Session[testData](transport)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession[testData](r.Context())
		require.True(t, ok)

		sess.Logout()
		middleware.SetSession(r.Context(), sess)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.10:4321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}

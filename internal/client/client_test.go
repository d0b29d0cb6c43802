package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jonathan/careercore/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a stub API and returns a client pointed at it with an isolated store.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.MemoryStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewMemoryStore()
	return New(server.URL, store), store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew_DefaultBaseURL(t *testing.T) {
	c := New("", session.NewMemoryStore())
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c = New("https://api.example.com/", session.NewMemoryStore())
	assert.Equal(t, "https://api.example.com", c.BaseURL())
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(RequestIDHeader)
		writeJSON(w, http.StatusOK, map[string]any{})
	})
	require.NoError(t, store.SetToken("abc"))

	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/anything", nil, nil))
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestDo_SkipAuthOmitsToken(t *testing.T) {
	var sawAuth bool
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		writeJSON(w, http.StatusOK, map[string]any{})
	})
	require.NoError(t, store.SetToken("abc"))

	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/anything", nil, nil, SkipAuth()))
	assert.False(t, sawAuth)
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var sawAuth bool
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/anything", nil, nil))
	assert.False(t, sawAuth)
}

func TestDo_401ClearsTokenAndExpiresSession(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token revoked"})
	})
	require.NoError(t, store.SetToken("stale"))

	err := c.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil)
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrSessionExpired))
	var expired *SessionExpiredError
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, "/auth/me", expired.Path)

	// The body's detail is never used for a 401.
	assert.Equal(t, "Session expired. Please log in again.", err.Error())
	assert.Equal(t, "", store.Token())
	assert.Equal(t, 401, StatusCode(err))
}

func TestDo_401WithUnreadableBody(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("<html>nope</html>"))
	})
	require.NoError(t, store.SetToken("stale"))

	err := c.Do(context.Background(), http.MethodGet, "/dashboard/stats", nil, nil)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, session.IsAuthenticated(store))
}

func TestDo_401OnSkipAuthStillExpiresSession(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid email or password"})
	})
	require.NoError(t, store.SetToken("stale"))

	err := c.Do(context.Background(), http.MethodPost, "/auth/login", map[string]string{}, nil, SkipAuth())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.EqualError(t, err, "Session expired. Please log in again.")
	assert.Equal(t, "", store.Token())
}

func TestDo_401WithoutSessionExpiryIsRequestFailure(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
	})
	require.NoError(t, store.SetToken("keep"))

	err := c.Do(context.Background(), http.MethodGet, "/resume/analyze", nil, nil, withoutSessionExpiry())

	var reqErr *RequestFailedError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Equal(t, "Not authenticated", reqErr.Error())
	assert.Equal(t, "keep", store.Token())
}

func TestDo_DetailMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid email"})
	})

	err := c.Do(context.Background(), http.MethodPost, "/auth/register", map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, "Invalid email", err.Error())

	var reqErr *RequestFailedError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
}

func TestDo_UnparseableErrorBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	err := c.Do(context.Background(), http.MethodGet, "/jobs", nil, nil)
	require.Error(t, err)
	assert.Regexp(t, `^request failed with status \d{3}$`, err.Error())
	assert.Equal(t, "request failed with status 502", err.Error())
}

func TestDo_ErrorBodyWithoutDetail(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "nope"})
	})

	err := c.Do(context.Background(), http.MethodGet, "/jobs/99", nil, nil)
	assert.EqualError(t, err, "request failed with status 404")
}

func TestDo_EmptyDetailUsesFallback(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": ""})
	})

	err := c.Do(context.Background(), http.MethodGet, "/jobs", nil, nil)
	assert.EqualError(t, err, "request failed with status 400")
}

func TestDo_ValidationDetailList(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{
				{"loc": []string{"body", "email"}, "msg": "value is not a valid email address"},
			},
		})
	})

	err := c.Do(context.Background(), http.MethodPost, "/auth/register", map[string]string{}, nil)
	assert.EqualError(t, err, "value is not a valid email address")
}

func TestDo_SendsJSONBody(t *testing.T) {
	var got map[string]string
	var contentType string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]string{"ok": "yes"})
	})

	var out map[string]string
	require.NoError(t, c.Do(context.Background(), http.MethodPost, "/echo", map[string]string{"a": "b"}, &out))
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, map[string]string{"a": "b"}, got)
	assert.Equal(t, "yes", out["ok"])
}

func TestDo_MalformedResponse(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": "not-a-number", "name": "Alex"})
	})

	_, err := c.Me(context.Background())
	require.Error(t, err)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "/auth/me", malformed.Path)
}

func TestDo_MalformedResponseNotJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	})

	var out map[string]any
	err := c.Do(context.Background(), http.MethodGet, "/plain", nil, &out)

	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestDo_ValidationCanBeDisabled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Missing the required email field.
		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "name": "Alex"})
	}))
	t.Cleanup(server.Close)

	c := New(server.URL, session.NewMemoryStore(), WithoutResponseValidation())
	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestDo_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	c := New(url, session.NewMemoryStore())
	err := c.Do(context.Background(), http.MethodGet, "/jobs", nil, nil)
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 0, StatusCode(err))
}

func TestDo_NoRetries(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	require.Error(t, c.Do(context.Background(), http.MethodGet, "/jobs", nil, nil))
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_ContextCancelled(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Do(ctx, http.MethodGet, "/jobs", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

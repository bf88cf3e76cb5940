package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

// staticTokens is a TokenSource with a fixed answer.
type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, error) {
	if s.token == "" {
		return "", apperrors.ErrNoStoredToken
	}
	return s.token, nil
}

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := New(Options{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
		Tokens:  tokens,
		Logger:  zerolog.Nop(),
	})
	return c, server
}

func TestRequestCarriesBearerTokenAndPrefix(t *testing.T) {
	var gotPath, gotAuth, gotCache, gotRequestID string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCache = r.Header.Get("Cache-Control")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})

	c, _ := newTestClient(t, handler, staticTokens{token: "tok-123"})

	var out map[string]bool
	require.NoError(t, c.Get(context.Background(), "/events", nil, &out))

	assert.Equal(t, "/api/v1/events", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "no-cache", gotCache)
	assert.NotEmpty(t, gotRequestID)
	assert.True(t, out["ok"])
}

func TestAnonymousRequestOmitsAuthorizationHeader(t *testing.T) {
	var sawAuthHeader bool

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Not authenticated"}`))
	})

	c, _ := newTestClient(t, handler, staticTokens{})

	err := c.Get(context.Background(), "/notifications", nil, nil)

	// No stale or empty token goes out; the server's 401 comes back typed.
	assert.False(t, sawAuthHeader)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, 401, apperrors.StatusCodeOf(err))
	assert.Equal(t, "Not authenticated", err.Error())
}

func TestQueryParamsReachTheWire(t *testing.T) {
	var gotQuery url.Values

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	c, _ := newTestClient(t, handler, staticTokens{})

	query := url.Values{}
	query.Set("skip", "20")
	query.Set("limit", "10")
	var out []struct{}
	require.NoError(t, c.Get(context.Background(), "/alumni", query, &out))

	assert.Equal(t, "20", gotQuery.Get("skip"))
	assert.Equal(t, "10", gotQuery.Get("limit"))
}

func TestRejectionParsesDetailString(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Event not found"}`))
	})

	c, _ := newTestClient(t, handler, staticTokens{token: "tok"})

	err := c.Get(context.Background(), "/events/99", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "Event not found", err.Error())
}

func TestRejectionParsesValidationDetailList(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","title"],"msg":"field required"},{"loc":["body","start_date"],"msg":"invalid datetime"}]}`))
	})

	c, _ := newTestClient(t, handler, staticTokens{token: "tok"})

	err := c.Post(context.Background(), "/events", map[string]string{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "field required; invalid datetime", err.Error())
}

func TestRejectionFallsBackToMessageAndErrorFields(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Already registered"}`))
	}), staticTokens{token: "tok"})

	err := c.Post(context.Background(), "/events/1/register", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Already registered", err.Error())
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRejectionWithUnparseableBodyKeepsStatusSentinel(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>static error page</html>"))
	}), staticTokens{token: "tok"})

	err := c.Get(context.Background(), "/events", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrServerError)
	assert.Equal(t, 500, apperrors.StatusCodeOf(err))
}

func TestUnreachableServerIsConnectivityTier(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing listens anymore

	c := New(Options{BaseURL: server.URL, Tokens: staticTokens{}, Logger: zerolog.Nop()})

	err := c.Get(context.Background(), "/events", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConnectivity)
	assert.Equal(t, 0, apperrors.StatusCodeOf(err))
}

func TestCancelledContextSurfacesAsCancellation(t *testing.T) {
	block := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer close(block)

	c, _ := newTestClient(t, handler, staticTokens{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := c.Get(ctx, "/events", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseErrorBody(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
		code    string
	}{
		{"detail string", `{"detail":"nope"}`, "nope", ""},
		{"detail with code", `{"detail":"nope","code":"DOC_001"}`, "nope", "DOC_001"},
		{"message field", `{"message":"bad"}`, "bad", ""},
		{"error field", `{"error":"worse"}`, "worse", ""},
		{"numeric detail", `{"detail":42}`, "42", ""},
		{"not json", `oops`, "", ""},
		{"empty", ``, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			message, code := parseErrorBody([]byte(tc.body))
			assert.Equal(t, tc.message, message)
			assert.Equal(t, tc.code, code)
		})
	}
}

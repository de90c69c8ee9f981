package requests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(maxRetries int) *Client {
	return NewClient(&ClientDeps{
		ApiKey:     "test-key",
		MaxRetries: maxRetries,
		RetryBase:  time.Millisecond,
		Logger:     zerolog.Nop(),
	})
}

func TestGetJSONSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Riot-Token"))
		w.Write([]byte(`{"puuid":"abc"}`))
	}))
	defer server.Close()

	var out struct {
		Puuid string `json:"puuid"`
	}
	err := newTestClient(3).GetJSON(context.Background(), server.URL, &out, Options{})
	require.NoError(t, err)
	assert.Equal(t, "abc", out.Puuid)
}

func TestGetJSONAppendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("count"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	var out []string
	err := newTestClient(3).GetJSON(context.Background(), server.URL, &out, Options{
		Query: map[string]string{"count": "20"},
	})
	require.NoError(t, err)
}

func TestGetJSONRetriesServerErrors(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	var out map[string]bool
	err := newTestClient(3).GetJSON(context.Background(), server.URL, &out, Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), calls.Load())
}

func TestGetJSONExhaustsRetries(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`server on fire`))
	}))
	defer server.Close()

	err := newTestClient(3).GetJSON(context.Background(), server.URL, &struct{}{}, Options{})
	require.Error(t, err)
	assert.Equal(t, int64(3), calls.Load())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "server on fire")
}

func TestGetJSONHonorsRetryAfter(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	// One retry budget: the rate limit wait must not consume it.
	var out map[string]bool
	err := newTestClient(1).GetJSON(context.Background(), server.URL, &out, Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}

func TestGetJSONBoundsRateLimitWaits(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	err := newTestClient(1).GetJSON(context.Background(), server.URL, &struct{}{}, Options{})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, int64(maxRateLimitWaits+1), calls.Load())
}

func TestGetJSONSkipRetryOnNotFound(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := newTestClient(3).GetJSON(context.Background(), server.URL, &struct{}{}, Options{
		SkipRetryOnNotFound: true,
	})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, int64(1), calls.Load())
}

func TestGetJSONRetriesNotFoundByDefault(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := newTestClient(2).GetJSON(context.Background(), server.URL, &struct{}{}, Options{})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, int64(2), calls.Load())
}

func TestGetJSONRetriesMalformedJSON(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	var out map[string]bool
	err := newTestClient(2).GetJSON(context.Background(), server.URL, &out, Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse API response")
	assert.Equal(t, int64(2), calls.Load())
}

func TestGetJSONContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := newTestClient(3).GetJSON(ctx, server.URL, &struct{}{}, Options{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseRetryAfter(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "absent falls back", header: "", want: defaultRetryAfter},
		{name: "valid seconds", header: "7", want: 7 * time.Second},
		{name: "zero", header: "0", want: 0},
		{name: "garbage falls back", header: "soon", want: defaultRetryAfter},
		{name: "negative falls back", header: "-3", want: defaultRetryAfter},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseRetryAfter(tc.header))
		})
	}
}

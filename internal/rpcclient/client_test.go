package rpcclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
)

func noDelay() backoff.BackOff { return &backoff.ZeroBackOff{} }

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, append([]Option{WithBackOff(noDelay)}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"https://blockstream.info", false},
		{"http://localhost:8545", false},
		{"https://api.etherscan.io/", false},
		{"ftp://example.com", true},
		{"blockstream.info", true},
		{"https://", true},
		{"://bad", true},
	}
	for _, tt := range tests {
		_, err := ParseBaseURL(tt.raw)
		if tt.wantErr {
			require.Error(t, err, tt.raw)
		} else {
			require.NoError(t, err, tt.raw)
		}
	}
}

func TestResolve(t *testing.T) {
	c, err := New("https://example.com/base/")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/base/api/address/x", c.Resolve("/api/address/x", nil))
	require.Equal(t, "https://example.com/base/api?a=1&b=2",
		c.Resolve("api", url.Values{"b": {"2"}, "a": {"1"}}))
}

func TestGetJSON_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/address/bc1q", r.URL.Path)
		require.Equal(t, "v", r.URL.Query().Get("k"))
		w.Write([]byte(`{"n":5}`))
	})
	var out struct{ N int }
	require.NoError(t, c.GetJSON(context.Background(), "/api/address/bc1q", url.Values{"k": {"v"}}, &out))
	require.Equal(t, 5, out.N)
}

func TestGetJSON_RetriesTransient(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch calls.Add(1) {
		case 1:
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.Write([]byte(`{"n":1}`))
		}
	})
	var out struct{ N int }
	require.NoError(t, c.GetJSON(context.Background(), "/", nil, &out))
	require.Equal(t, int32(3), calls.Load())
	require.Equal(t, 1, out.N)
}

func TestGetJSON_GivesUp(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, WithMaxRetries(2))

	err := c.GetJSON(context.Background(), "/", nil, &struct{}{})
	var se *StatusError
	require.True(t, errors.As(err, &se), "error %v", err)
	require.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	require.Equal(t, int32(3), calls.Load())
}

func TestGetJSON_PermanentErrors(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such address", http.StatusNotFound)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				tt.h(w, r)
			})
			require.Error(t, c.GetJSON(context.Background(), "/", nil, &struct{}{}))
			require.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestGetJSON_StatusErrorHidesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	err := c.GetJSON(context.Background(), "/api", url.Values{"apikey": {"secret"}}, &struct{}{})
	require.Error(t, err)
	require.False(t, strings.Contains(err.Error(), "secret"), err.Error())
}

func TestGetJSON_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, c.GetJSON(ctx, "/", nil, &struct{}{}))
}

func TestGetJSON_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(20*time.Millisecond), WithMaxRetries(0))
	defer close(release)
	require.Error(t, c.GetJSON(context.Background(), "/", nil, &struct{}{}))
}

package w8r_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/byte4ever/w8r"
)

func TestHTTPProbeSucceedsOn2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
	defer srv.Close()

	require.NoError(t, w8r.HTTPProbe(srv.URL)(context.Background()))
}

func TestHTTPProbeFailsOnServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
	defer srv.Close()

	err := w8r.HTTPProbe(srv.URL)(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
	// A 503 is "not yet", never a reason to stop polling.
	require.False(t, w8r.IsPermanent(err))
}

func TestHTTPProbeFailsOnConnectionError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // nothing listening anymore

	err := w8r.HTTPProbe(srv.URL)(context.Background())
	require.Error(t, err)
	require.False(t, w8r.IsPermanent(err))
}

func TestHTTPProbeMalformedURLIsPermanent(t *testing.T) {
	t.Parallel()

	err := w8r.HTTPProbe("http://[::1:bad")(context.Background())
	require.Error(t, err)
	require.True(t, w8r.IsPermanent(err))
}

func TestHTTPProbeSendsBasicAuth(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || user != "admin" || pass != "hunter2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
	defer srv.Close()

	require.Error(t, w8r.HTTPProbe(srv.URL)(context.Background()))
	require.NoError(t,
		w8r.HTTPProbe(srv.URL,
			w8r.BasicAuth("admin", "hunter2"))(context.Background()))
}

func TestHTTPProbeCustomClient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	defer srv.Close()

	probe := w8r.HTTPProbe(srv.URL, w8r.HTTPClient(srv.Client()))
	require.NoError(t, probe(context.Background()))
}

func TestHTTPFetcherReturnsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("17\n"))
		}))
	defer srv.Close()

	body, err := w8r.HTTPFetcher(srv.URL)(context.Background())
	require.NoError(t, err)
	require.Equal(t, "17\n", string(body))
}

func TestHTTPFetcherNon2xxIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusNotFound)
		}))
	defer srv.Close()

	_, err := w8r.HTTPFetcher(srv.URL)(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

// TestWaitURLUntilReady runs the whole stack against a server that
// starts answering 200 on its third request.
func TestWaitURLUntilReady(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			if hits.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
	defer srv.Close()

	err := w8r.Wait(context.Background(), w8r.HTTPProbe(srv.URL), 5,
		WithFastInterval())
	require.NoError(t, err)
	require.Equal(t, int32(3), hits.Load())
}

// TestWaitCounterUntilTarget polls a counter endpoint that increments
// per request and stops exactly at the target value.
func TestWaitCounterUntilTarget(t *testing.T) {
	t.Parallel()

	var value atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(strconv.Itoa(int(value.Add(1)))))
		}))
	defer srv.Close()

	probe := w8r.CounterProbe(w8r.HTTPFetcher(srv.URL), "3")

	err := w8r.Wait(context.Background(), probe, 10, WithFastInterval())
	require.NoError(t, err)
	require.Equal(t, int32(3), value.Load())
}

// WithFastInterval keeps stack tests quick while still exercising the
// real clock.
func WithFastInterval() w8r.Option {
	return w8r.WithInterval(5 * time.Millisecond)
}

package narou

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recordSleeps replaces the client's sleep with a recorder so throttle and
// backoff waits can be asserted without real waiting.
func recordSleeps(client *Client) *[]time.Duration {
	slept := make([]time.Duration, 0)
	client.sleep = func(d time.Duration) {
		slept = append(slept, d)
	}
	return &slept
}

func TestClientGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	client := NewClient(0, 5*time.Second, 3, "test-agent")
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	require.Equal(t, "hello", string(resp.Body()))
}

func TestClientGet_SendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := NewClient(0, 5*time.Second, 1, "narou-dl/test")
	_, err := client.Get(server.URL)
	require.NoError(t, err)
	require.Equal(t, "narou-dl/test", gotAgent)
}

func TestClientGet_RetriesExhausted(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(0, 5*time.Second, 3, "test-agent")
	slept := recordSleeps(client)

	_, err := client.Get(server.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, 3, fetchErr.Attempts)
	require.Equal(t, 3, attempts)

	// Backoff runs between attempts only: 0.5s then 1.0s, nothing after
	// the final failure.
	require.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, *slept)
}

func TestClientGet_RecoversMidRetry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(0, 5*time.Second, 5, "test-agent")
	recordSleeps(client)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	require.Equal(t, "ok", string(resp.Body()))
	require.Equal(t, 3, attempts)
}

func TestClientThrottle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := NewClient(100*time.Millisecond, 5*time.Second, 1, "test-agent")
	slept := recordSleeps(client)

	// Freeze the clock so the full delay remains outstanding between calls.
	base := time.Now()
	client.now = func() time.Time { return base }

	_, err := client.Get(server.URL)
	require.NoError(t, err)
	require.Empty(t, *slept, "first request must not be throttled")

	_, err = client.Get(server.URL)
	require.NoError(t, err)
	require.Equal(t, []time.Duration{100 * time.Millisecond}, *slept)
}

func TestBackoffSchedule(t *testing.T) {
	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, time.Second},
		{3, 2 * time.Second},
		{4, 4 * time.Second},
		{5, 5 * time.Second},
		{10, 5 * time.Second},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Backoff(c.attempt), "attempt %d", c.attempt)
	}
}

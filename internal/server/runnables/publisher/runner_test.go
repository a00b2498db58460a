package publisher

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/atlanticdynamic/mapctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunner(t *testing.T) {
	t.Parallel()

	t.Run("requires a provider", func(t *testing.T) {
		_, err := NewRunner("localhost:0", nil)
		assert.ErrorIs(t, err, ErrNoProvider)
	})

	t.Run("with options", func(t *testing.T) {
		r, err := NewRunner("localhost:8080", &staticProvider{},
			WithTimeouts(TimeoutOptions{ReadTimeout: time.Second, DrainTimeout: 2 * time.Second}))
		require.NoError(t, err)
		assert.Equal(t, "localhost:8080", r.GetAddress())
		assert.Equal(t, "publisher.Runner[localhost:8080]", r.String())
		assert.Equal(t, time.Second, r.timeouts.ReadTimeout)
		assert.False(t, r.IsRunning())
	})
}

func TestRunner_Serve(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(t)
	addr := testutil.GetRandomListeningPort(t)

	r, err := NewRunner(addr, provider)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Run(ctx)
	}()
	require.Eventually(t, r.IsRunning, 2*time.Second, 10*time.Millisecond)

	get := func(path string) (*http.Response, string) {
		t.Helper()
		resp, err := http.Get("http://" + addr + path)
		require.NoError(t, err)
		defer func() { assert.NoError(t, resp.Body.Close()) }()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, string(body)
	}

	resp, body := get(PathControls)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, provider.snap.ETag(), resp.Header.Get("ETag"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	assert.Contains(t, body, `"Closer"`)

	resp, body = get("/controls/zoom.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"zoomIn"`)

	resp, _ = get(PathHealth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case <-errCh:
	case <-time.After(5 * time.Second):
		t.Fatal("publisher did not stop within timeout")
	}
}

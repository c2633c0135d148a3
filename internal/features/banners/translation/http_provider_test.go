package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProvider_Translate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req httpTranslateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "es", req.Target)

		_ = json.NewEncoder(w).Encode(httpTranslateResponse{Text: "¡" + req.Text + "!"})
	}))
	defer ts.Close()

	p := NewHTTPProvider(ts.URL, "en", time.Second)
	out, err := p.Translate(context.Background(), "Hola", "es")
	require.NoError(t, err)
	assert.Equal(t, "¡Hola!", out)
}

func TestHTTPProvider_NativeSkipsRemote(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	p := NewHTTPProvider(ts.URL, "en", time.Second)
	out, err := p.Translate(context.Background(), "Hello", "en")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out)
	assert.False(t, called)
}

func TestHTTPProvider_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	p := NewHTTPProvider(ts.URL, "en", time.Second)
	_, err := p.Translate(context.Background(), "Hello", "es")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestHTTPProvider_BadBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	p := NewHTTPProvider(ts.URL, "en", time.Second)
	_, err := p.Translate(context.Background(), "Hello", "es")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestHTTPProvider_WithHTTPClient(t *testing.T) {
	var gotHeader string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Test")
		_ = json.NewEncoder(w).Encode(httpTranslateResponse{Text: "ok"})
	}))
	defer ts.Close()

	client := &http.Client{Transport: headerRoundTripper{next: http.DefaultTransport}}
	p := NewHTTPProvider(ts.URL, "en", time.Second, WithHTTPClient(client))

	out, err := p.Translate(context.Background(), "text", "es")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "custom", gotHeader)
}

type headerRoundTripper struct {
	next http.RoundTripper
}

func (h headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-Test", "custom")
	return h.next.RoundTrip(req)
}

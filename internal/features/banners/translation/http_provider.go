package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"banner-studio/internal/core/httpclient"
)

// HTTPProvider calls an external translation endpoint.
//
// Request:  POST {"text": "...", "target": "es"}
// Response: 200 {"text": "..."}
type HTTPProvider struct {
	client   *http.Client
	endpoint string
	native   string
}

type httpTranslateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type httpTranslateResponse struct {
	Text string `json:"text"`
}

// HTTPOption configures an HTTPProvider.
type HTTPOption func(*HTTPProvider)

// WithHTTPClient replaces the default logging client, e.g. with a proxied one.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(p *HTTPProvider) {
		if client != nil {
			p.client = client
		}
	}
}

// NewHTTPProvider creates a provider for endpoint using the logging HTTP client.
func NewHTTPProvider(endpoint, native string, timeout time.Duration, opts ...HTTPOption) *HTTPProvider {
	p := &HTTPProvider{
		client:   httpclient.NewClient(timeout),
		endpoint: endpoint,
		native:   native,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Translate implements ports.TranslationProvider.
func (p *HTTPProvider) Translate(ctx context.Context, text, languageCode string) (string, error) {
	if languageCode == p.native || text == "" {
		return text, nil
	}

	body, err := json.Marshal(httpTranslateRequest{Text: text, Target: languageCode})
	if err != nil {
		return "", fmt.Errorf("failed to marshal translation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation provider returned status %d", resp.StatusCode)
	}

	var out httpTranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}

	return out.Text, nil
}

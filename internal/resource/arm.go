package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sdeodharms/bicep/internal/jsonval"
)

// Fetcher retrieves the current state of a resource as an untyped JSON
// tree. Failures propagate as-is; retries are the caller's business.
type Fetcher interface {
	Fetch(ctx context.Context, id ID, apiVersion string) (jsonval.Value, error)
}

// ARMClient fetches resources from an Azure Resource Manager endpoint
// with a static bearer token.
type ARMClient struct {
	Endpoint string // e.g. "https://management.azure.com"
	Token    string

	// HTTPClient may be overridden for tests; nil means a default
	// client with a request timeout.
	HTTPClient *http.Client
}

func (c *ARMClient) Fetch(ctx context.Context, id ID, apiVersion string) (jsonval.Value, error) {
	requestURL := strings.TrimRight(c.Endpoint, "/") + "/" +
		strings.TrimLeft(id.String(), "/") +
		"?api-version=" + url.QueryEscape(apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("failed to fetch %s: %w", id, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("failed to read response for %s: %w", id, err)
	}
	if resp.StatusCode != http.StatusOK {
		return jsonval.Value{}, fmt.Errorf("fetching %s returned status %d: %s", id, resp.StatusCode, trim(body))
	}

	v, err := jsonval.Parse(body)
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("malformed payload for %s: %w", id, err)
	}
	return v, nil
}

func trim(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

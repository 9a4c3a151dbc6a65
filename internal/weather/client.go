// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package weather queries the weather search endpoint.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/weatherctl/internal/jsonval"
)

// searchBase is the weather search endpoint. Declared as a var so tests can
// substitute an httptest server through Client.BaseURL.
var searchBase = "https://api.weatherdb.example.com/search"

// Client performs lookups against the search endpoint.
type Client struct {
	HTTP *http.Client
	// BaseURL overrides the default search endpoint when non-empty.
	BaseURL string
	// UserAgent is sent as the User-Agent header when non-empty.
	UserAgent string
}

// Search issues one GET to the search endpoint with the token and keyword
// as query parameters and decodes the response body as a generic JSON
// value. The request blocks until a response or a transport failure. Status
// codes are not inspected: any well-formed JSON body is accepted, and a
// body that is not JSON is an error regardless of status.
func (c *Client) Search(ctx context.Context, token, keyword string) (jsonval.Value, error) {
	base := c.BaseURL
	if base == "" {
		base = searchBase
	}

	params := url.Values{
		"token":   {token},
		"keyword": {keyword},
	}
	reqURL := base + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("expected a successful request: %w", err)
	}
	defer resp.Body.Close()

	v, err := jsonval.Decode(resp.Body)
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("parsing search response: %w", err)
	}
	return v, nil
}

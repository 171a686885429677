// Copyright 2023 PolygonApi Authors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/logging"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// URL is the default base URL of the server. It may be overwritten in tests
// before creating a new client.
var URL = "https://api.polygon.io"

// Client for querying Polygon.io reference data.
type Client struct {
	baseURL string // the base URL of the server
	apiKey  string // your very own secret key
}

// newClient creates a new client.
func newClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client based on the API key and injects it into the
// context. httpClient is the underlying HTTP client to issue requests with;
// nil means http.DefaultClient. It is wrapped so that every outgoing request
// carries the key as an "Authorization: Bearer" header, and handed to the
// fetch layer, which performs all the actual requests.
func UseClient(ctx context.Context, apiKey string, httpClient *http.Client) context.Context {
	ctx = fetch.UseClient(ctx, authClient(apiKey, httpClient))
	return context.WithValue(ctx, clientContextKey, newClient(URL, apiKey))
}

// authTransport attaches the bearer-token header to every outgoing request.
type authTransport struct {
	apiKey string
	base   http.RoundTripper
}

var _ http.RoundTripper = &authTransport{}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// The RoundTripper contract forbids modifying the original request.
	req2 := req.Clone(req.Context())
	req2.Header.Set("Authorization", "Bearer "+t.apiKey)
	return t.base.RoundTrip(req2)
}

// authClient returns a copy of base (http.DefaultClient when nil) whose
// transport attaches the bearer-token header for apiKey. The continuation
// URLs returned by the server carry no credentials, so the header is the
// only authentication on any request.
func authClient(apiKey string, base *http.Client) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}
	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	c := *base
	c.Transport = &authTransport{apiKey: apiKey, base: transport}
	return &c
}

// TransportError indicates that an HTTP request could not be completed, or
// completed with a non-2xx status.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %s", e.URL, e.Err.Error())
}

func (e *TransportError) Unwrap() error { return e.Err }

// DeserializationError indicates that a response body could not be parsed
// into the expected JSON shape.
type DeserializationError struct {
	URL string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to parse response from %s: %s", e.URL, e.Err.Error())
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// fetchJSON issues a single GET request and decodes the JSON response body
// into res. It requires a 2xx status. There is exactly one request per call;
// paging is the caller's concern. Authentication rides on the HTTP client
// injected by UseClient.
func (c *Client) fetchJSON(ctx context.Context, uri string, query url.Values, res interface{}) error {
	logging.Debugf(ctx, "GET %s", uri)
	resp, err := fetch.GetRetry(ctx, uri, query, nil)
	if err != nil {
		logging.Errorf(ctx, "request for %s failed: %s", uri, err.Error())
		return &TransportError{URL: uri, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := errors.Reason("unexpected status: %s", resp.Status)
		logging.Errorf(ctx, "request for %s failed: %s", uri, err.Error())
		return &TransportError{URL: uri, Err: err}
	}
	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return &DeserializationError{URL: uri, Err: err}
	}
	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

const HeaderCorrelationID = "X-Correlation-Id"

// Client is the shared transport under the typed API clients. It resolves
// paths against the configured base URL and collapses every failure mode
// (network error, timeout, non-2xx) into a *RequestError.
type Client struct {
	Name    string
	BaseURL *url.URL
	HTTP    *http.Client
	Logger  *log.Logger
}

func NewClient(name, baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	u, err := url.Parse(baseURL)
	if err != nil {
		// Fail fast: config error
		panic(fmt.Sprintf("invalid %s base url %q: %v", name, baseURL, err))
	}
	return &Client{Name: name, BaseURL: u, HTTP: httpClient, Logger: logger}
}

func (c *Client) doJSON(ctx context.Context, method, path string, headers http.Header, body, out any) error {
	u := c.BaseURL.ResolveReference(&url.URL{Path: path})

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	for k, vv := range headers {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(HeaderCorrelationID, uuid.NewString())

	if c.Logger != nil {
		c.Logger.Printf("%s %s", method, path)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &RequestError{Service: c.Name, Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused; the error body is not part
		// of the client contract.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return &RequestError{Service: c.Name, Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &RequestError{Service: c.Name, Method: method, Path: path, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// get performs a GET against the backend and unmarshals the JSON
// response body into data.
func (c *Client) get(ctx context.Context, path string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, data)
}

// post performs a POST with a JSON body and unmarshals the JSON response
// into data. A nil body sends an empty request (e.g. the refresh trigger).
func (c *Client) post(ctx context.Context, path string, body, data any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, data)
}

func (c *Client) do(req *http.Request, data any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failures are logged for diagnostics; the caller decides
		// whether to degrade or surface.
		log.Printf("%v %v/%v: %v", req.Method, req.URL.Host, req.URL.Path, err)
		return fmt.Errorf("cannot reach %v: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return newError(resp.StatusCode, content)
	}
	if data == nil {
		return nil
	}
	return json.Unmarshal(content, data)
}

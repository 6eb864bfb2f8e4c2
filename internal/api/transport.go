package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "timeoff/pkg/errors"
)

// do performs one HTTP round trip against the backend and returns the raw
// response body. A 204 or zero-length body is an empty success, not an
// error. Any network failure or non-2xx status comes back as a transport
// error, which the callers recover through the mock fallback.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.APIBase+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError(fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError(fmt.Sprintf("failed to read %s %s response", method, path), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewTransportError(
			fmt.Sprintf("%s %s returned status %d", method, path, resp.StatusCode), nil)
	}

	if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
		return []byte{}, nil
	}

	return body, nil
}

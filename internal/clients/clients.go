package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 5 * time.Second

// Product is a Product Directory record as returned by the product service.
type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	StockLeft int     `json:"stock_left"`
}

// User is a User Directory record as returned by the user service.
type User struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Orders []int64 `json:"orders"`
}

// StatusError is a non-2xx reply from a peer service. The orchestrator
// passes the upstream status code through to its own client.
type StatusError struct {
	Service string
	Code    int
	Detail  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s service error: %s", e.Service, e.Detail)
}

// CommError is a transport-level failure (connection refused, timeout).
type CommError struct {
	Service string
	Err     error
}

func (e *CommError) Error() string {
	return fmt.Sprintf("%s service communication error: %v", e.Service, e.Err)
}

func (e *CommError) Unwrap() error { return e.Err }

// do issues one JSON request and decodes a 2xx body into out (when non-nil).
// Non-2xx replies become a StatusError carrying the peer's detail message.
func do(ctx context.Context, hc *http.Client, service, method, url string, body, out interface{}) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return &CommError{Service: service, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &CommError{Service: service, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Service: service, Code: resp.StatusCode, Detail: detailOf(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s response: %w", service, err)
		}
	}
	return nil
}

// detailOf extracts the {"detail": ...} message the services emit for
// errors, falling back to the raw body.
func detailOf(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return string(raw)
}

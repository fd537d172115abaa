package gamma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"marketboard/internal/models"
)

// Client is a thin wrapper over the Gamma events listing endpoint. It issues
// one request per call with caching disabled; retry policy belongs to the
// caller.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{HTTPClient: httpClient, BaseURL: baseURL}
}

// FetchOptions controls the upstream query. Order decides which events are
// retrieved at all, not only their arrival order, so it is part of the
// ranking contract.
type FetchOptions struct {
	Limit  int
	Active bool
	Closed bool
	Order  string
}

// FetchEvents retrieves the raw event listing. The body may be either a bare
// JSON array or an object with a "data" array; both are accepted. Errors are
// classified as NetworkError, TimeoutError, UpstreamError, or
// MalformedResponseError.
func (c *Client) FetchEvents(ctx context.Context, opts FetchOptions) ([]models.RawEvent, error) {
	params := url.Values{}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	params.Set("active", strconv.FormatBool(opts.Active))
	params.Set("closed", strconv.FormatBool(opts.Closed))
	if opts.Order != "" {
		params.Set("order", opts.Order)
	}
	endpoint := c.BaseURL + "/events?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("gamma: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "marketboard/1.0")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	return decodeEvents(body)
}

// decodeEvents accepts both listing shapes Gamma has been observed to send.
func decodeEvents(body []byte) ([]models.RawEvent, error) {
	var events []models.RawEvent
	if err := json.Unmarshal(body, &events); err == nil {
		return events, nil
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, &MalformedResponseError{Reason: "body is not JSON"}
	}
	if len(wrapped.Data) == 0 {
		return nil, &MalformedResponseError{Reason: "top level is neither an array nor {data: [...]}"}
	}
	if err := json.Unmarshal(wrapped.Data, &events); err != nil {
		return nil, &MalformedResponseError{Reason: "data field is not an event array"}
	}
	return events, nil
}

func classifyTransportError(ctx context.Context, err error) error {
	// Caller cancellation propagates as-is so the handler can tell an
	// aborted request apart from an upstream failure.
	if ctx.Err() == context.Canceled {
		return ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Err: err}
	}
	return &NetworkError{Err: err}
}

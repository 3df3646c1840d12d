package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tourgate/metrics"

	"go.uber.org/zap"
)

// restClient is the transport shared by the three adapters: one base URL,
// one bounded timeout per call, JSON in and out.
type restClient struct {
	service string
	baseURL string
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

func newRESTClient(service, baseURL string, timeout time.Duration, logger *zap.Logger) *restClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &restClient{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
		logger:  logger,
	}
}

// do issues one request and decodes the response body into out (unless out
// is nil). Errors are classified into the package taxonomy.
func (c *restClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			metrics.UpstreamCall(c.service, "timeout")
			return fmt.Errorf("%w: %s %s", ErrTimeout, method, path)
		}
		metrics.UpstreamCall(c.service, "unreachable")
		return fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.UpstreamCall(c.service, "not_found")
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		metrics.UpstreamCall(c.service, "error")
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s: %s", ErrValidation, method, path, strings.TrimSpace(string(detail)))
	case resp.StatusCode >= 400:
		metrics.UpstreamCall(c.service, "error")
		return fmt.Errorf("%s %s: upstream status %d", method, path, resp.StatusCode)
	}

	metrics.UpstreamCall(c.service, "ok")
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrShape, method, path, err)
	}
	return nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// getRaw fetches path into a raw JSON value. The Catalog Service wraps
// payloads as {success, message, data}; unwrapEnvelope peels that off.
func (c *restClient) getRaw(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func unwrapEnvelope(raw json.RawMessage) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return raw
}

func decodeObject(raw json.RawMessage) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	return obj, nil
}

func decodeArray(raw json.RawMessage) ([]map[string]any, error) {
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	return items, nil
}

// logDegraded records a read-path failure that was absorbed into an
// empty/nil fallback.
func (c *restClient) logDegraded(op string, err error) {
	c.logger.Warn("upstream read degraded",
		zap.String("service", c.service),
		zap.String("op", op),
		zap.Error(err),
	)
}

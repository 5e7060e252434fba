// SPDX-License-Identifier: MIT

package solver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/qubo"
)

// maxResponseBytes bounds the answer body read into memory.
const maxResponseBytes = 32 << 20

// ClientConfig locates and authenticates the remote sampling service.
type ClientConfig struct {
	Endpoint string `validate:"required,url"`
	Token    string
	Solver   string
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) ClientOption {
	if hc == nil {
		panic("WithHTTPClient(nil): http client must be non-nil")
	}
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger for request/response events.
func WithLogger(l *zap.Logger) ClientOption {
	if l == nil {
		panic("WithLogger(nil): logger must be non-nil")
	}
	return func(c *Client) { c.log = l }
}

// Client submits problems to a remote sampler over HTTP. It holds no
// per-call state and may be reused.
type Client struct {
	cfg  ClientConfig
	http *http.Client
	log  *zap.Logger
}

var _ Sampler = (*Client)(nil)

// NewClient validates cfg and returns a Client.
//
// Errors: ErrAuthentication when cfg.Token is empty; ErrInvalidParams when
// the endpoint is not a URL.
func NewClient(cfg ClientConfig, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("NewClient: no API token configured: %w", ErrAuthentication)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("NewClient: endpoint %q: %w: %w", cfg.Endpoint, ErrInvalidParams, err)
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	c := &Client{cfg: cfg, http: http.DefaultClient, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SampleQUBO submits q and returns the decoded Binary sample set.
func (c *Client) SampleQUBO(ctx context.Context, q *qubo.QUBO, p Params) (*SampleSet, error) {
	if q == nil {
		return nil, fmt.Errorf("SampleQUBO: %w", ErrNilModel)
	}
	ss, err := c.submit(ctx, "qubo", quboRequest(q), q.Variables(), qubo.Binary, p)
	if err != nil {
		return nil, fmt.Errorf("SampleQUBO: %w", err)
	}

	return ss, nil
}

// SampleIsing submits m and returns the decoded Spin sample set.
func (c *Client) SampleIsing(ctx context.Context, m *qubo.Ising, p Params) (*SampleSet, error) {
	if m == nil {
		return nil, fmt.Errorf("SampleIsing: %w", ErrNilModel)
	}
	ss, err := c.submit(ctx, "ising", isingRequest(m), m.Variables(), qubo.Spin, p)
	if err != nil {
		return nil, fmt.Errorf("SampleIsing: %w", err)
	}

	return ss, nil
}

// submit performs the single blocking round-trip and classifies failures.
func (c *Client) submit(ctx context.Context, typ string, data problemData, vars []string, vt qubo.Vartype, p Params) (*SampleSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	body, err := sonic.Marshal(problemRequest{
		Solver: c.cfg.Solver,
		Label:  p.Label,
		Type:   typ,
		Data:   data,
		Params: wireParams{NumReads: p.NumReads, ChainStrength: p.ChainStrength},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	reqID := uuid.New().String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/problems/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w: %w", ErrCommunication, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Auth-Token", c.cfg.Token)
	req.Header.Set("X-Request-ID", reqID)

	log := c.log.With(zap.String("request_id", reqID), zap.String("type", typ), zap.String("solver", c.cfg.Solver))
	log.Info("submitting problem",
		zap.Int("variables", len(vars)),
		zap.Int("num_reads", p.NumReads),
		zap.Float64("chain_strength", p.ChainStrength))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCommunication, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w: %w", ErrCommunication, err)
	}
	log.Info("received response", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ErrAuthentication, resp.Status)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: %s: %s", ErrCommunication, resp.Status, snippet(raw))
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: %s: %s", ErrRejected, resp.Status, snippet(raw))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: unexpected %s", ErrCommunication, resp.Status)
	}

	var pr problemResponse
	if err = sonic.Unmarshal(raw, &pr); err != nil {
		return nil, fmt.Errorf("decode response: %w: %w", ErrCommunication, err)
	}
	if pr.Status != statusCompleted {
		msg := pr.ErrorMessage
		if msg == "" {
			msg = "no message"
		}
		return nil, fmt.Errorf("problem %s status %s (%s): %w", pr.ID, pr.Status, msg, ErrRejected)
	}
	recs, err := pr.records(vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommunication, err)
	}
	ss, err := NewSampleSet(vt, recs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommunication, err)
	}
	log.Debug("decoded sample set", zap.String("problem_id", pr.ID), zap.Int("records", ss.Len()))

	return ss, nil
}

// snippet trims a response body for error messages.
func snippet(b []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(b))
	if len(s) > limit {
		return s[:limit] + "..."
	}

	return s
}

// Package upstream implements the Upstream port against the Eeva REST API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.trai.ch/zerr"
)

const (
	// RequestIDHeader carries the id generated for every upstream request.
	RequestIDHeader = "X-Request-Id"

	maxBodyBytes = 8 << 20
)

var _ ports.Upstream = (*Client)(nil)

// Client talks JSON over HTTP to the upstream API.
type Client struct {
	base         *url.URL
	bypassHeader string
	bypassSecret string
	httpClient   *http.Client
	tracer       ports.Tracer
}

// NewClient creates a Client for cfg. Spans are recorded with tracer.
func NewClient(cfg domain.UpstreamConfig, tracer ports.Tracer) (*Client, error) {
	return newClientWithHTTP(cfg, tracer, &http.Client{Timeout: cfg.Timeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(cfg domain.UpstreamConfig, tracer ports.Tracer, client *http.Client) (*Client, error) {
	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "upstream_url", cfg.URL)
	}
	header := cfg.BypassHeader
	if header == "" {
		header = domain.DefaultBypassHeader
	}
	return &Client{
		base:         base,
		bypassHeader: header,
		bypassSecret: cfg.BypassSecret,
		httpClient:   client,
		tracer:       tracer,
	}, nil
}

// Get fetches path and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path, token string, out any) error {
	ctx, span := c.tracer.Start(ctx, "upstream GET",
		ports.WithAttribute("http.method", http.MethodGet),
		ports.WithAttribute("url.path", path),
	)
	defer span.End()

	req, err := c.newRequest(ctx, http.MethodGet, path, "", token, nil)
	if err != nil {
		span.RecordError(err)
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrUpstreamRequestFailed.Error()), "path", path)
		span.RecordError(err)
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	span.SetAttribute("http.status_code", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := zerr.With(domain.ErrUpstreamStatus, "status_code", resp.StatusCode)
		statusErr = zerr.With(statusErr, "path", path)
		span.RecordError(statusErr)
		return statusErr
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrUpstreamDecodeFailed.Error()), "path", path)
		span.RecordError(err)
		return err
	}
	return nil
}

// Forward relays fr to the upstream API. Any HTTP status is returned as a
// response; only transport failures are errors.
func (c *Client) Forward(ctx context.Context, fr domain.ForwardRequest) (*domain.ForwardResponse, error) {
	ctx, span := c.tracer.Start(ctx, "upstream "+fr.Method,
		ports.WithAttribute("http.method", fr.Method),
		ports.WithAttribute("url.path", fr.Path),
	)
	defer span.End()

	var body io.Reader
	if len(fr.Body) > 0 {
		body = bytes.NewReader(fr.Body)
	}
	req, err := c.newRequest(ctx, fr.Method, fr.Path, fr.RawQuery, fr.Token, body)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if fr.ContentType != "" {
		req.Header.Set("Content-Type", fr.ContentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrUpstreamRequestFailed.Error()), "path", fr.Path)
		span.RecordError(err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	span.SetAttribute("http.status_code", resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrUpstreamRequestFailed.Error()), "path", fr.Path)
		span.RecordError(err)
		return nil, err
	}

	return &domain.ForwardResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path, rawQuery, token string,
	body io.Reader,
) (*http.Request, error) {
	u := c.base.JoinPath(strings.TrimPrefix(path, "/"))
	u.RawQuery = rawQuery

	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrUpstreamRequestFailed.Error()), "path", path)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.bypassSecret != "" {
		req.Header.Set(c.bypassHeader, c.bypassSecret)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return req, nil
}

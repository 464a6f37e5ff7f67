package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"gamelog-tracker/internal/config"
	"gamelog-tracker/internal/constants"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

var (
	ErrInvalidURL  = errors.New("Invalid URL, only http and https are supported")
	ErrRemoteFetch = errors.New("Failed to fetch remote log")
)

// LogClient downloads raw log files over http(s).
type LogClient struct {
	client  *fasthttp.Client
	timeout time.Duration
	logger  zerolog.Logger
}

func NewLogClient(cfg *config.Config, logger zerolog.Logger) *LogClient {
	return &LogClient{
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         cfg.RemoteFetchTimeout,
			WriteTimeout:        cfg.RemoteFetchTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
			MaxResponseBodySize: constants.MaxRemoteLogBytes,
		},
		timeout: cfg.RemoteFetchTimeout,
		logger:  logger,
	}
}

// Fetch returns the body of a GET on rawURL. The context deadline wins over the configured
// timeout when it is earlier.
func (c *LogClient) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", ErrInvalidURL
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	start := time.Now()
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		c.logger.Warn().Err(err).Str("url", rawURL).Msg("remote log request failed")
		return "", fmt.Errorf("%w: %w", ErrRemoteFetch, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode()).Str("url", rawURL).Msg("remote log returned non-200")
		return "", fmt.Errorf("%w: status %d", ErrRemoteFetch, resp.StatusCode())
	}

	body := string(resp.Body())
	c.logger.Debug().
		Str("url", rawURL).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("remote log fetched")

	return body, nil
}

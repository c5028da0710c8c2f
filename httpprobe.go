package w8r

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxResponseBodySize = 1 << 20 // 1MB

// Connection pooling limits so a harness polling many endpoints does
// not exhaust sockets.
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultMaxConnsPerHost     = 10
	defaultIdleConnTimeout     = 60 * time.Second
)

// defaultHTTPClient is shared by all HTTP probes that do not inject
// their own client. It carries no global timeout; evaluations are
// bounded per-call via context (see [WithProbeTimeout]).
var defaultHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        defaultMaxIdleConns,
		MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
		MaxConnsPerHost:     defaultMaxConnsPerHost,
		IdleConnTimeout:     defaultIdleConnTimeout,
	},
}

// httpConfig holds the optional configuration for HTTP probes.
type httpConfig struct {
	client   *http.Client
	username string
	password string
	hasAuth  bool
}

// HTTPOption configures an HTTP probe or fetcher.
type HTTPOption func(*httpConfig)

// BasicAuth attaches a credential pair to every request the probe
// issues.
func BasicAuth(username, password string) HTTPOption {
	return func(cfg *httpConfig) {
		cfg.username = username
		cfg.password = password
		cfg.hasAuth = true
	}
}

// HTTPClient substitutes the HTTP client used by the probe. The
// default is a shared pooled client with no global timeout.
func HTTPClient(c *http.Client) HTTPOption {
	return func(cfg *httpConfig) {
		cfg.client = c
	}
}

// HTTPProbe succeeds when a GET to url returns a 2xx status. Transport
// errors and non-2xx statuses both count as "not yet"; a service that
// is still booting routinely answers with refused connections or
// gateway errors before it answers with 200.
func HTTPProbe(url string, opts ...HTTPOption) Probe {
	cfg := buildHTTPConfig(opts)

	return func(ctx context.Context) error {
		resp, err := doGet(ctx, cfg, url)
		if err != nil {
			return err
		}
		// Body is irrelevant for reachability; drain so the connection
		// can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize))
		_ = resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}

		return nil
	}
}

// HTTPFetcher returns a [Fetcher] that GETs url and yields the
// response body, capped at 1MB. Non-2xx statuses are errors, so
// content and counter probes built on it keep polling until the
// endpoint both answers and matches.
func HTTPFetcher(url string, opts ...HTTPOption) Fetcher {
	cfg := buildHTTPConfig(opts)

	return func(ctx context.Context) ([]byte, error) {
		resp, err := doGet(ctx, cfg, url)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		if err != nil {
			return nil, fmt.Errorf("GET %s: read body: %w", url, err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}

		return body, nil
	}
}

func buildHTTPConfig(opts []HTTPOption) httpConfig {
	cfg := httpConfig{client: defaultHTTPClient}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.client == nil {
		cfg.client = defaultHTTPClient
	}

	return cfg
}

func doGet(ctx context.Context, cfg httpConfig, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		// A malformed URL never becomes well-formed by polling.
		return nil, Permanent(fmt.Errorf("build request for %s: %w", url, err))
	}

	if cfg.hasAuth {
		req.SetBasicAuth(cfg.username, cfg.password)
	}

	resp, err := cfg.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}

	return resp, nil
}

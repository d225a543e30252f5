package courtlistener

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/roivaz/courtlistener-mcp/internal/logging"
)

const (
	DefaultBaseURL = "https://www.courtlistener.com/api/rest/v4/"
	DefaultSiteURL = "https://www.courtlistener.com"

	userAgent       = "courtlistener-mcp/1.0"
	maxResponseSize = 32 << 20
)

type Config struct {
	BaseURL     string
	SiteURL     string
	Token       string
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
	// HTTPClient is the base client wrapped with token auth. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client talks to the CourtListener v4 REST API.
type Client struct {
	baseURL *url.URL
	siteURL string
	token   string
	http    *http.Client
	timeout time.Duration
	retry   Backoff
	log     logging.Logger
	now     func() time.Time
}

// NewHTTPClient wraps base so every request carries "Authorization: Token <token>".
func NewHTTPClient(token string, base *http.Client) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Token"})
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	return oauth2.NewClient(ctx, ts)
}

func NewClient(cfg Config) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}

	site := strings.TrimRight(cfg.SiteURL, "/")
	if site == "" {
		site = DefaultSiteURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	backoff := cfg.Backoff
	if backoff < 0 {
		backoff = 0
	}

	log := cfg.Logger
	if log.Logr().GetSink() == nil {
		log = logging.Discard()
	}

	return &Client{
		baseURL: u,
		siteURL: site,
		token:   strings.TrimSpace(cfg.Token),
		http:    NewHTTPClient(strings.TrimSpace(cfg.Token), cfg.HTTPClient),
		timeout: timeout,
		retry:   Backoff{Attempts: attempts, Base: backoff},
		log:     log.WithName("courtlistener"),
		now:     time.Now,
	}, nil
}

func (c *Client) BaseURL() string { return c.baseURL.String() }

// SiteURL makes a site-relative path such as an absolute_url field fully qualified.
func (c *Client) SiteURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.siteURL + path
}

// Get issues a GET against path (relative to the API root) with params encoded as the query.
func (c *Client) Get(ctx context.Context, path string, params any) (gjson.Result, error) {
	values, err := EncodeParams(params)
	if err != nil {
		return gjson.Result{}, err
	}
	return c.do(ctx, http.MethodGet, path, values, nil)
}

// PostForm issues a form-encoded POST against path.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (gjson.Result, error) {
	return c.do(ctx, http.MethodPost, path, nil, form)
}

func (c *Client) endpoint(path string, values url.Values) string {
	rel := &url.URL{Path: strings.TrimLeft(path, "/")}
	u := c.baseURL.ResolveReference(rel)
	if len(values) > 0 {
		u.RawQuery = values.Encode()
	}
	return u.String()
}

func (c *Client) do(ctx context.Context, method, path string, values url.Values, form url.Values) (gjson.Result, error) {
	if c.token == "" {
		return gjson.Result{}, missingTokenError()
	}

	target := c.endpoint(path, values)
	var result gjson.Result
	err := c.retry.Do(ctx, c.log, func(ctx context.Context) error {
		r, err := c.attempt(ctx, method, target, form)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	return result, err
}

func (c *Client) attempt(ctx context.Context, method, target string, form url.Values) (gjson.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return gjson.Result{}, Validationf("build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		annotated := c.annotateError(err)
		c.log.Debug("upstream request failed", "method", method, "url", target, "elapsed", time.Since(start), "error", annotated.Error())
		return gjson.Result{}, annotated
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return gjson.Result{}, c.annotateError(err)
	}
	c.log.Debug("upstream response", "method", method, "url", target, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, errorFromResponse(resp, payload, c.now())
	}
	if !gjson.ValidBytes(payload) {
		return gjson.Result{}, formatErrorf(nil, "CourtListener returned a malformed response for %s", req.URL.Path)
	}
	return gjson.ParseBytes(payload), nil
}

func (c *Client) annotateError(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, Message: fmt.Sprintf("CourtListener did not respond within %s", c.timeout), Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &Error{Kind: KindTimeout, Message: "request cancelled", Cause: err}
	}
	return &Error{Kind: KindTransientNetwork, Message: "could not reach CourtListener", Cause: err}
}

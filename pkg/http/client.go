package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL         string
	client          *http.Client
	defaultHeaders  map[string]string
	sensitiveParams []string
	logger          HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// SensitiveQueryParams are masked in every URL handed to the logger or put in an error.
	SensitiveQueryParams []string
	Logger               HTTPLogger
}

// StatusError is returned by Execute when the server answered with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// TransportError is returned by Execute when no response was received at all.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline being exceeded.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		client:          client,
		defaultHeaders:  opts.DefaultHeaders,
		sensitiveParams: opts.SensitiveQueryParams,
		logger:          opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// URL returns the absolute URL for path without any query string.
func (hc *Client) URL(path string) string {
	return hc.buildURL(path)
}

// doRequest sends an HTTP request and decodes the body into successResp (2xx) or errorResp.
// It returns the success response, error response, status code, and error if any.
// A transport failure yields status 0 and a *TransportError; a non-2xx status yields a *StatusError.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, successResp any, errorResp any) (any, any, int, error) {
	fullURL := hc.buildURL(path)
	if len(queryParams) > 0 {
		fullURL += "?" + buildQueryString(queryParams)
	}
	loggedURL := RedactURL(fullURL, hc.sensitiveParams...)

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to build request for %s", loggedURL)
	}

	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}

	if hc.logger != nil {
		hc.logger.LogRequest(method, loggedURL, hc.defaultHeaders)
	}

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		// *url.Error carries the raw URL, so only the inner cause is kept.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		transportErr := &TransportError{Method: method, URL: loggedURL, Err: err}
		hc.logError(method, loggedURL, 0, "", time.Since(start), transportErr)
		return nil, nil, 0, transportErr
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		transportErr := &TransportError{Method: method, URL: loggedURL, Err: err}
		hc.logError(method, loggedURL, resp.StatusCode, "", time.Since(start), transportErr)
		return nil, nil, resp.StatusCode, transportErr
	}
	latency := time.Since(start)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(method, loggedURL, resp.StatusCode, string(bodyBytes), latency)
		}
		if successResp != nil {
			if err = unmarshalResponse(bodyBytes, successResp); err != nil {
				return nil, nil, resp.StatusCode, err
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode}
	hc.logError(method, loggedURL, resp.StatusCode, string(bodyBytes), latency, statusErr)

	if errorResp != nil {
		if err = unmarshalResponse(bodyBytes, errorResp); err != nil {
			return nil, nil, resp.StatusCode, statusErr
		}
	}

	return nil, errorResp, resp.StatusCode, statusErr
}

func (hc *Client) logError(method, loggedURL string, status int, body string, latency time.Duration, err error) {
	if hc.logger != nil {
		hc.logger.LogResponseError(method, loggedURL, status, body, latency, err)
	}
}

// unmarshalResponse decodes a JSON body into target.
// *[]byte and *string targets receive the raw body whatever the content type.
func unmarshalResponse(bodyBytes []byte, target any) error {
	switch t := target.(type) {
	case *[]byte:
		*t = bodyBytes
		return nil
	case *string:
		*t = string(bodyBytes)
		return nil
	}
	return json.Unmarshal(bodyBytes, target)
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds an escaped query string, keys sorted.
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}

// Redacted replaces sensitive query values in logged URLs.
const Redacted = "REDACTED"

// RedactURL masks the values of the given query parameters.
func RedactURL(rawURL string, params ...string) string {
	if len(params) == 0 {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	changed := false
	for _, param := range params {
		if query.Has(param) {
			query.Set(param, Redacted)
			changed = true
		}
	}
	if !changed {
		return rawURL
	}

	parsed.RawQuery = query.Encode()
	return parsed.String()
}

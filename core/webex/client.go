package webex

import (
	"bytes"
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

// Client defines the interface for the Webex API operations used by this
// tool. It is intentionally narrow so tests can substitute a mock without
// network access.
type Client interface {
	// Me returns the authenticated user, including the owning org.
	Me(ctx context.Context) (*Person, error)
	// ListLocations lists all locations of the org.
	ListLocations(ctx context.Context) ([]Location, error)
	// ListAutoAttendants lists auto-attendants, optionally scoped to a
	// location. An empty locationID lists across all locations.
	ListAutoAttendants(ctx context.Context, locationID string) ([]AutoAttendant, error)
	// GetAutoAttendant fetches the full configuration of one auto-attendant.
	GetAutoAttendant(ctx context.Context, locationID, autoAttendantID, orgID string) (*AutoAttendantDetails, error)
	// UpdateAutoAttendant submits a full configuration update.
	UpdateAutoAttendant(ctx context.Context, locationID, autoAttendantID, orgID string, settings *AutoAttendantDetails) error
	// UploadGreeting uploads a WAV greeting asset for one menu of one
	// auto-attendant.
	UploadGreeting(ctx context.Context, req UploadRequest) error
}

// APIError is returned for non-2xx responses from the Webex API.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Method is the HTTP method of the failed request.
	Method string
	// URL is the request URL.
	URL string
	// Detail is the response body, truncated.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("webex api: %s %s: status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("webex api: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Detail)
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// NewClient creates a new Webex API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("webex: access token is required")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Custom transport with strict timeouts so a stuck request cannot hang
	// its owning goroutine forever.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &apiClient{
		http:      &http.Client{Transport: transport},
		token:     cfg.Token,
		apiBase:   baseURL(cfg.APIHost, "https://webexapis.com"),
		cpapiBase: baseURL(cfg.CPAPIHost, "https://cpapi-r.wbx2.com"),
	}, nil
}

// baseURL normalizes a configured host into a scheme-qualified base URL.
func baseURL(host, fallback string) string {
	if host == "" {
		return fallback
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	return strings.TrimSuffix(host, "/")
}

type apiClient struct {
	http      *http.Client
	token     string
	apiBase   string
	cpapiBase string
}

func (c *apiClient) Me(ctx context.Context) (*Person, error) {
	var person Person
	if err := c.getJSON(ctx, c.apiBase+"/v1/people/me", nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (c *apiClient) ListLocations(ctx context.Context) ([]Location, error) {
	var out struct {
		Items []Location `json:"items"`
	}
	if err := c.getJSON(ctx, c.apiBase+"/v1/locations", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *apiClient) ListAutoAttendants(ctx context.Context, locationID string) ([]AutoAttendant, error) {
	params := url.Values{}
	if locationID != "" {
		params.Set("locationId", locationID)
	}
	var out struct {
		AutoAttendants []AutoAttendant `json:"autoAttendants"`
	}
	if err := c.getJSON(ctx, c.apiBase+"/v1/telephony/config/autoAttendants", params, &out); err != nil {
		return nil, err
	}
	return out.AutoAttendants, nil
}

func (c *apiClient) GetAutoAttendant(ctx context.Context, locationID, autoAttendantID, orgID string) (*AutoAttendantDetails, error) {
	params := url.Values{}
	if orgID != "" {
		params.Set("orgId", orgID)
	}
	var details AutoAttendantDetails
	if err := c.getJSON(ctx, c.autoAttendantURL(locationID, autoAttendantID), params, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *apiClient) UpdateAutoAttendant(ctx context.Context, locationID, autoAttendantID, orgID string, settings *AutoAttendantDetails) error {
	params := url.Values{}
	if orgID != "" {
		params.Set("orgId", orgID)
	}
	body, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode auto attendant settings: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, c.autoAttendantURL(locationID, autoAttendantID), params, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (c *apiClient) autoAttendantURL(locationID, autoAttendantID string) string {
	return c.apiBase + "/v1/telephony/config/locations/" +
		url.PathEscape(locationID) + "/autoAttendants/" + url.PathEscape(autoAttendantID)
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *apiClient) getJSON(ctx context.Context, rawURL string, params url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, rawURL, params, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", rawURL, err)
	}
	return nil
}

// newRequest builds a request with bearer authentication applied.
func (c *apiClient) newRequest(ctx context.Context, method, rawURL string, params url.Values, body io.Reader) (*http.Request, error) {
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request %s %s: %w", method, rawURL, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do executes the request and maps non-2xx responses to an APIError.
func (c *apiClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webex api: %s %s: %w", req.Method, req.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := readDetail(resp.Body)
		resp.Body.Close()
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Method:     req.Method,
			URL:        req.URL.String(),
			Detail:     detail,
		}
	}
	return resp, nil
}

// readDetail reads a bounded amount of the response body for diagnostics.
func readDetail(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 2048))
	return strings.TrimSpace(string(b))
}

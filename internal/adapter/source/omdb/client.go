package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/reel/internal/domain"
)

const userAgent = "reel/1.0"

// Client implements domain.CatalogRepository for the OMDb API.
// Every call issues exactly one request: no retries, no caching.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ domain.CatalogRepository = (*Client)(nil)

// NewClient creates a new OMDb API client. timeout <= 0 leaves the
// transport without a deadline.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout < 0 {
		timeout = 0
	}
	return &Client{
		baseURL: strings.TrimSpace(baseURL),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs a GET against the catalog and returns the raw body.
// A non-200 answer carrying a provider failure document yields *domain.ProviderError.
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	query.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("omdb request", "url", redactKey(reqURL, c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("omdb request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrCatalogUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		var failure errorResponse
		if json.Unmarshal(body, &failure) == nil && failure.Response == responseFalse && failure.Error != "" {
			c.logger.Warn("omdb provider error", "status", resp.StatusCode, "message", failure.Error)
			return nil, &domain.ProviderError{Message: failure.Error}
		}
		c.logger.Error("omdb request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	return body, nil
}

// Search returns one page of title search results
func (c *Client) Search(ctx context.Context, query string, page int) (domain.ResultPage, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return domain.ResultPage{}, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.ResultPage{}, fmt.Errorf("%w: failed to parse response: %v", domain.ErrMalformedResponse, err)
	}

	if err := checkResponse(resp.Response, resp.Error); err != nil {
		c.logger.Debug("omdb search failed", "query", query, "page", page, "error", err)
		return domain.ResultPage{}, err
	}

	result, err := MapResultPage(resp, query, page)
	if err != nil {
		return domain.ResultPage{}, err
	}
	c.logger.Debug("omdb search complete", "query", query, "page", page, "items", len(result.Items), "total", result.TotalResults)
	return result, nil
}

// FetchDetail returns the full record for a catalog id
func (c *Client) FetchDetail(ctx context.Context, id string) (domain.MovieDetail, error) {
	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", "full")

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return domain.MovieDetail{}, err
	}

	var resp DetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.MovieDetail{}, fmt.Errorf("%w: failed to parse response: %v", domain.ErrMalformedResponse, err)
	}

	if err := checkResponse(resp.Response, resp.Error); err != nil {
		c.logger.Debug("omdb detail failed", "id", id, "error", err)
		return domain.MovieDetail{}, err
	}

	return MapDetail(resp), nil
}

// checkResponse maps the Response flag to an error
func checkResponse(flag, message string) error {
	switch flag {
	case responseTrue:
		return nil
	case responseFalse:
		if message == "" {
			return &domain.ProviderError{Message: "Unknown error"}
		}
		return &domain.ProviderError{Message: message}
	default:
		return fmt.Errorf("%w: missing Response flag", domain.ErrMalformedResponse)
	}
}

// redactKey hides the API key in logged URLs
func redactKey(rawURL, key string) string {
	if key == "" {
		return rawURL
	}
	return strings.ReplaceAll(rawURL, "apikey="+url.QueryEscape(key), "apikey=REDACTED")
}

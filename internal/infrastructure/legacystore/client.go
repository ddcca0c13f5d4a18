package legacystore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/legacyxml"
)

// maxResponseSize bounds a full (unlimited) feed read (50MB)
const maxResponseSize = 50 * 1024 * 1024

// streamChunkSize is the read granularity for limited product fetches
const streamChunkSize = 8 * 1024

// Client implements legacy.Fetcher against the storefront's CGI scripts
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *zap.Logger
}

var _ legacy.Fetcher = (*Client)(nil)

// NewClient creates a legacy store client with a validated configuration
func NewClient(config Config, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

// buildURL resolves the endpoint for a script. When the configured base URL
// already points at a CGI script, that segment is replaced.
func (c *Client) buildURL(script string, params url.Values) (string, error) {
	u, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return "", fmt.Errorf("legacystore: invalid base URL: %w", err)
	}
	path := strings.TrimSuffix(u.Path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 && strings.HasSuffix(path, ".cgi") {
		path = path[:i]
	}
	u.Path = path + "/" + script
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// doRequest issues an authenticated GET and returns the open response body.
// The caller owns closing it.
func (c *Client) doRequest(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("legacystore: build request: %w", err)
	}
	req.SetBasicAuth(c.config.MerchantID, c.config.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("legacystore: request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("legacystore: unexpected status %s", resp.Status)
	}
	return resp, nil
}

// fetchDocument downloads a full feed body as text, preamble-stripped
func (c *Client) fetchDocument(ctx context.Context, endpoint string) (string, error) {
	resp, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("legacystore: read response: %w", err)
	}
	return stripPreamble(string(body)), nil
}

// TestConnection issues a minimal request and reports reachability. It never
// returns an error; failures come back as (false, message).
func (c *Client) TestConnection(ctx context.Context) (bool, string) {
	params := url.Values{}
	params.Set("action", "list")

	endpoint, err := c.buildURL(bulkScript, params)
	if err != nil {
		return false, err.Error()
	}
	resp, err := c.doRequest(ctx, endpoint)
	if err != nil {
		c.logger.Warn("legacy store connection test failed", zap.Error(err))
		return false, err.Error()
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
	return true, http.StatusText(resp.StatusCode)
}

// FetchProducts downloads the product feed. A positive limit switches to an
// incremental read that cancels as soon as enough record closers have been
// seen, then repairs the truncated tail.
func (c *Client) FetchProducts(ctx context.Context, limit int) ([]legacy.Product, error) {
	params := url.Values{}
	params.Set("version", protocolVersion)

	endpoint, err := c.buildURL(bulkScript, params)
	if err != nil {
		return []legacy.Product{}, err
	}

	var doc string
	if limit > 0 {
		doc, err = c.fetchLimited(ctx, endpoint, limit)
	} else {
		doc, err = c.fetchDocument(ctx, endpoint)
	}
	if err != nil {
		c.logger.Warn("product fetch failed", zap.Error(err))
		return []legacy.Product{}, err
	}

	products := legacyxml.ParseProducts(doc)
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	c.logger.Info("fetched products from legacy store", zap.Int("count", len(products)))
	return products, nil
}

// fetchLimited reads the body chunk by chunk, counting closing record tags,
// and abandons the stream once the limit is reached. The partial document is
// re-terminated so downstream parsing sees well-formed input.
func (c *Client) fetchLimited(ctx context.Context, endpoint string, limit int) (string, error) {
	resp, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var buf strings.Builder
	chunk := make([]byte, streamChunkSize)
	truncated := false
	for {
		n, readErr := resp.Body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if legacyxml.CountClosingTags(buf.String(), legacyxml.ProductRecordTag) >= limit {
				truncated = true
				break
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", fmt.Errorf("legacystore: read response: %w", readErr)
		}
		if buf.Len() >= maxResponseSize {
			truncated = true
			break
		}
	}

	doc := stripPreamble(buf.String())
	if truncated {
		c.logger.Debug("product stream cancelled at limit",
			zap.Int("limit", limit), zap.Int("bytes_read", buf.Len()))
		doc = legacyxml.RepairTruncated(doc, legacyxml.ProductRecordTag, legacyxml.ProductRootTag)
	}
	return doc, nil
}

// FetchCustomers downloads the customer feed, capped post-parse when limit
// is positive.
func (c *Client) FetchCustomers(ctx context.Context, limit int) ([]legacy.Customer, error) {
	params := url.Values{}
	params.Set("version", protocolVersion)
	params.Set("table", "customers")

	endpoint, err := c.buildURL(bulkScript, params)
	if err != nil {
		return []legacy.Customer{}, err
	}
	doc, err := c.fetchDocument(ctx, endpoint)
	if err != nil {
		c.logger.Warn("customer fetch failed", zap.Error(err))
		return []legacy.Customer{}, err
	}

	customers := legacyxml.ParseCustomers(doc)
	if limit > 0 && len(customers) > limit {
		customers = customers[:limit]
	}
	c.logger.Info("fetched customers from legacy store", zap.Int("count", len(customers)))
	return customers, nil
}

// FetchOrders downloads orders matching the query, always requesting
// payment details inline.
func (c *Client) FetchOrders(ctx context.Context, query legacy.OrderQuery) ([]legacy.Order, error) {
	params := url.Values{}
	params.Set("version", protocolVersion)
	params.Set("pay", "yes")
	if query.StartOrder != "" {
		params.Set("startorder", query.StartOrder)
	}
	if query.EndOrder != "" {
		params.Set("endorder", query.EndOrder)
	}
	if query.StartDate != "" {
		params.Set("startdate", query.StartDate)
	}
	if query.EndDate != "" {
		params.Set("enddate", query.EndDate)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	endpoint, err := c.buildURL(orderScript, params)
	if err != nil {
		return []legacy.Order{}, err
	}
	doc, err := c.fetchDocument(ctx, endpoint)
	if err != nil {
		c.logger.Warn("order fetch failed", zap.Error(err))
		return []legacy.Order{}, err
	}

	orders := legacyxml.ParseOrders(doc)
	if query.Limit > 0 && len(orders) > query.Limit {
		orders = orders[:query.Limit]
	}
	c.logger.Info("fetched orders from legacy store", zap.Int("count", len(orders)))
	return orders, nil
}

// stripPreamble removes the raw protocol header line the order script
// sometimes embeds before the XML begins.
func stripPreamble(body string) string {
	trimmed := strings.TrimLeft(body, " \t\r\n")
	if !strings.HasPrefix(strings.ToLower(trimmed), "content-type:") {
		return body
	}
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
		return strings.TrimLeft(trimmed[i+1:], "\r\n")
	}
	return ""
}

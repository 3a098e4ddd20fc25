// Package marketplace reads order details from the marketplace REST API.
package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jekabolt/sales-panel/internal/dto"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	DefaultBaseURL  = "https://api.mercadolibre.com"
	DefaultTokenURL = "https://api.mercadolibre.com/oauth/token"
)

// maxBodySize caps order detail responses.
const maxBodySize = 4 << 20

var orderResource = regexp.MustCompile(`^/orders/\d+$`)

type Config struct {
	BaseURL      string        `mapstructure:"base_url"`
	TokenURL     string        `mapstructure:"token_url"`
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
}

// Client is a marketplace API client authenticated with client credentials.
// Access tokens are fetched on first use and reused until they expire.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a new marketplace API client.
func New(c *Config) dependency.Marketplace {
	return newClient(c)
}

func newClient(c *Config) *Client {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	tokenURL := c.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	timeout := c.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cc := &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	// The token endpoint is reached through this client as well.
	base := &http.Client{Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	httpClient := cc.Client(ctx)
	httpClient.Timeout = timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetOrder retrieves the order behind a notification resource such as /orders/2000003508419013.
func (c *Client) GetOrder(ctx context.Context, resource string) (*dto.MarketplaceOrder, error) {
	if !orderResource.MatchString(resource) {
		return nil, fmt.Errorf("%w: unexpected resource %q", gerr.InvalidMarketplace, resource)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+resource, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: sending request: %v", gerr.MarketplaceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", gerr.MarketplaceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s: status %d: %s", gerr.MarketplaceUnavailable, resource, resp.StatusCode, truncate(body, 256))
	}

	var order dto.MarketplaceOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling order: %v", gerr.InvalidMarketplace, err)
	}

	return &order, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}

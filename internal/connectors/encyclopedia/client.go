// Package encyclopedia fetches pages of the online encyclopedia whose
// infoboxes supply symptom descriptions.
package encyclopedia

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Encyclopedia = (*Client)(nil)

// Fetcher retrieves a page body.
type Fetcher interface {
	Get(ctx context.Context, address string) ([]byte, error)
}

// Client fetches encyclopedia pages.
type Client struct {
	fetcher Fetcher
	domain  string
}

// NewClient creates a client recognising pages under the given domain,
// e.g. "wikipedia.org" accepts en.wikipedia.org and de.m.wikipedia.org.
func NewClient(fetcher Fetcher, cfg domain.EncyclopediaConfig) *Client {
	return &Client{
		fetcher: fetcher,
		domain:  strings.ToLower(strings.TrimPrefix(cfg.Domain, ".")),
	}
}

// Accepts reports whether address is an http(s) page under the domain.
func (c *Client) Accepts(address string) bool {
	u, err := url.Parse(address)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == c.domain || strings.HasSuffix(host, "."+c.domain)
}

// FetchPage returns the raw HTML at address.
func (c *Client) FetchPage(ctx context.Context, address string) ([]byte, error) {
	if !c.Accepts(address) {
		return nil, fmt.Errorf("%w: %s is not under %s", domain.ErrInvalidInput, address, c.domain)
	}
	return c.fetcher.Get(ctx, address)
}

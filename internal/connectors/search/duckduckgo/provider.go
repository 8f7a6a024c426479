// Package duckduckgo implements the search provider over DuckDuckGo's HTML
// results page, which needs no API key.
package duckduckgo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/custodia-labs/symptomlex/internal/connectors/web"
	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driven"
	"github.com/custodia-labs/symptomlex/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

// MaxResults caps a single query regardless of the requested limit.
const MaxResults = 30

// Fetcher retrieves a page body.
type Fetcher interface {
	Get(ctx context.Context, address string) ([]byte, error)
}

// Provider queries the DuckDuckGo HTML endpoint.
type Provider struct {
	fetcher  Fetcher
	endpoint string
}

// NewProvider creates a provider for the given endpoint.
func NewProvider(fetcher Fetcher, endpoint string) *Provider {
	if endpoint == "" {
		endpoint = domain.DefaultSearchEndpoint
	}
	return &Provider{fetcher: fetcher, endpoint: endpoint}
}

// Search returns up to limit organic results for query, in rank order.
func (p *Provider) Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}

	logger.Debug("Web search: query=%q, max_results=%d", query, limit)

	page, err := p.fetcher.Get(ctx, p.queryURL(query))
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return ParseResults(page, limit)
}

func (p *Provider) queryURL(query string) string {
	sep := "?"
	if strings.Contains(p.endpoint, "?") {
		sep = "&"
	}
	return p.endpoint + sep + "q=" + url.QueryEscape(query)
}

// ParseResults extracts result links from a DuckDuckGo HTML page.
// Sponsored results are skipped.
func ParseResults(page []byte, limit int) ([]domain.SearchHit, error) {
	doc, err := web.Parse(page)
	if err != nil {
		return nil, err
	}

	var hits []domain.SearchHit
	for _, block := range web.FindAll(doc, isResultBlock) {
		if limit > 0 && len(hits) >= limit {
			break
		}
		if web.HasClass(block, "result--ad") {
			continue
		}
		link := web.Find(block, web.ElementWithClass("a", "result__a"))
		if link == nil {
			continue
		}
		href, _ := web.Attr(link, "href")
		target := resolveRedirect(href)
		if target == "" {
			continue
		}
		hits = append(hits, domain.SearchHit{
			Rank:  len(hits) + 1,
			Title: web.Text(link, " "),
			URL:   target,
		})
	}
	return hits, nil
}

func isResultBlock(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "div" && web.HasClass(n, "result")
}

// resolveRedirect unwraps DuckDuckGo's click-tracking links
// ("//duckduckgo.com/l/?uddg=<target>&rut=...") into the target address.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if strings.HasSuffix(u.Host, "duckduckgo.com") && strings.HasPrefix(u.Path, "/l/") {
		return u.Query().Get("uddg")
	}
	if u.Scheme == "" && u.Host != "" {
		u.Scheme = "https"
	}
	if u.Host == "" {
		return ""
	}
	return u.String()
}

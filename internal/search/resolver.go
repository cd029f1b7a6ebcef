package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Resolver turns a free-text keyword into an ordered list of candidate
// item identifiers. Any failure means "resolution failed" and triggers the
// static fallback in the orchestrator.
type Resolver interface {
	ResolveASINs(ctx context.Context, keyword string, limit int) ([]string, error)
	Name() string
}

// RainforestResolver resolves keywords via the Rainforest search endpoint.
type RainforestResolver struct {
	BaseURL string
	APIKey  string
	Domain  string
	Client  *http.Client
	limiter *rate.Limiter
}

// NewRainforestResolver creates a resolver for the given marketplace
// domain (e.g. "amazon.co.jp").
func NewRainforestResolver(apiKey, domain string) *RainforestResolver {
	if domain == "" {
		domain = "amazon.co.jp"
	}
	return &RainforestResolver{
		BaseURL: "https://api.rainforestapi.com/request",
		APIKey:  apiKey,
		Domain:  domain,
		Client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(3*time.Second), 1),
	}
}

func (r *RainforestResolver) Name() string { return "rainforest" }

func (r *RainforestResolver) ResolveASINs(ctx context.Context, keyword string, limit int) ([]string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for request slot: %w", err)
	}

	q := url.Values{}
	q.Set("api_key", r.APIKey)
	q.Set("type", "search")
	q.Set("amazon_domain", r.Domain)
	q.Set("search_term", keyword)
	q.Set("page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("keyword search: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		SearchResults []struct {
			ASIN string `json:"asin"`
		} `json:"search_results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}

	asins := make([]string, 0, limit)
	for _, sr := range result.SearchResults {
		if sr.ASIN == "" {
			continue
		}
		asins = append(asins, sr.ASIN)
		if len(asins) >= limit {
			break
		}
	}
	return asins, nil
}

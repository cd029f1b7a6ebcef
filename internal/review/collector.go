package review

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"NicheScout/internal/model"
)

const reviewsPerPage = 10

// Collector fetches customer reviews for one item via the Rainforest
// reviews endpoint, falling back to the product endpoint's top reviews
// when the primary call fails.
type Collector struct {
	BaseURL string
	APIKey  string
	Domain  string
	Client  *http.Client
	limiter *rate.Limiter
}

// NewCollector creates a collector for the given marketplace domain.
func NewCollector(apiKey, domain string) *Collector {
	if domain == "" {
		domain = "amazon.co.jp"
	}
	return &Collector{
		BaseURL: "https://api.rainforestapi.com/request",
		APIKey:  apiKey,
		Domain:  domain,
		Client:  &http.Client{Timeout: 60 * time.Second},
		limiter: rate.NewLimiter(rate.Every(3*time.Second), 1),
	}
}

// wire shapes shared by both endpoints. Dates arrive either as a plain
// string or as an object with a "raw" field.
type wireDate struct {
	Raw string `json:"raw"`
}

func (d *wireDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Raw = s
		return nil
	}
	var obj struct {
		Raw string `json:"raw"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	d.Raw = obj.Raw
	return nil
}

type wireReview struct {
	ID               string   `json:"id"`
	Rating           int      `json:"rating"`
	Title            string   `json:"title"`
	Body             string   `json:"body"`
	VerifiedPurchase bool     `json:"verified_purchase"`
	Date             wireDate `json:"date"`
	HelpfulVotes     int      `json:"helpful_votes"`
	Images           []any    `json:"images"`
	Page             int      `json:"page"`
	Position         int      `json:"position"`
}

// Collect fetches up to targetCount critical (1-3 star) reviews for the
// ASIN, lowest rating first, most-helpful first within a rating.
func (c *Collector) Collect(ctx context.Context, asin string, targetCount int) ([]model.Review, error) {
	if targetCount <= 0 || targetCount > 50 {
		targetCount = 50
	}
	maxPage := (targetCount + reviewsPerPage - 1) / reviewsPerPage
	if maxPage > 5 {
		maxPage = 5
	}
	log.Printf("[INFO] collecting reviews: asin=%s pages<=%d", asin, maxPage)

	reviews, err := c.fetchReviews(ctx, asin, maxPage)
	if err != nil {
		log.Printf("[WARN] reviews endpoint failed, trying product fallback: %v", err)
		reviews, err = c.fetchTopReviews(ctx, asin)
		if err != nil {
			return nil, fmt.Errorf("collect reviews for %s: %w", asin, err)
		}
	}

	// Low-rating-first ordering feeds the negative-review analysis.
	sort.SliceStable(reviews, func(i, j int) bool {
		if reviews[i].Rating != reviews[j].Rating {
			return reviews[i].Rating < reviews[j].Rating
		}
		return reviews[i].HelpfulVotes > reviews[j].HelpfulVotes
	})

	if len(reviews) > targetCount {
		reviews = reviews[:targetCount]
	}
	log.Printf("[INFO] collected %d reviews for %s", len(reviews), asin)
	return reviews, nil
}

func (c *Collector) fetchReviews(ctx context.Context, asin string, maxPage int) ([]model.Review, error) {
	q := url.Values{}
	q.Set("api_key", c.APIKey)
	q.Set("type", "reviews")
	q.Set("amazon_domain", c.Domain)
	q.Set("asin", asin)
	q.Set("page", "1")
	q.Set("max_page", fmt.Sprintf("%d", maxPage))
	q.Set("sort_by", "recent")
	q.Set("star_rating", "critical")

	var result struct {
		Reviews []wireReview `json:"reviews"`
	}
	if err := c.getJSON(ctx, q, &result); err != nil {
		return nil, err
	}
	if len(result.Reviews) == 0 {
		return nil, fmt.Errorf("no reviews returned for %s", asin)
	}
	return toReviews(asin, result.Reviews), nil
}

func (c *Collector) fetchTopReviews(ctx context.Context, asin string) ([]model.Review, error) {
	q := url.Values{}
	q.Set("api_key", c.APIKey)
	q.Set("type", "product")
	q.Set("amazon_domain", c.Domain)
	q.Set("asin", asin)

	var result struct {
		Product struct {
			TopReviews []wireReview `json:"top_reviews"`
		} `json:"product"`
	}
	if err := c.getJSON(ctx, q, &result); err != nil {
		return nil, err
	}
	return toReviews(asin, result.Product.TopReviews), nil
}

func (c *Collector) getJSON(ctx context.Context, q url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for request slot: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func toReviews(asin string, wires []wireReview) []model.Review {
	reviews := make([]model.Review, 0, len(wires))
	for _, w := range wires {
		reviews = append(reviews, model.Review{
			ASIN:             asin,
			ReviewID:         w.ID,
			Rating:           w.Rating,
			Title:            w.Title,
			Body:             w.Body,
			VerifiedPurchase: w.VerifiedPurchase,
			Date:             w.Date.Raw,
			HelpfulVotes:     w.HelpfulVotes,
			Images:           len(w.Images),
			Page:             w.Page,
			Position:         w.Position,
		})
	}
	return reviews
}

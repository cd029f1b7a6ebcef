package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"NicheScout/internal/model"
)

// KeepaClient implements Provider against the Keepa product API.
type KeepaClient struct {
	BaseURL   string
	APIKey    string
	Domain    string // marketplace code, e.g. "JP"
	StatsDays int    // statistics window passed upstream
	Client    *http.Client
	limiter   *rate.Limiter
}

// NewKeepaClient creates a client with the long timeout the upstream
// needs, and a conservative request pacer (the API is token metered).
func NewKeepaClient(baseURL, apiKey, domain string, statsDays int, timeout time.Duration) *KeepaClient {
	if baseURL == "" {
		baseURL = "https://api.keepa.com"
	}
	if domain == "" {
		domain = "JP"
	}
	if statsDays <= 0 {
		statsDays = 90
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &KeepaClient{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		Domain:    domain,
		StatsDays: statsDays,
		Client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Every(time.Minute), 1),
	}
}

func (c *KeepaClient) Name() string { return "keepa" }

// keepaProduct is the expected JSON shape of one product entry.
type keepaProduct struct {
	ASIN               string               `json:"asin"`
	Title              string               `json:"title"`
	MonthlySold        int                  `json:"monthlySold"`
	MonthlySoldHistory []int64              `json:"monthlySoldHistory"`
	Data               map[string][]float64 `json:"data"`
}

type keepaResponse struct {
	Products   []keepaProduct `json:"products"`
	TokensLeft int            `json:"tokensLeft"`
	Error      *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// FetchProducts fetches all asins in one batched call.
func (c *KeepaClient) FetchProducts(ctx context.Context, asins []string) ([]model.CatalogRecord, error) {
	if len(asins) == 0 {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for request slot: %w", err)
	}

	q := url.Values{}
	q.Set("key", c.APIKey)
	q.Set("domain", c.Domain)
	q.Set("asin", strings.Join(asins, ","))
	q.Set("stats", fmt.Sprintf("%d", c.StatsDays))
	q.Set("rating", "1")
	q.Set("offers", "20")
	endpoint := fmt.Sprintf("%s/product?%s", c.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("fetch products: %w", ErrTimeout)
		}
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("fetch products: %w", ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch products: status %d, body: %s", resp.StatusCode, string(body))
	}

	var kr keepaResponse
	if err := json.NewDecoder(resp.Body).Decode(&kr); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	if kr.Error != nil {
		msg := strings.ToLower(kr.Error.Message)
		if strings.Contains(msg, "token") || strings.Contains(msg, "waiting") {
			return nil, fmt.Errorf("fetch products: %s: %w", kr.Error.Message, ErrRateLimited)
		}
		return nil, fmt.Errorf("fetch products: %s", kr.Error.Message)
	}

	records := make([]model.CatalogRecord, 0, len(kr.Products))
	for _, p := range kr.Products {
		records = append(records, toRecord(p))
	}
	return records, nil
}

// toRecord converts the wire shape into the typed record. Absent series
// stay nil; sentinel values are left for the normalizer to skip.
func toRecord(p keepaProduct) model.CatalogRecord {
	rec := model.CatalogRecord{
		ASIN:               p.ASIN,
		Title:              p.Title,
		MonthlySold:        p.MonthlySold,
		MonthlySoldHistory: p.MonthlySoldHistory,
	}
	if len(p.Data) == 0 {
		return rec
	}
	rec.Data = &model.SeriesData{
		NewPrice:    p.Data["NEW"],
		ReviewCount: p.Data["COUNT_REVIEWS"],
		Rating:      p.Data["RATING"],
		SalesRank:   p.Data["SALES"],
		SellerCount: p.Data["COUNT_NEW"],
	}
	return rec
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}

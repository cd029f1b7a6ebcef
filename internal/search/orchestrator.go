package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"NicheScout/internal/cache"
	"NicheScout/internal/catalog"
	"NicheScout/internal/model"
	"NicheScout/internal/scoring"
)

// Cache keying for resolved identifiers.
const (
	resolverNamespace = "identifier_search"
	resolverTTLHours  = 1
)

// fallbackASINs maps known keywords to fixed candidate sets, used when the
// resolver is unconfigured, fails, or returns nothing. Ordered: the first
// matching entry wins.
var fallbackASINs = []struct {
	keyword string
	asins   []string
}{
	{"ヨガマット", []string{"B01LP0VI3G", "B01N7EQ8CK", "B078WZ13GP"}},
	{"ダンベル", []string{"B07WTQ2YPX", "B0BH7KQWMY", "B0C8RJHXKP"}},
	{"フィットネスバンド", []string{"B0BVKX7QWM", "B0C4NMHQXZ", "B0BYFK3MNQ"}},
}

// defaultASINs is the last-resort candidate set for unknown keywords.
var defaultASINs = []string{"B01LP0VI3G", "B01N7EQ8CK", "B078WZ13GP"}

// Orchestrator runs one search invocation end to end: resolve candidate
// identifiers, fetch their catalog records in one batch, normalize and
// score each, and rank the survivors.
type Orchestrator struct {
	Resolver   Resolver // may be nil (fallback table only)
	Provider   catalog.Provider
	Cache      *cache.Store // may be nil (no lookup caching)
	Engine     scoring.Strategy
	MaxResults int
}

// NewOrchestrator wires a search pipeline with the current scoring engine.
func NewOrchestrator(resolver Resolver, provider catalog.Provider, store *cache.Store, maxResults int) *Orchestrator {
	if maxResults <= 0 {
		maxResults = 10
	}
	return &Orchestrator{
		Resolver:   resolver,
		Provider:   provider,
		Cache:      store,
		Engine:     scoring.NewEngine(),
		MaxResults: maxResults,
	}
}

// Search resolves the keyword and returns candidate rows sorted by
// composite score, best first. Items with unusable records are dropped,
// never fatal; only a whole-batch provider failure is returned, wrapped so
// the caller can branch on catalog.ErrTimeout / catalog.ErrRateLimited.
func (o *Orchestrator) Search(ctx context.Context, keyword string) (model.SearchResult, error) {
	result := model.SearchResult{Keyword: keyword}

	asins := o.resolveIdentifiers(ctx, keyword)
	log.Printf("[INFO] search %q: %d candidate identifiers", keyword, len(asins))

	records, err := o.Provider.FetchProducts(ctx, asins)
	if err != nil {
		return result, fmt.Errorf("fetch catalog records: %w", err)
	}

	for _, rec := range records {
		if rec.Title == "" {
			log.Printf("[WARN] skip %s: no title (not yet indexed upstream)", rec.ASIN)
			continue
		}
		if rec.Data == nil {
			log.Printf("[WARN] skip %s: empty data payload", rec.ASIN)
			continue
		}
		facts := catalog.Normalize(rec)
		result.Rows = append(result.Rows, model.ProductRow{
			Facts: facts,
			Score: o.Engine.Score(facts),
		})
	}

	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i].Score.Total > result.Rows[j].Score.Total
	})

	log.Printf("[INFO] search %q: %d scored rows", keyword, len(result.Rows))
	return result, nil
}

// resolveIdentifiers tries the cached resolver result, then the resolver,
// then the static fallback table, then the default set. Resolution never
// fails the search.
func (o *Orchestrator) resolveIdentifiers(ctx context.Context, keyword string) []string {
	params := map[string]any{"keyword": keyword, "max_results": o.MaxResults}

	if o.Cache != nil {
		if raw, ok, err := o.Cache.Get(resolverNamespace, resolverTTLHours, params); err != nil {
			log.Printf("[WARN] resolver cache get: %v", err)
		} else if ok {
			var asins []string
			if err := json.Unmarshal(raw, &asins); err == nil && len(asins) > 0 {
				return asins
			}
		}
	}

	if o.Resolver != nil {
		asins, err := o.Resolver.ResolveASINs(ctx, keyword, o.MaxResults)
		if err != nil {
			log.Printf("[WARN] identifier resolution failed, using fallback: %v", err)
		} else if len(asins) > 0 {
			if o.Cache != nil {
				if err := o.Cache.Set(asins, resolverNamespace, resolverTTLHours, params); err != nil {
					log.Printf("[WARN] resolver cache set: %v", err)
				}
			}
			return asins
		}
	} else {
		log.Println("[INFO] no identifier resolver configured, using fallback table")
	}

	for _, entry := range fallbackASINs {
		if strings.Contains(keyword, entry.keyword) || strings.Contains(entry.keyword, keyword) {
			return entry.asins
		}
	}
	return defaultASINs
}

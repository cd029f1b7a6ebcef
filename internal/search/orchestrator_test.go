package search

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"NicheScout/internal/cache"
	"NicheScout/internal/catalog"
	"NicheScout/internal/model"
)

// yogaMatRecord builds the canned record for the fallback scenario:
// price 2980, 1200 sold now vs 750 six months ago, rating 3.8, 8 sellers.
func yogaMatRecord(asin string) model.CatalogRecord {
	const minute6m = int64(259200)
	latest := int64(7_500_000)
	return model.CatalogRecord{
		ASIN:        asin,
		Title:       "ヨガマット 10mm 高密度 " + asin,
		MonthlySold: 1200,
		MonthlySoldHistory: []int64{
			latest - 2*minute6m, 380,
			latest - minute6m - 1, 750,
			latest, 1200,
		},
		Data: &model.SeriesData{
			NewPrice:    []float64{32.50, 29.80},
			ReviewCount: []float64{1100, 1247},
			Rating:      []float64{3.9, 3.8},
			SalesRank:   []float64{200, 152},
			SellerCount: []float64{6, 8},
		},
	}
}

type stubResolver struct {
	asins []string
	err   error
	calls int
}

func (s *stubResolver) Name() string { return "stub" }

func (s *stubResolver) ResolveASINs(_ context.Context, _ string, _ int) ([]string, error) {
	s.calls++
	return s.asins, s.err
}

func TestSearch_FallbackScenario(t *testing.T) {
	// No resolver configured: the keyword maps to the fixed 3-ASIN set.
	provider := &catalog.MockProvider{Records: []model.CatalogRecord{
		yogaMatRecord("B01LP0VI3G"),
		yogaMatRecord("B01N7EQ8CK"),
		yogaMatRecord("B078WZ13GP"),
	}}
	o := NewOrchestrator(nil, provider, nil, 10)

	result, err := o.Search(context.Background(), "ヨガマット")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(result.Rows))
	}

	// Hand-computed: profitability 0 (margin 10-35000/2980 is under every
	// band), market 10 (3.576M yen/month, sweet-spot price), competition
	// 8+4 (8 sellers, 1247 reviews), growth 8+0 (60% over 6 months, no
	// long-term baseline in the canned history).
	row := result.Rows[0]
	if row.Facts.Price != 2980 {
		t.Errorf("price = %d, want 2980", row.Facts.Price)
	}
	if row.Facts.MonthlySold6mAgo != 750 {
		t.Errorf("6m units = %d, want 750", row.Facts.MonthlySold6mAgo)
	}
	want := 0 + 10 + (8 + 4) + (8 + 0)
	if row.Score.Total != want {
		t.Errorf("composite = %d, want %d (breakdown %+v)", row.Score.Total, want, row.Score)
	}
}

func TestSearch_ResolverFallbackOnError(t *testing.T) {
	r := &stubResolver{err: errors.New("boom")}
	provider := &catalog.MockProvider{}
	o := NewOrchestrator(r, provider, nil, 10)

	result, err := o.Search(context.Background(), "ダンベル")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if r.calls != 1 {
		t.Errorf("resolver calls = %d, want 1", r.calls)
	}
	// MockProvider echoes the requested ASINs; fallback table has 3.
	if len(result.Rows) != 3 {
		t.Errorf("expected 3 fallback rows, got %d", len(result.Rows))
	}
}

func TestResolveIdentifiers_AmbiguousKeywordFirstEntryWins(t *testing.T) {
	o := NewOrchestrator(nil, &catalog.MockProvider{}, nil, 10)

	// "ット" is a substring of both ヨガマット and フィットネスバンド;
	// the table is ordered, so the first entry must win every time.
	want := fallbackASINs[0].asins
	for i := 0; i < 20; i++ {
		got := o.resolveIdentifiers(context.Background(), "ット")
		if len(got) != len(want) {
			t.Fatalf("run %d: got %d identifiers, want %d", i, len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("run %d: identifiers[%d] = %s, want %s", i, j, got[j], want[j])
			}
		}
	}
}

func TestSearch_DropsUnindexedItems(t *testing.T) {
	provider := &catalog.MockProvider{Records: []model.CatalogRecord{
		{ASIN: "B000NODATA", Title: ""},                        // no title
		{ASIN: "B000NOPAYLOAD", Title: "something", Data: nil}, // no data
		yogaMatRecord("B01LP0VI3G"),
	}}
	o := NewOrchestrator(nil, provider, nil, 10)

	result, err := o.Search(context.Background(), "ヨガマット")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("expected 1 surviving row, got %d", len(result.Rows))
	}
	if result.Rows[0].Facts.ASIN != "B01LP0VI3G" {
		t.Errorf("surviving row = %s", result.Rows[0].Facts.ASIN)
	}
}

func TestSearch_SortedDescendingStable(t *testing.T) {
	strong := yogaMatRecord("B000STRONG")
	weak := yogaMatRecord("B000WEAK01")
	weak.MonthlySold = 0
	weak.MonthlySoldHistory = nil
	tiedA := yogaMatRecord("B000TIED0A")
	tiedB := yogaMatRecord("B000TIED0B")

	provider := &catalog.MockProvider{Records: []model.CatalogRecord{
		weak, tiedA, strong, tiedB,
	}}
	// strong, tiedA and tiedB score identically; provider order breaks ties.
	o := NewOrchestrator(nil, provider, nil, 10)
	result, err := o.Search(context.Background(), "ヨガマット")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(result.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(result.Rows))
	}
	for i := 1; i < len(result.Rows); i++ {
		if result.Rows[i].Score.Total > result.Rows[i-1].Score.Total {
			t.Errorf("rows not sorted descending at %d", i)
		}
	}
	if result.Rows[0].Facts.ASIN != "B000TIED0A" {
		t.Errorf("stable tie-break violated: first = %s", result.Rows[0].Facts.ASIN)
	}
	if result.Rows[3].Facts.ASIN != "B000WEAK01" {
		t.Errorf("weakest row should sort last, got %s", result.Rows[3].Facts.ASIN)
	}
}

func TestSearch_ResolverResultsCached(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"), 10)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer store.Close()

	r := &stubResolver{asins: []string{"B000AAAA01", "B000AAAA02"}}
	provider := &catalog.MockProvider{}
	o := NewOrchestrator(r, provider, store, 10)

	for i := 0; i < 2; i++ {
		if _, err := o.Search(context.Background(), "プロテイン"); err != nil {
			t.Fatalf("search %d: %v", i, err)
		}
	}
	if r.calls != 1 {
		t.Errorf("resolver calls = %d, want 1 (second search should hit cache)", r.calls)
	}
}

func TestSearch_ProviderErrorsPropagate(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"timeout", fmt.Errorf("fetch products: %w", catalog.ErrTimeout), catalog.ErrTimeout},
		{"rate limit", fmt.Errorf("fetch products: %w", catalog.ErrRateLimited), catalog.ErrRateLimited},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := NewOrchestrator(nil, &catalog.MockProvider{Err: tc.err}, nil, 10)
			_, err := o.Search(context.Background(), "ヨガマット")
			if !errors.Is(err, tc.want) {
				t.Errorf("error %v does not wrap %v", err, tc.want)
			}
		})
	}
}

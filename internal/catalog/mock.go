package catalog

import (
	"context"

	"NicheScout/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Records []model.CatalogRecord
	Err     error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) FetchProducts(_ context.Context, asins []string) ([]model.CatalogRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Records != nil {
		return m.Records, nil
	}
	records := make([]model.CatalogRecord, len(asins))
	for i, asin := range asins {
		records[i] = generateMockRecord(asin, 2980+float64(i)*500)
	}
	return records, nil
}

// generateMockRecord builds a plausible record around a base price in yen.
func generateMockRecord(asin string, basePrice float64) model.CatalogRecord {
	p := basePrice / 100 // series carry currency/100
	const month = int64(30 * 24 * 60)
	latest := int64(7_000_000) // arbitrary keepa-minute origin

	history := make([]int64, 0, 50)
	for i := 24; i >= 0; i-- {
		units := int64(400 + (24-i)*30)
		history = append(history, latest-int64(i)*month, units)
	}

	return model.CatalogRecord{
		ASIN:               asin,
		Title:              "Mock product " + asin,
		MonthlySold:        1100,
		MonthlySoldHistory: history,
		Data: &model.SeriesData{
			NewPrice:    []float64{p * 1.1, p * 1.05, -1, p},
			ReviewCount: []float64{120, 180, 240},
			Rating:      []float64{4.0, 3.9, 3.8},
			SalesRank:   []float64{900, 600, 450},
			SellerCount: []float64{-1, 6, 8},
		},
	}
}

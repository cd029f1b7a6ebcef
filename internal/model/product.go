package model

// SeriesData holds the parallel time-indexed series Keepa returns for one
// item. Each slice may be nil or empty; NaN and non-positive entries are
// sentinels for "no data at this point".
type SeriesData struct {
	NewPrice    []float64 // NEW: new-item price, in currency/100 units
	ReviewCount []float64 // COUNT_REVIEWS
	Rating      []float64 // RATING, already on the 0-5 scale
	SalesRank   []float64 // SALES
	SellerCount []float64 // COUNT_NEW: new-condition seller count
}

// CatalogRecord is the typed view of one Keepa product response.
// Data is nil when the item is not yet indexed upstream.
type CatalogRecord struct {
	ASIN  string
	Title string
	Data  *SeriesData

	// MonthlySold is the current monthly units sold, reported directly.
	MonthlySold int
	// MonthlySoldHistory is a flat alternating timestamp/value sequence,
	// oldest to newest. Timestamps are keepa minutes.
	MonthlySoldHistory []int64
}

// NormalizedFacts holds the scalar facts extracted from one CatalogRecord.
// Every field defaults to zero when the source series has no valid entry.
type NormalizedFacts struct {
	ASIN  string
	Title string

	Price       int // yen
	LowestPrice int // yen, historical minimum
	ReviewCount int
	Rating      float64 // 0.0 - 5.0
	CurrentRank int
	SellerCount int

	MonthlySoldCurrent int
	MonthlySold3mAgo   int
	MonthlySold6mAgo   int
	MonthlySold12mAgo  int
	MonthlySold24mAgo  int

	// SalesGrowthRate is percent change vs the 6-month baseline,
	// falling back to the 12-month baseline.
	SalesGrowthRate float64
}

package model

// ScoreBreakdown holds the four sub-scores and their components.
// Total always equals Profitability + Market + Competition + Growth.
type ScoreBreakdown struct {
	Profitability int // 0-35 = ProfitScore + ROIScore
	ProfitScore   int // 0-20, from profit margin
	ROIScore      int // 0-15

	Market int // 0-25, price-band adjusted

	Competition int // 0-20 = SellerScore + ReviewScore
	SellerScore int // 0-10
	ReviewScore int // 0-10

	Growth         int // 0-20 = ShortTermScore + LongTermScore
	ShortTermScore int // 0-10, 6-month growth
	LongTermScore  int // 0-10, 24-month growth (12-month fallback)

	Total int // 0-100

	// Intermediates retained for breakdown display.
	ProfitMargin      float64 // %
	ROI               float64 // %
	NetProfit         float64 // yen
	MonthlyMarketSize int     // yen
}

// ProductRow pairs the normalized facts of one item with its score.
type ProductRow struct {
	Facts NormalizedFacts
	Score ScoreBreakdown
}

// SearchResult is an ordered set of scored rows, best candidate first.
type SearchResult struct {
	Keyword string
	Rows    []ProductRow
}

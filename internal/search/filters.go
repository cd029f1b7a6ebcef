package search

import "NicheScout/internal/model"

// Filters is an optional post-filter over search rows. The zero value
// matches everything; a zero maximum means "no upper bound".
type Filters struct {
	PriceMin int
	PriceMax int

	MonthlySoldMin int
	MonthlySoldMax int

	// Require positive growth over the given baseline.
	RequireGrowth6m  bool
	RequireGrowth12m bool
	RequireGrowth24m bool

	RankMin int
	RankMax int

	RatingMin float64
	RatingMax float64

	ReviewCountMin int
	SellerCountMax int
}

// Apply returns the rows passing every configured condition, preserving
// their relative order.
func (f Filters) Apply(rows []model.ProductRow) []model.ProductRow {
	out := make([]model.ProductRow, 0, len(rows))
	for _, row := range rows {
		if f.match(row.Facts) {
			out = append(out, row)
		}
	}
	return out
}

func (f Filters) match(facts model.NormalizedFacts) bool {
	if f.PriceMin > 0 && facts.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && facts.Price > f.PriceMax {
		return false
	}
	if f.MonthlySoldMin > 0 && facts.MonthlySoldCurrent < f.MonthlySoldMin {
		return false
	}
	if f.MonthlySoldMax > 0 && facts.MonthlySoldCurrent > f.MonthlySoldMax {
		return false
	}
	if f.RequireGrowth6m && !grew(facts.MonthlySoldCurrent, facts.MonthlySold6mAgo) {
		return false
	}
	if f.RequireGrowth12m && !grew(facts.MonthlySoldCurrent, facts.MonthlySold12mAgo) {
		return false
	}
	if f.RequireGrowth24m && !grew(facts.MonthlySoldCurrent, facts.MonthlySold24mAgo) {
		return false
	}
	if f.RankMin > 0 && facts.CurrentRank < f.RankMin {
		return false
	}
	if f.RankMax > 0 && facts.CurrentRank > f.RankMax {
		return false
	}
	if f.RatingMin > 0 && facts.Rating < f.RatingMin {
		return false
	}
	if f.RatingMax > 0 && facts.Rating > f.RatingMax {
		return false
	}
	if f.ReviewCountMin > 0 && facts.ReviewCount < f.ReviewCountMin {
		return false
	}
	if f.SellerCountMax > 0 && facts.SellerCount > f.SellerCountMax {
		return false
	}
	return true
}

// grew reports growth over a baseline; an unknown baseline never passes a
// growth requirement.
func grew(current, baseline int) bool {
	return baseline > 0 && current > baseline
}

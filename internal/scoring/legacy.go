package scoring

import (
	"NicheScout/internal/model"
)

// LegacyEngine is the earlier 4-factor formula, retained for comparison:
// sales trend 40, market size 30, improvement potential 20, entry
// difficulty 10. It reuses the breakdown shape; sub-scores it does not
// produce stay zero and Total remains the sum of the populated parts.
type LegacyEngine struct{}

func NewLegacyEngine() *LegacyEngine { return &LegacyEngine{} }

func (e *LegacyEngine) Name() string { return "v1" }

func (e *LegacyEngine) Score(facts model.NormalizedFacts) model.ScoreBreakdown {
	var b model.ScoreBreakdown

	// Sales trend (40), from the pre-computed growth rate.
	var trend int
	switch {
	case facts.SalesGrowthRate > 100:
		trend = 40
	case facts.SalesGrowthRate > 50:
		trend = 30
	case facts.SalesGrowthRate > 20:
		trend = 20
	case facts.SalesGrowthRate > 0:
		trend = 10
	default:
		trend = 0
	}
	b.Growth = trend
	b.ShortTermScore = trend

	// Market size (30), by monthly units sold.
	switch {
	case facts.MonthlySoldCurrent >= 5000:
		b.Market = 30
	case facts.MonthlySoldCurrent >= 3000:
		b.Market = 25
	case facts.MonthlySoldCurrent >= 1000:
		b.Market = 20
	case facts.MonthlySoldCurrent >= 500:
		b.Market = 15
	case facts.MonthlySoldCurrent >= 100:
		b.Market = 10
	default:
		b.Market = 5
	}
	b.MonthlyMarketSize = facts.MonthlySoldCurrent * facts.Price

	// Improvement potential (20): a weaker incumbent rating leaves more
	// room for a better product.
	var improvement int
	switch {
	case facts.Rating > 0 && facts.Rating < 3.5:
		improvement = 20
	case facts.Rating >= 3.5 && facts.Rating < 4.0:
		improvement = 15
	case facts.Rating >= 4.0 && facts.Rating < 4.3:
		improvement = 10
	case facts.Rating >= 4.3 && facts.Rating < 4.5:
		improvement = 5
	default:
		improvement = 0
	}
	b.Profitability = improvement
	b.ProfitScore = improvement

	// Entry difficulty (10), by new-seller count.
	sellers := facts.SellerCount
	var entry int
	switch {
	case sellers > 0 && sellers <= 3:
		entry = 10
	case sellers >= 4 && sellers <= 10:
		entry = 7
	case sellers >= 11 && sellers <= 30:
		entry = 5
	case sellers >= 31 && sellers <= 50:
		entry = 3
	case sellers > 50:
		entry = 1
	default:
		entry = 5 // no data
	}
	b.Competition = entry
	b.SellerScore = entry

	b.Total = b.Profitability + b.Market + b.Competition + b.Growth
	return b
}

package scoring

import (
	"NicheScout/internal/model"
)

// Strategy scores normalized facts into a 0-100 breakdown. Implementations
// perform no I/O and never fail; missing inputs yield zero sub-scores.
type Strategy interface {
	Score(facts model.NormalizedFacts) model.ScoreBreakdown
	Name() string
}

// Cost structure assumed for profitability estimation, as fractions of the
// selling price, plus a fixed per-unit fulfillment fee in yen.
const (
	costRate     = 0.60
	shippingRate = 0.15
	feeRate      = 0.15
	fixedFBAFee  = 350.0
)

// Engine is the current 4-factor formula: profitability 35, market
// attractiveness 25, competitive difficulty 20, growth 20.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) Name() string { return "v2" }

func (e *Engine) Score(facts model.NormalizedFacts) model.ScoreBreakdown {
	var b model.ScoreBreakdown

	scoreProfitability(facts, &b)
	scoreMarket(facts, &b)
	scoreCompetition(facts, &b)
	scoreGrowth(facts, &b)

	b.Total = b.Profitability + b.Market + b.Competition + b.Growth
	return b
}

// scoreProfitability fills the margin and ROI sub-scores (max 20 + 15).
// A zero price yields zero across the board.
func scoreProfitability(facts model.NormalizedFacts, b *model.ScoreBreakdown) {
	if facts.Price <= 0 {
		return
	}
	price := float64(facts.Price)
	cost := price * costRate
	shipping := price * shippingRate
	fee := price * feeRate

	b.NetProfit = price - cost - shipping - fee - fixedFBAFee
	b.ProfitMargin = b.NetProfit / price * 100
	investment := cost + shipping
	if investment > 0 {
		b.ROI = b.NetProfit / investment * 100
	}

	switch {
	case b.ProfitMargin >= 30:
		b.ProfitScore = 20
	case b.ProfitMargin >= 25:
		b.ProfitScore = 17
	case b.ProfitMargin >= 20:
		b.ProfitScore = 14
	case b.ProfitMargin >= 15:
		b.ProfitScore = 10
	case b.ProfitMargin >= 10:
		b.ProfitScore = 5
	default:
		b.ProfitScore = 0
	}

	switch {
	case b.ROI >= 100:
		b.ROIScore = 15
	case b.ROI >= 75:
		b.ROIScore = 12
	case b.ROI >= 50:
		b.ROIScore = 9
	case b.ROI >= 30:
		b.ROIScore = 6
	case b.ROI >= 15:
		b.ROIScore = 3
	default:
		b.ROIScore = 0
	}

	b.Profitability = b.ProfitScore + b.ROIScore
}

// scoreMarket fills the market attractiveness sub-score (max 25), banded
// by monthly market size in yen and adjusted for the price sweet spot.
func scoreMarket(facts model.NormalizedFacts, b *model.ScoreBreakdown) {
	b.MonthlyMarketSize = facts.MonthlySoldCurrent * facts.Price

	var score int
	switch {
	case b.MonthlyMarketSize >= 30_000_000:
		score = 25
	case b.MonthlyMarketSize >= 20_000_000:
		score = 22
	case b.MonthlyMarketSize >= 10_000_000:
		score = 18
	case b.MonthlyMarketSize >= 5_000_000:
		score = 14
	case b.MonthlyMarketSize >= 2_000_000:
		score = 10
	case b.MonthlyMarketSize >= 500_000:
		score = 6
	default:
		score = 2
	}

	// Price-band adjustment: ¥2,000-7,000 is the sweet spot.
	price := facts.Price
	switch {
	case price >= 2000 && price <= 7000:
		// no adjustment
	case (price >= 1000 && price < 2000) || (price > 7000 && price <= 15000):
		score = int(float64(score) * 0.9)
	default:
		score = int(float64(score) * 0.7)
	}

	if score > 25 {
		score = 25
	}
	b.Market = score
}

// scoreCompetition fills the seller-count and review-count sub-scores
// (max 10 each). Fewer competitors and fewer reviews on the top listing
// both mean an easier entry. No data maps to the neutral mid value.
func scoreCompetition(facts model.NormalizedFacts, b *model.ScoreBreakdown) {
	sellers := facts.SellerCount
	switch {
	case sellers > 0 && sellers <= 3:
		b.SellerScore = 10
	case sellers >= 4 && sellers <= 10:
		b.SellerScore = 8
	case sellers >= 11 && sellers <= 30:
		b.SellerScore = 6
	case sellers >= 31 && sellers <= 50:
		b.SellerScore = 4
	case sellers >= 51 && sellers <= 100:
		b.SellerScore = 2
	case sellers > 100:
		b.SellerScore = 1
	default:
		b.SellerScore = 5 // no data
	}

	reviews := facts.ReviewCount
	switch {
	case reviews > 0 && reviews < 100:
		b.ReviewScore = 10
	case reviews >= 100 && reviews < 500:
		b.ReviewScore = 8
	case reviews >= 500 && reviews < 1000:
		b.ReviewScore = 6
	case reviews >= 1000 && reviews < 3000:
		b.ReviewScore = 4
	case reviews >= 3000:
		b.ReviewScore = 2
	default:
		b.ReviewScore = 5 // no data
	}

	b.Competition = b.SellerScore + b.ReviewScore
}

// scoreGrowth fills the short-term (6-month) and long-term (24-month,
// 12-month fallback) sub-scores, max 10 each. A missing baseline simply
// contributes nothing.
func scoreGrowth(facts model.NormalizedFacts, b *model.ScoreBreakdown) {
	cur := float64(facts.MonthlySoldCurrent)

	if facts.MonthlySold6mAgo > 0 && cur > 0 {
		growth := (cur - float64(facts.MonthlySold6mAgo)) / float64(facts.MonthlySold6mAgo) * 100
		switch {
		case growth > 100:
			b.ShortTermScore = 10
		case growth > 50:
			b.ShortTermScore = 8
		case growth > 20:
			b.ShortTermScore = 6
		case growth > 0:
			b.ShortTermScore = 4
		default:
			b.ShortTermScore = 2
		}
	}

	switch {
	case facts.MonthlySold24mAgo > 0 && cur > 0:
		growth := (cur - float64(facts.MonthlySold24mAgo)) / float64(facts.MonthlySold24mAgo) * 100
		switch {
		case growth > 200:
			b.LongTermScore = 10
		case growth > 100:
			b.LongTermScore = 8
		case growth > 50:
			b.LongTermScore = 6
		case growth > 20:
			b.LongTermScore = 4
		case growth > 0:
			b.LongTermScore = 2
		default:
			b.LongTermScore = 0
		}
	case facts.MonthlySold12mAgo > 0 && cur > 0:
		// Compressed scale when only the 12-month baseline exists.
		growth := (cur - float64(facts.MonthlySold12mAgo)) / float64(facts.MonthlySold12mAgo) * 100
		switch {
		case growth > 100:
			b.LongTermScore = 10
		case growth > 50:
			b.LongTermScore = 7
		case growth > 20:
			b.LongTermScore = 5
		case growth > 0:
			b.LongTermScore = 3
		default:
			b.LongTermScore = 0
		}
	}

	b.Growth = b.ShortTermScore + b.LongTermScore
}

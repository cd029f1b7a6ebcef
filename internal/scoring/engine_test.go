package scoring

import (
	"testing"

	"NicheScout/internal/model"
)

// The fixture matches the documented end-to-end scenario: price 2980,
// 1200 units/month now vs 750 six months ago, rating 3.8, 8 sellers.
func referenceFacts() model.NormalizedFacts {
	return model.NormalizedFacts{
		ASIN:               "B01LP0VI3G",
		Title:              "ヨガマット 10mm",
		Price:              2980,
		LowestPrice:        1980,
		ReviewCount:        1247,
		Rating:             3.8,
		CurrentRank:        152,
		SellerCount:        8,
		MonthlySoldCurrent: 1200,
		MonthlySold6mAgo:   750,
		MonthlySold12mAgo:  520,
		MonthlySold24mAgo:  380,
		SalesGrowthRate:    60,
	}
}

func TestScore_ReferenceScenario(t *testing.T) {
	b := NewEngine().Score(referenceFacts())

	// price 2980: net profit = 2980*0.10 - 350 = -52 -> margin and ROI
	// both negative, profitability 0.
	if b.Profitability != 0 {
		t.Errorf("profitability = %d, want 0", b.Profitability)
	}
	if b.NetProfit >= 0 {
		t.Errorf("net profit = %.1f, want negative", b.NetProfit)
	}

	// market size 1200*2980 = 3,576,000 -> band 10; price in sweet spot.
	if b.MonthlyMarketSize != 3_576_000 {
		t.Errorf("market size = %d, want 3576000", b.MonthlyMarketSize)
	}
	if b.Market != 10 {
		t.Errorf("market = %d, want 10", b.Market)
	}

	// 8 sellers -> 8; 1247 reviews -> 4.
	if b.SellerScore != 8 || b.ReviewScore != 4 || b.Competition != 12 {
		t.Errorf("competition = %d (%d+%d), want 12 (8+4)",
			b.Competition, b.SellerScore, b.ReviewScore)
	}

	// 6m growth 60%% -> 8; 24m growth (1200-380)/380 = 215%% -> 10.
	if b.ShortTermScore != 8 || b.LongTermScore != 10 || b.Growth != 18 {
		t.Errorf("growth = %d (%d+%d), want 18 (8+10)",
			b.Growth, b.ShortTermScore, b.LongTermScore)
	}

	if want := 0 + 10 + 12 + 18; b.Total != want {
		t.Errorf("total = %d, want %d", b.Total, want)
	}
}

func TestScore_TotalEqualsSumAndBounds(t *testing.T) {
	cases := []model.NormalizedFacts{
		{},
		referenceFacts(),
		{Price: 4980, MonthlySoldCurrent: 9000, MonthlySold6mAgo: 100, MonthlySold24mAgo: 50, SellerCount: 2, ReviewCount: 50, Rating: 4.9},
		{Price: 120000, MonthlySoldCurrent: 10, SellerCount: 500, ReviewCount: 99999},
	}
	for i, facts := range cases {
		b := NewEngine().Score(facts)
		if b.Total != b.Profitability+b.Market+b.Competition+b.Growth {
			t.Errorf("case %d: total %d != sum of sub-scores", i, b.Total)
		}
		if b.Total < 0 || b.Total > 100 {
			t.Errorf("case %d: total %d out of [0,100]", i, b.Total)
		}
		if b.Profitability < 0 || b.Profitability > 35 {
			t.Errorf("case %d: profitability %d out of [0,35]", i, b.Profitability)
		}
		if b.Market < 0 || b.Market > 25 {
			t.Errorf("case %d: market %d out of [0,25]", i, b.Market)
		}
		if b.Competition < 0 || b.Competition > 20 {
			t.Errorf("case %d: competition %d out of [0,20]", i, b.Competition)
		}
		if b.Growth < 0 || b.Growth > 20 {
			t.Errorf("case %d: growth %d out of [0,20]", i, b.Growth)
		}
	}
}

func TestScore_ZeroPriceZeroProfitability(t *testing.T) {
	facts := referenceFacts()
	facts.Price = 0
	b := NewEngine().Score(facts)
	if b.Profitability != 0 || b.ProfitScore != 0 || b.ROIScore != 0 {
		t.Errorf("expected zero profitability for zero price, got %+v", b)
	}
	if b.NetProfit != 0 || b.ProfitMargin != 0 || b.ROI != 0 {
		t.Errorf("expected zero intermediates for zero price, got %+v", b)
	}
}

func TestScore_ProfitabilityStructuralCeiling(t *testing.T) {
	// With the assumed cost fractions, margin = 10 - 35000/price and
	// ROI = 13.33 - 46667/price: both sit below their lowest scoring
	// bands at any price, so the sub-scores stay zero while the
	// intermediates remain exposed for the breakdown.
	b := NewEngine().Score(model.NormalizedFacts{Price: 1_000_000})
	if b.ProfitScore != 0 || b.ROIScore != 0 {
		t.Errorf("expected zero profit/roi scores, got %d/%d", b.ProfitScore, b.ROIScore)
	}
	if b.ProfitMargin < 9.9 || b.ProfitMargin >= 10 {
		t.Errorf("margin = %.3f, want just under 10", b.ProfitMargin)
	}
	if b.ROI < 13.2 || b.ROI >= 13.34 {
		t.Errorf("roi = %.3f, want just under 13.33", b.ROI)
	}
	if b.NetProfit != 1_000_000*0.10-350 {
		t.Errorf("net profit = %.1f, want %.1f", b.NetProfit, 1_000_000*0.10-350)
	}
}

func TestScore_SellerMonotonicity(t *testing.T) {
	// Crossing band boundaries upward must never raise the seller score.
	counts := []int{1, 3, 4, 10, 11, 30, 31, 50, 51, 100, 101, 500}
	prev := 11
	for _, n := range counts {
		b := NewEngine().Score(model.NormalizedFacts{SellerCount: n})
		if b.SellerScore > prev {
			t.Errorf("seller score rose from %d to %d at count %d", prev, b.SellerScore, n)
		}
		prev = b.SellerScore
	}
}

func TestScore_NoDataNeutralValues(t *testing.T) {
	b := NewEngine().Score(model.NormalizedFacts{})
	if b.SellerScore != 5 {
		t.Errorf("seller score with no data = %d, want 5", b.SellerScore)
	}
	if b.ReviewScore != 5 {
		t.Errorf("review score with no data = %d, want 5", b.ReviewScore)
	}
	if b.Growth != 0 {
		t.Errorf("growth with no baselines = %d, want 0", b.Growth)
	}
}

func TestScore_MarketPriceBandAdjustment(t *testing.T) {
	// Same market size, different price bands. 1,000,000 yen/month -> base 6.
	mk := func(price int) model.NormalizedFacts {
		sold := 1_000_000 / price
		return model.NormalizedFacts{Price: price, MonthlySoldCurrent: sold}
	}
	sweet := NewEngine().Score(mk(2500))
	adjacent := NewEngine().Score(mk(10000))
	outside := NewEngine().Score(mk(20000))

	if sweet.Market != 6 {
		t.Errorf("sweet spot market = %d, want 6", sweet.Market)
	}
	if adjacent.Market != 5 { // 6*0.9 floored
		t.Errorf("adjacent band market = %d, want 5", adjacent.Market)
	}
	if outside.Market != 4 { // 6*0.7 floored
		t.Errorf("outside band market = %d, want 4", outside.Market)
	}
}

func TestScore_GrowthLongTermFallback(t *testing.T) {
	with24 := NewEngine().Score(model.NormalizedFacts{
		MonthlySoldCurrent: 900, MonthlySold24mAgo: 400,
	})
	if with24.LongTermScore != 8 { // 125% -> >100g band
		t.Errorf("24m long term = %d, want 8", with24.LongTermScore)
	}

	with12 := NewEngine().Score(model.NormalizedFacts{
		MonthlySoldCurrent: 900, MonthlySold12mAgo: 400,
	})
	if with12.LongTermScore != 10 { // 125% on the compressed 12m scale
		t.Errorf("12m fallback long term = %d, want 10", with12.LongTermScore)
	}

	neither := NewEngine().Score(model.NormalizedFacts{MonthlySoldCurrent: 900})
	if neither.LongTermScore != 0 {
		t.Errorf("long term without baseline = %d, want 0", neither.LongTermScore)
	}
}

func TestLegacyScore(t *testing.T) {
	b := NewLegacyEngine().Score(referenceFacts())

	// growth 60% -> 30; 1200 units -> 20; rating 3.8 -> 15; 8 sellers -> 7.
	if b.Growth != 30 {
		t.Errorf("legacy trend = %d, want 30", b.Growth)
	}
	if b.Market != 20 {
		t.Errorf("legacy market = %d, want 20", b.Market)
	}
	if b.Profitability != 15 {
		t.Errorf("legacy improvement = %d, want 15", b.Profitability)
	}
	if b.Competition != 7 {
		t.Errorf("legacy entry = %d, want 7", b.Competition)
	}
	if b.Total != 72 {
		t.Errorf("legacy total = %d, want 72", b.Total)
	}
	if b.Total != b.Profitability+b.Market+b.Competition+b.Growth {
		t.Errorf("legacy total %d != sum of sub-scores", b.Total)
	}
}

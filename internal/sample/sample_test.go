package sample

import (
	"testing"

	"NicheScout/internal/scoring"
)

func TestRowsSortedDescending(t *testing.T) {
	rows := Rows()
	if len(rows) != 10 {
		t.Fatalf("expected 10 sample rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Score.Total > rows[i-1].Score.Total {
			t.Errorf("row %d (%s, total %d) ranked after row %d (%s, total %d)",
				i, rows[i].Facts.ASIN, rows[i].Score.Total,
				i-1, rows[i-1].Facts.ASIN, rows[i-1].Score.Total)
		}
	}
}

func TestRowTotalsConsistent(t *testing.T) {
	for _, row := range Rows() {
		s := row.Score
		if sum := s.Profitability + s.Market + s.Competition + s.Growth; s.Total != sum {
			t.Errorf("%s: total %d != sub-score sum %d", row.Facts.ASIN, s.Total, sum)
		}
		if s.Competition != s.SellerScore+s.ReviewScore {
			t.Errorf("%s: competition %d != %d+%d", row.Facts.ASIN, s.Competition, s.SellerScore, s.ReviewScore)
		}
		if s.Growth != s.ShortTermScore+s.LongTermScore {
			t.Errorf("%s: growth %d != %d+%d", row.Facts.ASIN, s.Growth, s.ShortTermScore, s.LongTermScore)
		}
		if s.MonthlyMarketSize != row.Facts.Price*row.Facts.MonthlySoldCurrent {
			t.Errorf("%s: market size %d != price*units", row.Facts.ASIN, s.MonthlyMarketSize)
		}
	}
}

// The canned scores must stay in sync with the current engine.
func TestRowsMatchEngine(t *testing.T) {
	engine := scoring.NewEngine()
	for _, row := range Rows() {
		got := engine.Score(row.Facts)
		want := row.Score
		if got.Total != want.Total ||
			got.Profitability != want.Profitability ||
			got.Market != want.Market ||
			got.Competition != want.Competition ||
			got.Growth != want.Growth {
			t.Errorf("%s: engine gives %d (p%d m%d c%d g%d), canned %d (p%d m%d c%d g%d)",
				row.Facts.ASIN,
				got.Total, got.Profitability, got.Market, got.Competition, got.Growth,
				want.Total, want.Profitability, want.Market, want.Competition, want.Growth)
		}
	}
}

func TestReviewsKnownASINs(t *testing.T) {
	if got := Reviews("B08SAMPLE1"); len(got) != 5 {
		t.Errorf("B08SAMPLE1: expected 5 reviews, got %d", len(got))
	}
	if got := Reviews("B00NOTHERE"); got != nil {
		t.Errorf("unknown asin: expected nil, got %d reviews", len(got))
	}
}

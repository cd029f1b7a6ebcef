package catalog

import (
	"math"

	"NicheScout/internal/model"
)

// Look-back horizons in keepa minutes.
const (
	horizon3m  = int64(129600)  // ~90 days
	horizon6m  = int64(259200)  // ~180 days
	horizon12m = int64(525600)  // ~365 days
	horizon24m = int64(1051200) // ~730 days
)

// priceScale converts the provider's currency/100 series values to yen.
const priceScale = 100

// Normalize extracts scalar facts from a raw catalog record. Every field
// defaults to zero when its source series is missing or holds no valid
// entry; malformed data never aborts the item.
func Normalize(rec model.CatalogRecord) model.NormalizedFacts {
	facts := model.NormalizedFacts{
		ASIN:  rec.ASIN,
		Title: rec.Title,
	}
	if rec.Data != nil {
		if p, ok := latestValid(rec.Data.NewPrice); ok {
			facts.Price = int(math.Round(p * priceScale))
		}
		if low, ok := lowestValid(rec.Data.NewPrice); ok {
			facts.LowestPrice = int(math.Round(low * priceScale))
		}
		if v, ok := latestValid(rec.Data.ReviewCount); ok {
			facts.ReviewCount = int(v)
		}
		if v, ok := latestValid(rec.Data.Rating); ok {
			facts.Rating = v
		}
		if v, ok := latestValid(rec.Data.SalesRank); ok {
			facts.CurrentRank = int(v)
		}
		if v, ok := latestValid(rec.Data.SellerCount); ok {
			facts.SellerCount = int(v)
		}
	}

	facts.MonthlySoldCurrent = rec.MonthlySold
	facts.MonthlySold3mAgo = soldAtHorizon(rec.MonthlySoldHistory, horizon3m)
	facts.MonthlySold6mAgo = soldAtHorizon(rec.MonthlySoldHistory, horizon6m)
	facts.MonthlySold12mAgo = soldAtHorizon(rec.MonthlySoldHistory, horizon12m)
	facts.MonthlySold24mAgo = soldAtHorizon(rec.MonthlySoldHistory, horizon24m)

	facts.SalesGrowthRate = growthRate(facts)
	return facts
}

// latestValid scans a series from most recent to oldest and returns the
// first positive, finite value.
func latestValid(series []float64) (float64, bool) {
	for i := len(series) - 1; i >= 0; i-- {
		v := series[i]
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 {
			return v, true
		}
	}
	return 0, false
}

// lowestValid returns the minimum positive, finite value over the whole
// series, not just the tail.
func lowestValid(series []float64) (float64, bool) {
	low := math.Inf(1)
	found := false
	for _, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			continue
		}
		if v < low {
			low = v
		}
		found = true
	}
	if !found {
		return 0, false
	}
	return low, true
}

// soldAtHorizon walks the alternating timestamp/value history backward and
// returns the units of the first pair at least `minutes` older than the
// latest timestamp. The latest pair itself can never qualify, so the scan
// effectively starts at the second-most-recent pair.
func soldAtHorizon(history []int64, minutes int64) int {
	if len(history) < 2 || len(history)%2 != 0 {
		return 0
	}
	latest := history[len(history)-2]
	target := latest - minutes
	for i := len(history) - 2; i >= 2; i -= 2 {
		if history[i] <= target {
			return int(history[i+1])
		}
	}
	return 0
}

// growthRate is the percent change vs the 6-month baseline, with the
// 12-month baseline as fallback. Zero when neither baseline is usable.
func growthRate(f model.NormalizedFacts) float64 {
	cur := float64(f.MonthlySoldCurrent)
	if cur <= 0 {
		return 0
	}
	if f.MonthlySold6mAgo > 0 {
		return (cur - float64(f.MonthlySold6mAgo)) / float64(f.MonthlySold6mAgo) * 100
	}
	if f.MonthlySold12mAgo > 0 {
		return (cur - float64(f.MonthlySold12mAgo)) / float64(f.MonthlySold12mAgo) * 100
	}
	return 0
}

package report

import (
	"strings"
	"testing"

	"NicheScout/internal/model"
)

func TestFormatAnalysis_CategoryOrderStable(t *testing.T) {
	analysis := &model.Analysis{
		IssueCategories: map[string][]model.Issue{
			"その他":  {{Problem: "におい", Frequency: "高"}},
			"梱包":   {{Problem: "折れ跡", Frequency: "中"}},
			"品質問題": {{Problem: "表面の劣化", Frequency: "高"}},
			"使い勝手": {{Problem: "重い", Frequency: "中"}},
			"価格価値": {},
		},
	}

	first := FormatAnalysis("ヨガマット", analysis)
	for i := 0; i < 20; i++ {
		if got := FormatAnalysis("ヨガマット", analysis); got != first {
			t.Fatal("category order varies between runs")
		}
	}

	// Known categories in their fixed order, unknown ones appended,
	// empty ones omitted.
	var positions []int
	for _, name := range []string{"品質問題", "使い勝手", "その他", "梱包"} {
		idx := strings.Index(first, "【"+name+"】")
		if idx < 0 {
			t.Fatalf("category %s missing from output:\n%s", name, first)
		}
		positions = append(positions, idx)
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] < positions[i-1] {
			t.Errorf("category order wrong:\n%s", first)
		}
	}
	if strings.Contains(first, "【価格価値】") {
		t.Errorf("empty category rendered:\n%s", first)
	}
}

package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"NicheScout/internal/cache"
	"NicheScout/internal/model"
)

// FormatSearchResult formats a scored product ranking for terminal display.
func FormatSearchResult(result *model.SearchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 商品リサーチ結果 | %q | %s\n\n", result.Keyword, time.Now().Format("2006-01-02"))

	if len(result.Rows) == 0 {
		b.WriteString("該当する商品が見つかりませんでした\n")
		return b.String()
	}

	for i, row := range result.Rows {
		fmt.Fprintf(&b, "%d. %s [%s]\n", i+1, truncate(row.Facts.Title, 60), row.Facts.ASIN)
		fmt.Fprintf(&b, "   総合スコア: %d/100\n", row.Score.Total)
		fmt.Fprintf(&b, "   価格: ¥%d | 月間販売数: %d | 出品者数: %d\n",
			row.Facts.Price, row.Facts.MonthlySoldCurrent, row.Facts.SellerCount)
		fmt.Fprintf(&b, "   評価: %.1f (%d件)\n", row.Facts.Rating, row.Facts.ReviewCount)
		fmt.Fprintf(&b, "   内訳: 収益性%d 市場%d 競合%d 成長%d\n",
			row.Score.Profitability, row.Score.Market, row.Score.Competition, row.Score.Growth)
		if row.Score.MonthlyMarketSize > 0 {
			fmt.Fprintf(&b, "   推定市場規模: ¥%d/月\n", row.Score.MonthlyMarketSize)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatBreakdown formats one item's full score breakdown.
func FormatBreakdown(row *model.ProductRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📈 スコア明細: %s\n\n", row.Facts.ASIN)
	fmt.Fprintf(&b, "収益性 (%d/35)\n", row.Score.Profitability)
	fmt.Fprintf(&b, "  利益率: %.1f%% → %d点 | ROI: %.1f%% → %d点\n",
		row.Score.ProfitMargin, row.Score.ProfitScore, row.Score.ROI, row.Score.ROIScore)
	fmt.Fprintf(&b, "  想定純利益: ¥%.0f\n", row.Score.NetProfit)
	fmt.Fprintf(&b, "市場規模 (%d/25)\n", row.Score.Market)
	fmt.Fprintf(&b, "  推定月間売上: ¥%d\n", row.Score.MonthlyMarketSize)
	fmt.Fprintf(&b, "競合状況 (%d/20)\n", row.Score.Competition)
	fmt.Fprintf(&b, "  出品者: %d点 | レビュー数: %d点\n", row.Score.SellerScore, row.Score.ReviewScore)
	fmt.Fprintf(&b, "成長性 (%d/20)\n", row.Score.Growth)
	fmt.Fprintf(&b, "  短期: %d点 | 長期: %d点\n", row.Score.ShortTermScore, row.Score.LongTermScore)
	b.WriteString("  ─────────────────\n")
	fmt.Fprintf(&b, "総合: %d/100\n", row.Score.Total)
	return b.String()
}

// issueCategoryOrder fixes the rendering order of the known analysis
// categories. Unknown categories follow, sorted by name.
var issueCategoryOrder = []string{"品質問題", "機能不足", "使い勝手", "価格価値", "その他"}

// FormatAnalysis formats the review-analysis output.
func FormatAnalysis(title string, analysis *model.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔍 レビュー分析: %s\n\n", truncate(title, 60))

	known := make(map[string]bool, len(issueCategoryOrder))
	categories := make([]string, 0, len(analysis.IssueCategories))
	for _, name := range issueCategoryOrder {
		known[name] = true
		if len(analysis.IssueCategories[name]) > 0 {
			categories = append(categories, name)
		}
	}
	var extra []string
	for name, issues := range analysis.IssueCategories {
		if !known[name] && len(issues) > 0 {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	categories = append(categories, extra...)

	for _, category := range categories {
		fmt.Fprintf(&b, "【%s】\n", category)
		for _, issue := range analysis.IssueCategories[category] {
			fmt.Fprintf(&b, "  - %s (頻度: %s)\n", issue.Problem, issue.Frequency)
		}
	}

	if len(analysis.Proposals) > 0 {
		b.WriteString("\n💡 改善提案:\n")
		for i, p := range analysis.Proposals {
			fmt.Fprintf(&b, "  %d. %s (実現性: %s)\n", i+1, p.Suggestion, p.Feasibility)
		}
	}

	c := analysis.Concept
	if c.Name != "" {
		b.WriteString("\n🎯 商品コンセプト:\n")
		fmt.Fprintf(&b, "  %s\n", c.Name)
		fmt.Fprintf(&b, "  ターゲット: %s\n", c.TargetSegment)
		fmt.Fprintf(&b, "  USP: %s\n", c.USP)
		fmt.Fprintf(&b, "  価格帯: %s\n", c.PriceRange)
	}
	return b.String()
}

// FormatCacheStats formats cache statistics for display.
func FormatCacheStats(stats cache.Stats) string {
	var b strings.Builder
	b.WriteString("📦 キャッシュ状態\n\n")
	fmt.Fprintf(&b, "エントリ数: %d\n", stats.Count)
	fmt.Fprintf(&b, "合計サイズ: %.2f MB\n", float64(stats.TotalBytes)/(1024*1024))
	fmt.Fprintf(&b, "平均サイズ: %.1f KB\n", float64(stats.AvgBytes)/1024)
	fmt.Fprintf(&b, "上限: %.0f MB\n", float64(stats.MaxBytes)/(1024*1024))
	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

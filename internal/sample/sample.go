// Package sample holds canned yoga-mat research data used for demos
// and offline runs when no API keys are configured.
package sample

import "NicheScout/internal/model"

// Keyword is the search term the canned data set was built for.
const Keyword = "ヨガマット"

// Rows returns the canned scored ranking, best candidate first.
func Rows() []model.ProductRow {
	rows := make([]model.ProductRow, len(products))
	copy(rows, products)
	return rows
}

// Reviews returns canned critical reviews for the given ASIN, or nil.
func Reviews(asin string) []model.Review {
	src := reviews[asin]
	if src == nil {
		return nil
	}
	out := make([]model.Review, len(src))
	copy(out, src)
	return out
}

// DemoAnalysis returns a canned review-analysis result for the top item.
func DemoAnalysis() *model.Analysis {
	a := demoAnalysis
	return &a
}

var products = []model.ProductRow{
	{
		Facts: model.NormalizedFacts{
			ASIN: "B08SAMPLE1", Title: "ヨガマット 10mm 高密度 TPE素材 滑り止め付き トレーニングマット",
			Price: 2980, Rating: 3.8, ReviewCount: 1247, CurrentRank: 152,
			MonthlySoldCurrent: 1200, MonthlySold6mAgo: 750, MonthlySold12mAgo: 520, MonthlySold24mAgo: 380,
			SellerCount: 8, SalesGrowthRate: 60.0,
		},
		Score: model.ScoreBreakdown{
			Market: 10, Competition: 12, SellerScore: 8, ReviewScore: 4,
			Growth: 18, ShortTermScore: 8, LongTermScore: 10,
			Total: 40, MonthlyMarketSize: 3576000,
			ProfitMargin: -1.74, ROI: -2.33, NetProfit: -52,
		},
	},
	{
		Facts: model.NormalizedFacts{
			ASIN: "B12SAMPLE6", Title: "環境配慮 天然ゴム ヨガマット 5mm グリップ力抜群 ストラップ付",
			Price: 5980, Rating: 4.5, ReviewCount: 2134, CurrentRank: 95,
			MonthlySoldCurrent: 1450, MonthlySold6mAgo: 1280, MonthlySold12mAgo: 1100, MonthlySold24mAgo: 890,
			SellerCount: 4, SalesGrowthRate: 13.3,
		},
		Score: model.ScoreBreakdown{
			Market: 14, Competition: 12, SellerScore: 8, ReviewScore: 4,
			Growth: 10, ShortTermScore: 4, LongTermScore: 6,
			Total: 36, MonthlyMarketSize: 8671000,
			ProfitMargin: 4.15, ROI: 5.53, NetProfit: 248,
		},
	},
	{
		Facts: model.NormalizedFacts{
			ASIN: "B16SAMPLE0", Title: "ヨガマット 高級 厚さ15mm クッション性抜群 ホットヨガ対応",
			Price: 6980, Rating: 4.2, ReviewCount: 923, CurrentRank: 275,
			MonthlySoldCurrent: 780, MonthlySold6mAgo: 690, MonthlySold12mAgo: 620, MonthlySold24mAgo: 540,
			SellerCount: 7, SalesGrowthRate: 13.0,
		},
		Score: model.ScoreBreakdown{
			Market: 14, Competition: 14, SellerScore: 8, ReviewScore: 6,
			Growth: 8, ShortTermScore: 4, LongTermScore: 4,
			Total: 36, MonthlyMarketSize: 5444400,
			ProfitMargin: 4.99, ROI: 6.65, NetProfit: 348,
		},
	},
	{
		Facts: model.NormalizedFacts{
			ASIN: "B10SAMPLE4", Title: "プロ仕様 ヨガマット 12mm 超厚手 関節保護 エクササイズマット",
			Price: 4980, Rating: 4.3, ReviewCount: 1534, CurrentRank: 189,
			MonthlySoldCurrent: 980, MonthlySold6mAgo: 850, MonthlySold12mAgo: 720, MonthlySold24mAgo: 610,
			SellerCount: 6, SalesGrowthRate: 15.3,
		},
		Score: model.ScoreBreakdown{
			Market: 10, Competition: 12, SellerScore: 8, ReviewScore: 4,
			Growth: 10, ShortTermScore: 4, LongTermScore: 6,
			Total: 32, MonthlyMarketSize: 4880400,
			ProfitMargin: 2.97, ROI: 3.96, NetProfit: 148,
		},
	},
	{
		Facts: model.NormalizedFacts{
			ASIN: "B14SAMPLE8", Title: "ヨガマット 大判 200cm×80cm 厚さ10mm トレーニング ストレッチ",
			Price: 3980, Rating: 3.7, ReviewCount: 512, CurrentRank: 425,
			MonthlySoldCurrent: 520, MonthlySold6mAgo: 480, MonthlySold12mAgo: 450, MonthlySold24mAgo: 420,
			SellerCount: 9, SalesGrowthRate: 8.3,
		},
		Score: model.ScoreBreakdown{
			Market: 10, Competition: 14, SellerScore: 8, ReviewScore: 6,
			Growth: 8, ShortTermScore: 4, LongTermScore: 4,
			Total: 32, MonthlyMarketSize: 2069600,
			ProfitMargin: 1.21, ROI: 1.61, NetProfit: 48,
		},
	},
	{
		Facts: model.NormalizedFacts{
			ASIN: "B09SAMPLE2", Title: "ヨガマット 6mm エクササイズマット NBR素材 収納バッグ付き",
			Price: 1980, Rating: 4.1, ReviewCount: 856, CurrentRank: 248,
			MonthlySoldCurrent: 850, MonthlySold6mAgo: 680, MonthlySold12mAgo: 590, MonthlySold24mAgo: 510,
			SellerCount: 15, SalesGrowthRate: 25.0,
		},
		Score: model.ScoreBreakdown{
			Market: 5, Competition: 12, SellerScore: 6, ReviewScore: 6,
			Growth: 12, ShortTermScore: 6, LongTermScore: 6,
			Total: 29, MonthlyMarketSize: 1683000,
			ProfitMargin: -7.68, ROI: -10.24, NetProfit: -152,
		},
	},
	{
		Facts: model.NormalizedFacts{
			ASIN: "B11SAMPLE5", Title: "ヨガマット 滑らない 初心者向け 厚さ4mm ピラティスマット",
			Price: 1580, Rating: 3.9, ReviewCount: 423, CurrentRank: 542,
			MonthlySoldCurrent: 420, MonthlySold6mAgo: 380, MonthlySold12mAgo: 350, MonthlySold24mAgo: 320,
			SellerCount: 18, SalesGrowthRate: 10.5,
		},
		Score: model.ScoreBreakdown{
			Market: 5, Competition: 14, SellerScore: 6, ReviewScore: 8,
			Growth: 8, ShortTermScore: 4, LongTermScore: 4,
			Total: 27, MonthlyMarketSize: 663600,
			ProfitMargin: -12.15, ROI: -16.20, NetProfit: -192,
		},
	},
	{
		Facts: model.NormalizedFacts{
			ASIN: "B07SAMPLE3", Title: "ヨガマット 8mm 軽量 折りたたみ式 持ち運び便利 滑り止め",
			Price: 3480, Rating: 3.6, ReviewCount: 632, CurrentRank: 385,
			MonthlySoldCurrent: 600, MonthlySold6mAgo: 620, MonthlySold12mAgo: 580, MonthlySold24mAgo: 550,
			SellerCount: 22, SalesGrowthRate: -3.2,
		},
		Score: model.ScoreBreakdown{
			Market: 10, Competition: 12, SellerScore: 6, ReviewScore: 6,
			Growth: 4, ShortTermScore: 2, LongTermScore: 2,
			Total: 26, MonthlyMarketSize: 2088000,
			ProfitMargin: -0.06, ROI: -0.08, NetProfit: -2,
		},
	},
	{
		Facts: model.NormalizedFacts{
			ASIN: "B13SAMPLE7", Title: "ヨガマット ケース付き 6mm TPE 軽量 水洗い可能 滑り止め",
			Price: 2480, Rating: 4.0, ReviewCount: 745, CurrentRank: 312,
			MonthlySoldCurrent: 680, MonthlySold6mAgo: 720, MonthlySold12mAgo: 690, MonthlySold24mAgo: 650,
			SellerCount: 12, SalesGrowthRate: -5.6,
		},
		Score: model.ScoreBreakdown{
			Market: 6, Competition: 12, SellerScore: 6, ReviewScore: 6,
			Growth: 4, ShortTermScore: 2, LongTermScore: 2,
			Total: 22, MonthlyMarketSize: 1686400,
			ProfitMargin: -4.11, ROI: -5.48, NetProfit: -102,
		},
	},
	{
		Facts: model.NormalizedFacts{
			ASIN: "B15SAMPLE9", Title: "ヨガマット 折りたたみ 4mm コンパクト 収納便利 自宅トレーニング",
			Price: 2280, Rating: 3.5, ReviewCount: 398, CurrentRank: 638,
			MonthlySoldCurrent: 350, MonthlySold6mAgo: 420, MonthlySold12mAgo: 380, MonthlySold24mAgo: 360,
			SellerCount: 25, SalesGrowthRate: -16.7,
		},
		Score: model.ScoreBreakdown{
			Market: 6, Competition: 14, SellerScore: 6, ReviewScore: 8,
			Growth: 2, ShortTermScore: 2, LongTermScore: 0,
			Total: 22, MonthlyMarketSize: 798000,
			ProfitMargin: -5.35, ROI: -7.14, NetProfit: -122,
		},
	},
}

var reviews = map[string][]model.Review{
	"B08SAMPLE1": {
		{ASIN: "B08SAMPLE1", Rating: 1, Title: "においがきつい",
			Body: "届いてすぐゴム臭がひどく、1週間以上干しても匂いが取れません。部屋中が臭くなり使えません。"},
		{ASIN: "B08SAMPLE1", Rating: 1, Title: "配送時に折れ跡",
			Body: "配送時の梱包が悪く、マットに深い折れ跡がついていました。広げても跡が消えず、使いづらいです。"},
		{ASIN: "B08SAMPLE1", Rating: 2, Title: "1ヶ月で劣化",
			Body: "使い始めて1ヶ月で表面がボロボロになってきました。滑り止めのグリップ力も落ちてきており、ヨガ中に滑って危険です。"},
		{ASIN: "B08SAMPLE1", Rating: 2, Title: "滑り止めがすぐ剥がれた",
			Body: "滑り止め加工が2週間で剥がれてきました。価格の割に品質が悪いと感じます。"},
		{ASIN: "B08SAMPLE1", Rating: 3, Title: "厚みはいいが重い",
			Body: "10mmの厚さで膝への負担は減りましたが、重さが1.5kgあり持ち運びには不便。ジムに持っていくには向かないです。"},
	},
	"B09SAMPLE2": {
		{ASIN: "B09SAMPLE2", Rating: 1, Title: "汗で滑る",
			Body: "ホットヨガで使用したところ、汗で非常に滑りやすく危険でした。グリップ力が全くありません。"},
		{ASIN: "B09SAMPLE2", Rating: 2, Title: "収納バッグがすぐ破れた",
			Body: "付属の収納バッグの縫い目が弱く、3回使っただけで破れました。バッグだけ別売りしてほしい。"},
		{ASIN: "B09SAMPLE2", Rating: 3, Title: "薄すぎる",
			Body: "6mmですが実際は5mm程度しかないように感じます。固い床だと膝が痛くなります。"},
	},
	"B07SAMPLE3": {
		{ASIN: "B07SAMPLE3", Rating: 1, Title: "色落ちがひどい",
			Body: "使用後に手に色がつき、洗っても色落ちが止まりません。衣類にも色移りしてしまいました。"},
		{ASIN: "B07SAMPLE3", Rating: 2, Title: "折りたたみ部分がすぐダメに",
			Body: "折りたたみ式なのは便利ですが、折り目部分がすぐに割れてボロボロになりました。"},
		{ASIN: "B07SAMPLE3", Rating: 3, Title: "軽量だが安定感なし",
			Body: "軽いのはいいですが、薄くて床との密着性が悪く、ポーズ中にずれてしまいます。"},
	},
}

var demoAnalysis = model.Analysis{
	IssueCategories: map[string][]model.Issue{
		"品質問題": {
			{Problem: "1-2ヶ月で表面が劣化・ボロボロになる", Frequency: "高", Example: "使い始めて1ヶ月で表面がボロボロになってきました"},
			{Problem: "滑り止め加工が短期間で剥がれる", Frequency: "高", Example: "滑り止め加工が2週間で剥がれてきました"},
			{Problem: "折りたたみ部分が割れやすい", Frequency: "中", Example: "折り目部分がすぐに割れてボロボロになりました"},
		},
		"機能不足": {
			{Problem: "汗をかくと滑りやすく危険", Frequency: "高", Example: "汗で非常に滑りやすく危険でした"},
			{Problem: "床との密着性が悪くずれる", Frequency: "中", Example: "ポーズ中にずれてしまいます"},
		},
		"使い勝手": {
			{Problem: "重量が重く持ち運びに不便", Frequency: "中", Example: "重さが1.5kgあり持ち運びには不便"},
		},
		"価格価値": {
			{Problem: "表記厚みより薄く膝が痛くなる", Frequency: "中", Example: "6mmですが実際は5mm程度しかないように感じます"},
		},
		"その他": {
			{Problem: "ゴム臭がきつく長期間消えない", Frequency: "高", Example: "1週間以上干しても匂いが取れません"},
			{Problem: "配送時の折れ跡が消えない", Frequency: "中", Example: "マットに深い折れ跡がついていました"},
		},
	},
	Proposals: []model.Proposal{
		{
			Suggestion:      "高耐久TPE素材 + 2層構造の強化滑り止め加工",
			SolvedProblem:   "表面劣化と滑り止め剥がれ",
			Feasibility:     "高",
			Differentiation: "汗をかいても滑らない特殊グリップ加工",
			CostImpact:      "製造原価+10%程度",
		},
		{
			Suggestion:      "厚み10mmを維持したまま1.0kg以下に軽量化",
			SolvedProblem:   "持ち運びの不便さ",
			Feasibility:     "中",
			Differentiation: "同厚クラスで最軽量",
			CostImpact:      "軽量素材で原価+15%程度",
		},
		{
			Suggestion:      "特殊脱臭処理で開封直後からにおいゼロ",
			SolvedProblem:   "ゴム臭への不満",
			Feasibility:     "高",
			Differentiation: "無臭をパッケージで保証",
			CostImpact:      "工程追加でわずかに増",
		},
	},
	Concept: model.Concept{
		Name:          "プロ仕様 超耐久ヨガマット ZEN PRO",
		TargetSegment: "自宅とジムを行き来する中級者",
		USP:           "10mm厚・1.0kg・汗でも滑らない2層グリップ",
		PriceRange:    "¥4,980",
		Message:       "競合の不満点をすべて解決した完成形ヨガマット",
	},
}

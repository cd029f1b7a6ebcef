package analysis

import (
	"context"
	"strings"
	"testing"

	"NicheScout/internal/model"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a": 1}`, `{"a": 1}`},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced no language", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\": 1}\n```\n  ", `{"a": 1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripFences(tc.in); got != tc.want {
				t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBuildPromptContainsReviews(t *testing.T) {
	reviews := []model.Review{
		{Rating: 1, Title: "すぐ壊れた", Body: "二日で壊れました"},
		{Rating: 3, Title: "普通", Body: "値段なり"},
	}
	prompt := buildPrompt("テスト商品", reviews)

	if !strings.Contains(prompt, "テスト商品") {
		t.Error("prompt missing product title")
	}
	if !strings.Contains(prompt, "すぐ壊れた") || !strings.Contains(prompt, "二日で壊れました") {
		t.Error("prompt missing review content")
	}
	if !strings.Contains(prompt, "issue_categories") {
		t.Error("prompt missing output schema")
	}
}

func TestAnalyzeRejectsAllPositive(t *testing.T) {
	a := NewAnalyzer("key", "")
	reviews := []model.Review{
		{Rating: 4, Title: "良い", Body: "満足"},
		{Rating: 5, Title: "最高", Body: "文句なし"},
	}
	if _, err := a.Analyze(context.Background(), "テスト商品", reviews); err == nil {
		t.Fatal("expected error with no low-rated reviews")
	}
}

package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"NicheScout/internal/model"
)

const (
	maxSampledReviews = 300
	maxTokens         = 4096
)

// Analyzer turns a batch of negative reviews into categorized issues,
// improvement proposals, and a product concept using an LLM backend.
type Analyzer struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

// NewAnalyzer creates an analyzer talking to the Anthropic messages API.
func NewAnalyzer(apiKey, modelName string) *Analyzer {
	if modelName == "" {
		modelName = "claude-sonnet-4-5-20250929"
	}
	return &Analyzer{
		BaseURL: "https://api.anthropic.com",
		APIKey:  apiKey,
		Model:   modelName,
		Client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// Analyze extracts issues and proposals from the low-rated subset of
// reviews. Reviews rated above 3 stars are ignored.
func (a *Analyzer) Analyze(ctx context.Context, title string, reviews []model.Review) (*model.Analysis, error) {
	negative := make([]model.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.Rating <= 3 {
			negative = append(negative, r)
		}
	}
	if len(negative) == 0 {
		return nil, fmt.Errorf("no low-rated reviews to analyze")
	}
	if len(negative) > maxSampledReviews {
		negative = negative[:maxSampledReviews]
	}
	log.Printf("[INFO] analyzing %d negative reviews for %q", len(negative), title)

	raw, err := a.complete(ctx, buildPrompt(title, negative))
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}

	var result model.Analysis
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("parse analysis output: %w", err)
	}
	return &result, nil
}

func buildPrompt(title string, reviews []model.Review) string {
	var b strings.Builder
	fmt.Fprintf(&b, "以下はAmazon商品「%s」の低評価レビューです。\n\n", title)
	for i, r := range reviews {
		fmt.Fprintf(&b, "レビュー%d (★%d): %s\n%s\n\n", i+1, r.Rating, r.Title, r.Body)
	}
	b.WriteString(`これらのレビューを分析し、以下のJSON形式で出力してください。JSON以外のテキストは含めないでください。

{
  "issue_categories": {
    "品質問題": [{"problem": "...", "frequency": "高/中/低", "example": "..."}],
    "機能不足": [...],
    "使い勝手": [...],
    "価格価値": [...],
    "その他": [...]
  },
  "proposals": [
    {"suggestion": "...", "solved_problem": "...", "feasibility": "高/中/低", "differentiation": "...", "cost_impact": "..."}
  ],
  "concept": {
    "name": "...", "target_segment": "...", "usp": "...", "price_range": "...", "message": "..."
  }
}`)
	return b.String()
}

func (a *Analyzer) complete(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model":      a.Model,
		"max_tokens": maxTokens,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := a.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("status %d, body: %s", resp.StatusCode, string(data))
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	for _, block := range result.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

// stripFences removes a markdown code fence the model sometimes wraps
// around its JSON output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

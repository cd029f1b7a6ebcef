package model

// Review is one customer review fetched for an item.
type Review struct {
	ASIN             string `json:"asin"`
	ReviewID         string `json:"review_id"`
	Rating           int    `json:"rating"`
	Title            string `json:"title"`
	Body             string `json:"body"`
	VerifiedPurchase bool   `json:"verified_purchase"`
	Date             string `json:"date"`
	HelpfulVotes     int    `json:"helpful_votes"`
	Images           int    `json:"images"`
	Page             int    `json:"page"`
	Position         int    `json:"position"`
}

// Issue is one extracted problem within a category.
type Issue struct {
	Problem   string `json:"problem"`
	Frequency string `json:"frequency"`
	Example   string `json:"example"`
}

// Proposal is one product-improvement suggestion.
type Proposal struct {
	Suggestion      string `json:"suggestion"`
	SolvedProblem   string `json:"solved_problem"`
	Feasibility     string `json:"feasibility"`
	Differentiation string `json:"differentiation"`
	CostImpact      string `json:"cost_impact"`
}

// Concept is a new-product concept derived from the review analysis.
type Concept struct {
	Name          string `json:"name"`
	TargetSegment string `json:"target_segment"`
	USP           string `json:"usp"`
	PriceRange    string `json:"price_range"`
	Message       string `json:"message"`
}

// Analysis is the structured output of the review analysis step.
type Analysis struct {
	IssueCategories map[string][]Issue `json:"issue_categories"`
	Proposals       []Proposal         `json:"proposals"`
	Concept         Concept            `json:"concept"`
}

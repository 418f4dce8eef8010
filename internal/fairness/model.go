package fairness

import "fairsplit/internal/money"

// Trend direction of the subject's net contribution over time.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendNeutral   = "neutral"
)

// ContributionRecord is one period (year-month) of the subject's
// contribution time series. Closed periods are immutable once computed; the
// current period is rebuilt on every query because the history is always
// derived fresh from expense data.
type ContributionRecord struct {
	Period          string       `json:"month"` // "2006-01"
	Contributed     money.Amount `json:"contributed"`
	Received        money.Amount `json:"received"`
	NetContribution money.Amount `json:"net_contribution"`
	FairnessRating  int          `json:"fairness_rating"` // 0..100
}

// Score holds the headline fairness metrics. 50 is perfectly balanced.
type Score struct {
	Overall     int    `json:"overall"`     // 0..100
	Consistency int    `json:"consistency"` // 0..100, higher = steadier
	Generosity  int    `json:"generosity"`  // % of periods with net > 10
	Trend       string `json:"trend"`
}

// Pattern is a detected contribution behavior. Patterns are independent and
// non-exclusive; an analysis may emit none or several.
type Pattern struct {
	Type        string `json:"type"` // over_contributor, under_contributor, inconsistent, improving
	Description string `json:"description"`
	Severity    string `json:"severity"` // moderate, high
	Impact      string `json:"impact"`   // positive, negative, neutral
}

// Recommendation is an actionable suggestion derived from score thresholds.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Priority    string `json:"priority"` // low, medium, high
}

// Report is the full fairness analysis for a subject.
type Report struct {
	Score               Score                `json:"fairness_score"`
	TotalContributed    money.Amount         `json:"total_contributed"`
	TotalReceived       money.Amount         `json:"total_received"`
	NetContribution     money.Amount         `json:"net_contribution"`
	ContributionHistory []ContributionRecord `json:"contribution_history"`
	Patterns            []Pattern            `json:"patterns"`
	Recommendations     []Recommendation     `json:"recommendations"`
}

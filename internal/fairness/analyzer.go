package fairness

import (
	"fmt"
	"math"
)

// Analyze derives fairness metrics, behavioral patterns, and recommendations
// from a chronologically ordered contribution history. It is a pure function
// of its input: no I/O, no hidden state.
func Analyze(history []ContributionRecord) *Report {
	report := &Report{
		ContributionHistory: history,
		Patterns:            []Pattern{},
		Recommendations:     []Recommendation{},
	}

	nets := make([]float64, len(history))
	for i, rec := range history {
		report.TotalContributed += rec.Contributed
		report.TotalReceived += rec.Received
		nets[i] = rec.NetContribution.Float()
	}
	report.NetContribution = report.TotalContributed - report.TotalReceived

	report.Score = Score{
		Overall:     overallScore(report, len(history)),
		Consistency: clampScore(100 - stddev(nets)/50),
		Generosity:  generosity(nets),
		Trend:       trend(nets),
	}

	report.Patterns = detectPatterns(nets)
	report.Recommendations = recommend(report.Score)

	return report
}

// overallScore maps the contributed/received ratio onto 0..100 with 50 as
// the balanced point. A subject who never receives anything is treated as
// balanced rather than infinitely generous.
func overallScore(report *Report, periods int) int {
	if periods == 0 {
		return 50
	}
	avgContributed := report.TotalContributed.Float() / float64(periods)
	avgReceived := report.TotalReceived.Float() / float64(periods)

	ratio := 1.0
	if avgReceived != 0 {
		ratio = avgContributed / avgReceived
	}
	return clampScore(50 + (ratio-1)*25)
}

// RateRatio scores a single period with the same ratio formula the overall
// score uses, so per-period ratings and the aggregate agree on what 50 means.
func RateRatio(contributed, received float64) int {
	ratio := 1.0
	if received != 0 {
		ratio = contributed / received
	}
	return clampScore(50 + (ratio-1)*25)
}

// trend compares the mean net contribution of the most recent periods
// against the earliest ones. Differences inside ±20 read as noise.
func trend(nets []float64) string {
	if len(nets) == 0 {
		return TrendNeutral
	}

	window := 3
	if len(nets) < window {
		window = len(nets)
	}
	earliest := mean(nets[:window])
	recent := mean(nets[len(nets)-window:])

	switch {
	case recent > earliest+20:
		return TrendImproving
	case recent < earliest-20:
		return TrendDeclining
	default:
		return TrendNeutral
	}
}

// generosity is the percentage of periods where the subject put in
// meaningfully more than they got back.
func generosity(nets []float64) int {
	if len(nets) == 0 {
		return 0
	}
	count := 0
	for _, n := range nets {
		if n > 10 {
			count++
		}
	}
	return int(math.Round(float64(count) / float64(len(nets)) * 100))
}

func detectPatterns(nets []float64) []Pattern {
	patterns := []Pattern{}
	if len(nets) == 0 {
		return patterns
	}

	avg := mean(nets)
	sd := stddev(nets)

	if avg > 50 {
		severity := "moderate"
		if avg > 100 {
			severity = "high"
		}
		patterns = append(patterns, Pattern{
			Type:        "over_contributor",
			Description: fmt.Sprintf("You contribute %.0f more than you receive on average each month", avg),
			Severity:    severity,
			Impact:      "positive",
		})
	}

	if avg < -30 {
		severity := "moderate"
		if avg < -80 {
			severity = "high"
		}
		patterns = append(patterns, Pattern{
			Type:        "under_contributor",
			Description: fmt.Sprintf("You receive %.0f more than you contribute on average each month", -avg),
			Severity:    severity,
			Impact:      "negative",
		})
	}

	if sd > 100 {
		patterns = append(patterns, Pattern{
			Type:        "inconsistent",
			Description: "Your monthly contributions swing widely from month to month",
			Severity:    "moderate",
			Impact:      "neutral",
		})
	}

	recentWindow := 2
	if len(nets) >= recentWindow {
		recent := mean(nets[len(nets)-recentWindow:])
		if recent > avg+30 {
			patterns = append(patterns, Pattern{
				Type:        "improving",
				Description: "Your contributions have picked up noticeably in recent months",
				Severity:    "moderate",
				Impact:      "positive",
			})
		}
	}

	return patterns
}

func recommend(score Score) []Recommendation {
	recs := []Recommendation{}

	if score.Overall > 70 {
		recs = append(recs, Recommendation{
			Title:       "Request reimbursement",
			Description: "You've been covering more than your share. Ask the group to settle up.",
			Action:      "Request payment",
			Priority:    "high",
		})
	}
	if score.Overall < 30 {
		recs = append(recs, Recommendation{
			Title:       "Settle your debts",
			Description: "You've received more than you've contributed. Paying down balances keeps things fair.",
			Action:      "Settle up",
			Priority:    "high",
		})
	}
	if score.Consistency < 40 {
		recs = append(recs, Recommendation{
			Title:       "Even out your contributions",
			Description: "Your contributions vary a lot month to month. Steadier habits make splitting easier.",
			Action:      "View history",
			Priority:    "medium",
		})
	}
	if score.Trend == TrendDeclining {
		recs = append(recs, Recommendation{
			Title:       "Get ahead of the trend",
			Description: "Your net contribution has been falling. A proactive payment keeps balances healthy.",
			Action:      "Make a payment",
			Priority:    "medium",
		})
	}

	return recs
}

func clampScore(v float64) int {
	return int(math.Round(math.Max(0, math.Min(100, v))))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		sq += (v - m) * (v - m)
	}
	return math.Sqrt(sq / float64(len(values)))
}

package fairness

import (
	"sort"

	"fairsplit/internal/expense"
)

// BuildHistory buckets expense data into the subject's monthly contribution
// time series, oldest first.
//
// Contributed is everything the subject paid for others; received is the
// subject's own share of expenses someone else paid. Settled expenses stay
// in the history: fairness looks at contribution behavior over time, not at
// live balances.
func BuildHistory(subject string, expenses []*expense.Expense) []ContributionRecord {
	byPeriod := map[string]*ContributionRecord{}

	for _, e := range expenses {
		period := e.CreatedAt.Format("2006-01")
		rec, ok := byPeriod[period]
		if !ok {
			rec = &ContributionRecord{Period: period}
			byPeriod[period] = rec
		}

		if e.PaidBy == subject {
			// Contribution is what the subject covered for everyone else,
			// so their own share of their own expense doesn't count.
			for _, sp := range e.Splits {
				if sp.MemberName != subject {
					rec.Contributed += sp.Amount
				}
			}
			continue
		}

		for _, sp := range e.Splits {
			if sp.MemberName == subject {
				rec.Received += sp.Amount
			}
		}
	}

	periods := make([]string, 0, len(byPeriod))
	for p := range byPeriod {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	history := make([]ContributionRecord, 0, len(periods))
	for _, p := range periods {
		rec := byPeriod[p]
		rec.NetContribution = rec.Contributed - rec.Received
		rec.FairnessRating = RateRatio(rec.Contributed.Float(), rec.Received.Float())
		history = append(history, *rec)
	}

	return history
}

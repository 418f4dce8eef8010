package fairness

import (
	"context"

	"fairsplit/internal/expense"
)

// ExpenseSource provides the expenses the contribution history is built from.
type ExpenseSource interface {
	GetAll(ctx context.Context) ([]*expense.Expense, error)
}

// Service assembles fairness reports for a subject.
type Service struct {
	expenses ExpenseSource
}

// NewService creates a new fairness service
func NewService(expenses ExpenseSource) *Service {
	return &Service{expenses: expenses}
}

// Insights builds the subject's contribution history from expense data and
// analyzes it.
func (s *Service) Insights(ctx context.Context, subject string) (*Report, error) {
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	history := BuildHistory(subject, expenses)
	return Analyze(history), nil
}

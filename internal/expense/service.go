package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"fairsplit/internal/expense/split"
	"fairsplit/internal/group"
	"fairsplit/internal/money"
	"fairsplit/pkg/metrics"
)

// Common errors
var (
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrMemberNotFound     = errors.New("member not found in group")
	ErrUnknownSplitMethod = errors.New("unknown split method")
)

// Store abstracts expense persistence.
type Store interface {
	Create(ctx context.Context, e *Expense) (*Expense, error)
	GetByID(ctx context.Context, id int64) (*Expense, error)
	GetAll(ctx context.Context) ([]*Expense, error)
	ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error)
	Update(ctx context.Context, id int64, req *UpdateExpenseRequest) (*Expense, error)
	Delete(ctx context.Context, id int64) error
	SetSettled(ctx context.Context, id int64, settled bool) (*Expense, error)
	Search(ctx context.Context, query string) ([]*Expense, error)
	Recent(ctx context.Context, limit int) ([]*Expense, error)
	ByDateRange(ctx context.Context, start, end time.Time) ([]*Expense, error)
}

// Groups is the slice of the group service the expense feature needs.
type Groups interface {
	GetByID(ctx context.Context, id int64) (*group.Group, error)
	TouchActivity(ctx context.Context, groupID int64) error
}

// Recorder appends entries to the group activity feed.
type Recorder interface {
	Record(ctx context.Context, groupID int64, typ, message string)
}

// Service handles expense business logic
type Service struct {
	store    Store
	groups   Groups
	activity Recorder
}

// NewService creates a new expense service with dependencies injected
func NewService(store Store, groups Groups, activity Recorder) *Service {
	return &Service{store: store, groups: groups, activity: activity}
}

// Create validates and persists a new expense with its calculated splits.
// The split method is resolved to a calculator variant, shares are computed,
// and the shares must reconcile with the total within one minor unit before
// anything is written.
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	grp, err := s.groups.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	participants, err := resolveParticipants(grp, req.Participants)
	if err != nil {
		return nil, err
	}

	payer, err := memberByID(grp, req.PaidBy)
	if err != nil {
		return nil, err
	}

	m, err := method(req.SplitMethod, req.Participants)
	if err != nil {
		return nil, err
	}

	total := money.FromFloat(req.Amount)
	shares, err := split.Calculate(total, m, participants)
	if err != nil {
		return nil, err
	}
	if err := split.Validate(total, shares); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = grp.Currency
	}
	category := req.Category
	if category == "" {
		category = "general"
	}

	e := &Expense{
		GroupID:     req.GroupID,
		Description: req.Description,
		Amount:      total,
		Currency:    currency,
		PaidBy:      payer.Name,
		Category:    category,
		SplitMethod: m.Kind(),
		ReceiptRef:  req.ReceiptRef,
	}
	for _, sh := range shares {
		e.Splits = append(e.Splits, &Split{
			MemberID:   sh.MemberID,
			MemberName: sh.MemberName,
			Amount:     sh.Amount,
		})
	}

	created, err := s.store.Create(ctx, e)
	if err != nil {
		return nil, err
	}

	metrics.ExpensesCreated.Inc()
	s.activity.Record(ctx, created.GroupID, "expense_added",
		fmt.Sprintf("%s paid %s for %s", created.PaidBy, created.Amount, created.Description))
	if err := s.groups.TouchActivity(ctx, created.GroupID); err != nil {
		slog.Warn("failed to touch group activity", "group_id", created.GroupID, "error", err)
	}

	return created, nil
}

// PreviewSplits runs the calculator without persisting anything. Unlike
// Create it does not reject a mismatched total: the caller is told whether
// the shares reconcile and decides what to show.
func (s *Service) PreviewSplits(ctx context.Context, req *PreviewSplitRequest) (*PreviewSplitResponse, error) {
	grp, err := s.groups.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	participants, err := resolveParticipants(grp, req.Participants)
	if err != nil {
		return nil, err
	}

	m, err := method(req.SplitMethod, req.Participants)
	if err != nil {
		return nil, err
	}

	total := money.FromFloat(req.Amount)
	shares, err := split.Calculate(total, m, participants)
	if err != nil {
		return nil, err
	}

	var sharesTotal money.Amount
	for _, sh := range shares {
		sharesTotal += sh.Amount
	}

	resp := &PreviewSplitResponse{
		Shares:      shares,
		Total:       total,
		SharesTotal: sharesTotal,
		Reconciles:  (sharesTotal - total).Abs() <= money.Tolerance,
	}
	if pct, ok := m.(split.Percentage); ok {
		sum := pct.Total()
		resp.PercentageTotal = &sum
	}

	return resp, nil
}

// GetByID retrieves an expense with its splits
func (s *Service) GetByID(ctx context.Context, id int64) (*Expense, error) {
	e, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}
	return e, nil
}

// ListByGroup retrieves a page of expenses for a group
func (s *Service) ListByGroup(ctx context.Context, groupID int64, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.store.ListByGroup(ctx, groupID, perPage, offset)
}

// GetAll retrieves every expense with splits, for balance and fairness math
func (s *Service) GetAll(ctx context.Context) ([]*Expense, error) {
	return s.store.GetAll(ctx)
}

// Update modifies an expense's descriptive fields and can flip the settled
// flag in either direction
func (s *Service) Update(ctx context.Context, id int64, req *UpdateExpenseRequest) (*Expense, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrExpenseNotFound
	}
	return s.store.Update(ctx, id, req)
}

// Delete removes an expense and its splits as a whole
func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrExpenseNotFound
	}
	return s.store.Delete(ctx, id)
}

// Settle marks an expense settled so it stops contributing to balances
func (s *Service) Settle(ctx context.Context, id int64) (*Expense, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrExpenseNotFound
	}

	e, err := s.store.SetSettled(ctx, id, true)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, e.GroupID, "expense_settled",
		fmt.Sprintf("%s was settled", e.Description))
	return e, nil
}

// Search finds expenses by description, payer, or category
func (s *Service) Search(ctx context.Context, query string) ([]*Expense, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*Expense{}, nil
	}
	return s.store.Search(ctx, query)
}

// Recent retrieves the most recently created expenses
func (s *Service) Recent(ctx context.Context, limit int) ([]*Expense, error) {
	if limit < 1 || limit > 50 {
		limit = 5
	}
	return s.store.Recent(ctx, limit)
}

// ByDateRange retrieves expenses created within [start, end]
func (s *Service) ByDateRange(ctx context.Context, start, end time.Time) ([]*Expense, error) {
	return s.store.ByDateRange(ctx, start, end)
}

// ScanReceipt pretends to OCR a receipt image. Real extraction is out of
// scope; the canned result gives the UI something to prefill.
func (s *Service) ScanReceipt(ctx context.Context) *ReceiptScan {
	metrics.ReceiptScans.Inc()
	return &ReceiptScan{
		Description: "Scanned receipt",
		Amount:      money.FromFloat(42.50),
		Category:    "food",
		ReceiptRef:  fmt.Sprintf("receipts/%s.jpg", uuid.NewString()),
	}
}

// resolveParticipants maps requested member IDs onto the group's member
// list, preserving request order. A reference to a member the group does
// not have fails loudly instead of being dropped.
func resolveParticipants(grp *group.Group, participants []*SplitParticipant) ([]split.Participant, error) {
	resolved := make([]split.Participant, 0, len(participants))
	for _, p := range participants {
		m, err := memberByID(grp, p.MemberID)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, split.Participant{ID: m.ID, Name: m.Name})
	}
	return resolved, nil
}

func memberByID(grp *group.Group, id int64) (*group.Member, error) {
	for _, m := range grp.Members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: member %d in group %d", ErrMemberNotFound, id, grp.ID)
}

package expense

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fairsplit/internal/expense/split"
	"fairsplit/internal/money"
)

// Repository is the Postgres implementation of Store. Amounts are persisted
// as bigint minor units.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const expenseColumns = `id, group_id, description, amount, currency, paid_by, category, split_method, settled, receipt_ref, created_at`

// Create inserts an expense and its splits in one transaction
func (r *Repository) Create(ctx context.Context, e *Expense) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (group_id, description, amount, currency, paid_by, category, split_method, settled, receipt_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)
		RETURNING ` + expenseColumns

	created := &Expense{}
	if err := scanExpense(tx.QueryRowContext(ctx, query,
		e.GroupID,
		e.Description,
		int64(e.Amount),
		e.Currency,
		e.PaidBy,
		e.Category,
		string(e.SplitMethod),
		e.ReceiptRef,
	), created); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	splitQuery := `
		INSERT INTO expense_splits (expense_id, member_id, member_name, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, expense_id, member_id, member_name, amount
	`
	for _, sp := range e.Splits {
		row := &Split{}
		var amt int64
		err := tx.QueryRowContext(ctx, splitQuery, created.ID, sp.MemberID, sp.MemberName, int64(sp.Amount)).Scan(
			&row.ID,
			&row.ExpenseID,
			&row.MemberID,
			&row.MemberName,
			&amt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create split: %w", err)
		}
		row.Amount = money.Amount(amt)
		created.Splits = append(created.Splits, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense creation: %w", err)
	}

	return created, nil
}

// GetByID retrieves an expense with its splits, or nil if absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`

	e := &Expense{}
	if err := scanExpense(r.db.QueryRowContext(ctx, query, id), e); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	splits, err := r.getSplits(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Splits = splits

	return e, nil
}

// GetAll retrieves every expense with its splits
func (r *Repository) GetAll(ctx context.Context) ([]*Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY id`
	return r.queryExpenses(ctx, query)
}

// ListByGroup retrieves a page of a group's expenses, newest first
func (r *Repository) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM expenses WHERE group_id = $1`, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `SELECT ` + expenseColumns + `
		FROM expenses
		WHERE group_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	expenses, err := r.queryExpenses(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// Update modifies an expense's descriptive fields and settled flag
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateExpenseRequest) (*Expense, error) {
	query := `
		UPDATE expenses
		SET description = COALESCE($2, description),
		    category = COALESCE($3, category),
		    receipt_ref = COALESCE($4, receipt_ref),
		    settled = COALESCE($5, settled)
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id, req.Description, req.Category, req.ReceiptRef, req.Settled); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes an expense; splits go with it via ON DELETE CASCADE
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// SetSettled flips the settled flag on an expense
func (r *Repository) SetSettled(ctx context.Context, id int64, settled bool) (*Expense, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET settled = $2 WHERE id = $1`, id, settled); err != nil {
		return nil, fmt.Errorf("failed to settle expense: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Search finds expenses whose description, payer, or category matches the query
func (r *Repository) Search(ctx context.Context, q string) ([]*Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM expenses
		WHERE description ILIKE '%' || $1 || '%'
		   OR paid_by ILIKE '%' || $1 || '%'
		   OR category ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`

	return r.queryExpenses(ctx, query, q)
}

// Recent retrieves the most recently created expenses
func (r *Repository) Recent(ctx context.Context, limit int) ([]*Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM expenses
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	return r.queryExpenses(ctx, query, limit)
}

// ByDateRange retrieves expenses created within [start, end]
func (r *Repository) ByDateRange(ctx context.Context, start, end time.Time) ([]*Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM expenses
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at`

	return r.queryExpenses(ctx, query, start, end)
}

func (r *Repository) queryExpenses(ctx context.Context, query string, args ...any) ([]*Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		if err := scanExpense(rows, e); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, e := range expenses {
		splits, err := r.getSplits(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		e.Splits = splits
	}

	return expenses, nil
}

func (r *Repository) getSplits(ctx context.Context, expenseID int64) ([]*Split, error) {
	query := `
		SELECT id, expense_id, member_id, member_name, amount
		FROM expense_splits
		WHERE expense_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	var splits []*Split
	for rows.Next() {
		sp := &Split{}
		var amt int64
		if err := rows.Scan(&sp.ID, &sp.ExpenseID, &sp.MemberID, &sp.MemberName, &amt); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		sp.Amount = money.Amount(amt)
		splits = append(splits, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return splits, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner, e *Expense) error {
	var (
		amt    int64
		method string
	)
	if err := row.Scan(
		&e.ID,
		&e.GroupID,
		&e.Description,
		&amt,
		&e.Currency,
		&e.PaidBy,
		&e.Category,
		&method,
		&e.Settled,
		&e.ReceiptRef,
		&e.CreatedAt,
	); err != nil {
		return err
	}
	e.Amount = money.Amount(amt)
	e.SplitMethod = split.Kind(method)
	return nil
}

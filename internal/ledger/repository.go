package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"fairsplit/internal/money"
)

// Repository is the Postgres implementation of Store. The owes/owedBy maps
// are stored as JSONB; amounts inside them serialize as decimal numbers via
// money.Amount.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new balance repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Consolidated returns the subject's cross-group record, or nil
func (r *Repository) Consolidated(ctx context.Context, subject string) (*BalanceRecord, error) {
	query := `
		SELECT subject, group_id, owes, owed_by, net_balance
		FROM balances
		WHERE subject = $1 AND group_id IS NULL
	`
	return r.queryOne(ctx, query, subject)
}

// Group returns the subject's record for one group, or nil
func (r *Repository) Group(ctx context.Context, subject string, groupID int64) (*BalanceRecord, error) {
	query := `
		SELECT subject, group_id, owes, owed_by, net_balance
		FROM balances
		WHERE subject = $1 AND group_id = $2
	`
	return r.queryOne(ctx, query, subject, groupID)
}

// Groups returns all of the subject's per-group records
func (r *Repository) Groups(ctx context.Context, subject string) ([]*BalanceRecord, error) {
	query := `
		SELECT subject, group_id, owes, owed_by, net_balance
		FROM balances
		WHERE subject = $1 AND group_id IS NOT NULL
		ORDER BY group_id
	`

	rows, err := r.db.QueryContext(ctx, query, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}
	defer rows.Close()

	var records []*BalanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balances: %w", err)
	}

	return records, nil
}

// SaveGroup upserts a per-group record, then rebuilds the consolidated
// record from all group records inside the same transaction.
func (r *Repository) SaveGroup(ctx context.Context, rec *BalanceRecord) error {
	if rec.GroupID == nil {
		return ErrNotGroupScoped
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsert(ctx, tx, rec); err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT subject, group_id, owes, owed_by, net_balance
		FROM balances
		WHERE subject = $1 AND group_id IS NOT NULL
	`, rec.Subject)
	if err != nil {
		return fmt.Errorf("failed to query group balances: %w", err)
	}
	defer rows.Close()

	var groupRecords []*BalanceRecord
	for rows.Next() {
		g, err := scanRecord(rows)
		if err != nil {
			return err
		}
		groupRecords = append(groupRecords, g)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate group balances: %w", err)
	}
	rows.Close()

	if err := upsert(ctx, tx, Consolidate(rec.Subject, groupRecords)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit balance update: %w", err)
	}
	return nil
}

// SaveConsolidated upserts the subject's consolidated record as-is
func (r *Repository) SaveConsolidated(ctx context.Context, rec *BalanceRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	cons := rec.Clone()
	cons.GroupID = nil
	if err := upsert(ctx, tx, cons); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit balance update: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsert(ctx context.Context, tx execer, rec *BalanceRecord) error {
	owes, err := json.Marshal(rec.Owes)
	if err != nil {
		return fmt.Errorf("failed to encode owes: %w", err)
	}
	owedBy, err := json.Marshal(rec.OwedBy)
	if err != nil {
		return fmt.Errorf("failed to encode owed_by: %w", err)
	}

	update := `
		UPDATE balances
		SET owes = $3, owed_by = $4, net_balance = $5, updated_at = now()
		WHERE subject = $1 AND group_id IS NOT DISTINCT FROM $2
	`
	res, err := tx.ExecContext(ctx, update, rec.Subject, rec.GroupID, owes, owedBy, int64(rec.NetBalance))
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	insert := `
		INSERT INTO balances (subject, group_id, owes, owed_by, net_balance)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, insert, rec.Subject, rec.GroupID, owes, owedBy, int64(rec.NetBalance)); err != nil {
		return fmt.Errorf("failed to insert balance: %w", err)
	}
	return nil
}

func (r *Repository) queryOne(ctx context.Context, query string, args ...any) (*BalanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to query balance: %w", err)
		}
		return nil, nil
	}
	return scanRecord(rows)
}

func scanRecord(rows *sql.Rows) (*BalanceRecord, error) {
	var (
		subject string
		groupID sql.NullInt64
		owes    []byte
		owedBy  []byte
		net     int64
	)
	if err := rows.Scan(&subject, &groupID, &owes, &owedBy, &net); err != nil {
		return nil, fmt.Errorf("failed to scan balance: %w", err)
	}

	rec := NewRecord(subject, nil)
	if groupID.Valid {
		gid := groupID.Int64
		rec.GroupID = &gid
	}
	if err := json.Unmarshal(owes, &rec.Owes); err != nil {
		return nil, fmt.Errorf("failed to decode owes: %w", err)
	}
	if err := json.Unmarshal(owedBy, &rec.OwedBy); err != nil {
		return nil, fmt.Errorf("failed to decode owed_by: %w", err)
	}
	rec.NetBalance = money.Amount(net)

	return rec, nil
}

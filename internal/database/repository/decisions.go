package repository

import (
	"context"
	"database/sql"
)

// DecisionRepo handles the decision journal.
type DecisionRepo struct {
	db *sql.DB
}

func NewDecisionRepo(db *sql.DB) *DecisionRepo { return &DecisionRepo{db: db} }

func (r *DecisionRepo) Append(ctx context.Context, d Decision) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO decisions(id, record_id, name, direction, source, decided_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`, d.ID, d.RecordID, d.Name, d.Direction, d.Source, d.DecidedAt)
	return err
}

// Recent lists the newest decisions first.
func (r *DecisionRepo) Recent(ctx context.Context, limit int) ([]Decision, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, record_id, name, direction, source, decided_at
	FROM decisions ORDER BY decided_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Decision
	for rows.Next() {
		var d Decision
		if err := rows.Scan(&d.ID, &d.RecordID, &d.Name, &d.Direction, &d.Source, &d.DecidedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Counts returns how many records went each way.
func (r *DecisionRepo) Counts(ctx context.Context) (left, right int, err error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT
	  COALESCE(SUM(CASE WHEN direction = 'left' THEN 1 ELSE 0 END), 0),
	  COALESCE(SUM(CASE WHEN direction = 'right' THEN 1 ELSE 0 END), 0)
	FROM decisions`)
	err = row.Scan(&left, &right)
	return left, right, err
}

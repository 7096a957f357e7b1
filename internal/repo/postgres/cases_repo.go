package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/meowza1/guardian-test/internal/domain/enums"
	"github.com/meowza1/guardian-test/internal/domain/model"
)

// CasesRepo appends case records to mod_cases. No update or delete is
// exposed; the ledger is append-only.
type CasesRepo struct {
	db *sql.DB
}

func NewCasesRepo(db *sql.DB) *CasesRepo {
	return &CasesRepo{db: db}
}

func (r *CasesRepo) Insert(ctx context.Context, c model.Case) error {
	if r.db == nil {
		return nil
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mod_cases (target_user_id, action, reason, moderator_tg_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, c.TargetID, string(c.Action), c.Reason, c.ModeratorID, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

func (r *CasesRepo) ListByTarget(ctx context.Context, targetID int64, limit int) ([]model.Case, error) {
	if r.db == nil {
		return []model.Case{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id::text, target_user_id, action, reason, moderator_tg_id, created_at
		FROM mod_cases
		WHERE target_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, targetID, limit)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	result := make([]model.Case, 0, limit)
	for rows.Next() {
		var c model.Case
		var action string
		if err := rows.Scan(&c.ID, &c.TargetID, &action, &c.Reason, &c.ModeratorID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan case row: %w", err)
		}
		c.Action = enums.CaseAction(action)
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate case rows: %w", err)
	}

	return result, nil
}

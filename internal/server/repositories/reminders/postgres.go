package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/dbx"
	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rem *models.Reminder) (string, error) {
	query :=
		`INSERT INTO reminders (owner_id, message, repeat, clock, weekday, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	var id string
	err := r.db.QueryRowContext(ctx, query,
		rem.OwnerID, rem.Message, rem.Repeat, rem.Clock, int(rem.Weekday), rem.CreatedAt).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) SelectByOwner(ctx context.Context, ownerID string) ([]models.Reminder, error) {
	query :=
		`SELECT id, owner_id, message, repeat, clock, weekday, created_at
		 FROM reminders
		 WHERE owner_id = $1
		 ORDER BY clock, created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.Reminder{}
	for rows.Next() {
		var (
			rem     models.Reminder
			weekday int
		)
		if err := rows.Scan(&rem.ID, &rem.OwnerID, &rem.Message, &rem.Repeat, &rem.Clock, &weekday, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		rem.Weekday = time.Weekday(weekday)
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	query :=
		`DELETE FROM reminders
		 WHERE id = $1 AND owner_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

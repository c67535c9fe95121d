package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/dbx"
	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

const selectColumns = `SELECT id, owner_id, recorded_at, mood, blood_pressure, heart_rate, weight, symptoms, notes
		 FROM health_records
		 WHERE owner_id = $1
		 ORDER BY recorded_at DESC, id DESC`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.HealthRecord) (string, error) {
	query :=
		`INSERT INTO health_records (owner_id, recorded_at, mood, blood_pressure, heart_rate, weight, symptoms, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id
		 `

	symptoms, err := encodeSymptoms(rec.Symptoms)
	if err != nil {
		return "", err
	}

	var id string
	err = r.db.QueryRowContext(ctx, query,
		rec.OwnerID, rec.Timestamp, rec.Mood, rec.BloodPressure, rec.HeartRate,
		nullWeight(rec.Weight), symptoms, rec.Notes).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) SelectRecent(ctx context.Context, ownerID string, limit int) ([]models.HealthRecord, error) {
	return r.query(ctx, selectColumns+"\n\t\t LIMIT $2", ownerID, limit)
}

func (r *PostgresRepository) SelectAll(ctx context.Context, ownerID string) ([]models.HealthRecord, error) {
	return r.query(ctx, selectColumns, ownerID)
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	query :=
		`DELETE FROM health_records
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

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.HealthRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.HealthRecord{}
	for rows.Next() {
		var (
			rec      models.HealthRecord
			weight   sql.NullFloat64
			symptoms []byte
		)
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Timestamp, &rec.Mood, &rec.BloodPressure,
			&rec.HeartRate, &weight, &symptoms, &rec.Notes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if weight.Valid {
			w := weight.Float64
			rec.Weight = &w
		}
		if len(symptoms) > 0 {
			if err := json.Unmarshal(symptoms, &rec.Symptoms); err != nil {
				return nil, fmt.Errorf("decoding symptoms of record %s: %w", rec.ID, err)
			}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func nullWeight(w *float64) sql.NullFloat64 {
	if w == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *w, Valid: true}
}

func encodeSymptoms(s []string) (string, error) {
	if s == nil {
		s = []string{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding symptoms: %w", err)
	}
	return string(b), nil
}

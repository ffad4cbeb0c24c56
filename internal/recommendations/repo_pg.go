package recommendations

import (
	"context"
	"database/sql"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Insert(ctx context.Context, record Record) error {
	const query = `
INSERT INTO recommendations (id, user_id, job_title, confidence, payload, created_at)
VALUES ($1, $2, $3, $4, $5, now())`
	payload := record.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	_, err := r.DB.ExecContext(ctx, query, record.ID, record.UserID, record.JobTitle, record.Confidence, []byte(payload))
	if err != nil {
		return fmt.Errorf("insert recommendation: %w", err)
	}
	return nil
}

func (r *PGRepo) Latest(ctx context.Context, userID string) (Record, error) {
	const query = `
SELECT id, user_id, job_title, confidence, payload, created_at
FROM recommendations
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID)
	var (
		record  Record
		payload []byte
	)
	err := row.Scan(&record.ID, &record.UserID, &record.JobTitle, &record.Confidence, &payload, &record.CreatedAt)
	if err == sql.ErrNoRows {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("select latest recommendation: %w", err)
	}
	record.Payload = payload
	return record, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
SELECT id, user_id, job_title, confidence, payload, created_at
FROM recommendations
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		var (
			record  Record
			payload []byte
		)
		if err := rows.Scan(&record.ID, &record.UserID, &record.JobTitle, &record.Confidence, &payload, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		record.Payload = payload
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommendations: %w", err)
	}
	return out, nil
}

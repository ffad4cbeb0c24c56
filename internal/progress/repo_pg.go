package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo persists progress snapshots as jsonb rows.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Get(ctx context.Context, userID string) (State, error) {
	const query = `
SELECT state
FROM user_progress
WHERE user_id = $1
LIMIT 1`
	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return State{}, ErrNotFound
		}
		return State{}, err
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return State{}, fmt.Errorf("decode progress state user=%s: %w", userID, err)
	}
	return state, nil
}

func (r *PGRepo) Save(ctx context.Context, userID string, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode progress state user=%s: %w", userID, err)
	}
	const query = `
INSERT INTO user_progress (user_id, state, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id) DO UPDATE SET
  state = EXCLUDED.state,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query, userID, payload)
	return err
}

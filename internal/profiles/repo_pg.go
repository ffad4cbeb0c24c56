package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	skills, err := json.Marshal(profile.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	const query = `
INSERT INTO profiles (user_id, skills, location, resume_file_name, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (user_id) DO UPDATE SET
  skills = EXCLUDED.skills,
  location = EXCLUDED.location,
  resume_file_name = EXCLUDED.resume_file_name,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query, profile.UserID, skills, profile.Location, profile.ResumeFileName)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (r *PGRepo) Get(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, skills, location, resume_file_name, updated_at
FROM profiles
WHERE user_id = $1`
	var (
		profile Profile
		skills  []byte
	)
	err := r.DB.QueryRowContext(ctx, query, userID).
		Scan(&profile.UserID, &skills, &profile.Location, &profile.ResumeFileName, &profile.UpdatedAt)
	if err == sql.ErrNoRows {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("select profile: %w", err)
	}
	if err := json.Unmarshal(skills, &profile.Skills); err != nil {
		return Profile{}, fmt.Errorf("decode skills: %w", err)
	}
	return profile, nil
}

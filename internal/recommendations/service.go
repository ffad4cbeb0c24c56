package recommendations

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/advisor"
	"career-compass/internal/composer"
	"career-compass/internal/profiles"
	"career-compass/internal/shared/metrics"
	"career-compass/internal/shared/telemetry"
)

const questTypeRecommendation = "recommendation"

// ProfileSource yields the stored profile used to query the advisor.
type ProfileSource interface {
	Get(ctx context.Context, userID string) (profiles.Profile, error)
}

// QuestAdvancer is implemented by the progress service.
type QuestAdvancer interface {
	AdvanceQuest(ctx context.Context, userID, questType string, amount int) error
}

// Result is what the handler serves. Model is only meaningful when Found is
// true; otherwise the client shows its empty state.
type Result struct {
	Found bool
	Model composer.RenderModel
}

type Service struct {
	Repo     Repo
	Profiles ProfileSource
	Advisor  advisor.Client
	Composer *composer.Composer
	Quests   QuestAdvancer
}

// ForUser fetches a fresh advisor verdict for the user's profile and composes
// it into a render model. Advisor failures degrade to the stored history:
// the latest persisted payload is recomposed so the client still gets a page.
func (s *Service) ForUser(ctx context.Context, userID string) (Result, error) {
	if s == nil || s.Repo == nil || s.Composer == nil {
		return Result{}, errors.New("recommendations service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Result{}, errors.New("user id is required")
	}

	raw, fresh := s.fetch(ctx, userID)
	model, ok := s.Composer.Compose(raw)
	if !ok {
		return Result{}, nil
	}

	// Only a fresh advisor verdict extends history and quest progress; a
	// replayed stored payload would duplicate both.
	if fresh {
		s.persist(ctx, userID, raw)
		s.advanceQuest(ctx, userID)
	}
	metrics.IncRecommendationServed()
	return Result{Found: true, Model: model}, nil
}

// History returns persisted recommendation snapshots, newest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]Record, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("recommendations service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id is required")
	}
	return s.Repo.ListByUser(ctx, userID, limit)
}

// fetch queries the advisor, falling back to the latest stored payload. A nil
// payload means no recommendation is available from either source; fresh
// reports whether the payload came from the advisor rather than history.
func (s *Service) fetch(ctx context.Context, userID string) (json.RawMessage, bool) {
	in := advisor.RecommendInput{}
	if s.Profiles != nil {
		profile, err := s.Profiles.Get(ctx, userID)
		if err == nil {
			in.Skills = profile.Skills
			in.Location = profile.Location
		}
	}

	if s.Advisor != nil {
		start := time.Now()
		raw, err := s.Advisor.Recommend(ctx, in)
		metrics.ObserveAdvisorDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
		if err == nil {
			return raw, true
		}
		if !errors.Is(err, advisor.ErrNotConfigured) {
			metrics.IncAdvisorFailed()
			telemetry.Error("recommendation.advisor_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}

	stored, err := s.Repo.Latest(ctx, userID)
	if err != nil {
		return nil, false
	}
	return stored.Payload, false
}

func (s *Service) persist(ctx context.Context, userID string, raw json.RawMessage) {
	rec := composer.Normalize(raw)
	record := Record{
		ID:         uuid.NewString(),
		UserID:     userID,
		JobTitle:   rec.JobTitle,
		Confidence: rec.ConfidenceScore,
		Payload:    raw,
	}
	if err := s.Repo.Insert(ctx, record); err != nil {
		telemetry.Error("recommendation.persist_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

func (s *Service) advanceQuest(ctx context.Context, userID string) {
	if s.Quests == nil {
		return
	}
	if err := s.Quests.AdvanceQuest(ctx, userID, questTypeRecommendation, 1); err != nil {
		telemetry.Error("recommendation.quest_advance_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

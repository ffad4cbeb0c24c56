package progress

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/shared/metrics"
)

// Service reads and advances per-user progress. Reads seed the fixed
// starting state on first access; advancement is the only mutation path and
// always replaces the stored snapshot wholesale.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Get returns the user's progress snapshot, seeding and persisting the
// starting state on first access.
func (s *Service) Get(ctx context.Context, userID string) (State, error) {
	if s == nil || s.Repo == nil {
		return State{}, errors.New("progress service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return State{}, errors.New("user id is required")
	}
	state, err := s.Repo.Get(ctx, userID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return State{}, err
	}
	seeded := SeedState()
	if err := s.Repo.Save(ctx, userID, seeded); err != nil {
		return State{}, err
	}
	return seeded, nil
}

// Advance increments the counters of every active quest with the given
// counter type. A quest reaching its total completes and awards its XP;
// XP overflow past the level threshold rolls into a level-up, with the
// threshold growing by a fixed step per level.
func (s *Service) Advance(ctx context.Context, userID, questType string, amount int) (State, error) {
	if amount <= 0 {
		return s.Get(ctx, userID)
	}
	state, err := s.Get(ctx, userID)
	if err != nil {
		return State{}, err
	}

	for i := range state.Quests {
		quest := &state.Quests[i]
		if quest.Progress.Type != questType || quest.Status == StatusCompleted {
			continue
		}
		quest.Progress.Current += amount
		if quest.Progress.Current >= quest.Progress.Total {
			quest.Progress.Current = quest.Progress.Total
			quest.Status = StatusCompleted
			state.CurrentXP += quest.XPReward
			metrics.IncQuestCompleted()
		} else {
			quest.Status = StatusInProgress
		}
	}

	for state.XPToNextLevel > 0 && state.CurrentXP >= state.XPToNextLevel {
		state.CurrentXP -= state.XPToNextLevel
		state.Level++
		state.XPToNextLevel += levelStep
	}

	if err := s.Repo.Save(ctx, userID, state); err != nil {
		return State{}, err
	}
	return state, nil
}

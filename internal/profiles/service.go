package profiles

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/extract"
	"career-compass/internal/shared/telemetry"
)

// QuestAdvancer is implemented by the progress service. It is narrow so the
// profiles package does not depend on gamification internals.
type QuestAdvancer interface {
	AdvanceQuest(ctx context.Context, userID, questType string, amount int) error
}

const (
	questTypeSkills = "skills"
	questTypeUpload = "upload"
)

type SaveInput struct {
	Skills   []string
	Location string

	// Optional resume upload.
	ResumeData     []byte
	ResumeMimeType string
	ResumeFileName string
}

type Service struct {
	Repo   Repo
	Quests QuestAdvancer
}

func NewService(repo Repo, quests QuestAdvancer) *Service {
	return &Service{Repo: repo, Quests: quests}
}

// Save upserts the user's profile. When a resume is attached its text is
// mined for known skills, which are merged into the declared list. Quest
// progress is advanced best-effort; a failing tracker never fails the save.
func (s *Service) Save(ctx context.Context, userID string, in SaveInput) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, errors.New("user id is required")
	}

	prev, err := s.Repo.Get(ctx, userID)
	if err != nil && err != ErrNotFound {
		return Profile{}, err
	}

	var extracted []string
	resumeFileName := prev.ResumeFileName
	uploaded := false
	if len(in.ResumeData) > 0 {
		text, err := extract.TextFromResume(ctx, in.ResumeData, in.ResumeMimeType, in.ResumeFileName)
		if err != nil {
			return Profile{}, err
		}
		extracted = ExtractSkills(text)
		resumeFileName = in.ResumeFileName
		uploaded = true
	}

	profile := Profile{
		UserID:         userID,
		Skills:         MergeSkills(in.Skills, extracted),
		Location:       strings.TrimSpace(in.Location),
		ResumeFileName: resumeFileName,
	}
	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return Profile{}, err
	}
	saved, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	s.advanceQuests(ctx, userID, prev.Skills, saved.Skills, uploaded)
	return saved, nil
}

func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, errors.New("user id is required")
	}
	return s.Repo.Get(ctx, userID)
}

func (s *Service) advanceQuests(ctx context.Context, userID string, before, after []string, uploaded bool) {
	if s.Quests == nil {
		return
	}
	added := newSkillCount(before, after)
	if added > 0 {
		if err := s.Quests.AdvanceQuest(ctx, userID, questTypeSkills, added); err != nil {
			telemetry.Error("profile.quest_advance_failed", map[string]any{
				"user_id": userID,
				"quest":   questTypeSkills,
				"error":   err.Error(),
			})
		}
	}
	if uploaded {
		if err := s.Quests.AdvanceQuest(ctx, userID, questTypeUpload, 1); err != nil {
			telemetry.Error("profile.quest_advance_failed", map[string]any{
				"user_id": userID,
				"quest":   questTypeUpload,
				"error":   err.Error(),
			})
		}
	}
}

func newSkillCount(before, after []string) int {
	known := make(map[string]struct{}, len(before))
	for _, skill := range before {
		known[strings.ToLower(strings.TrimSpace(skill))] = struct{}{}
	}
	count := 0
	for _, skill := range after {
		if _, ok := known[strings.ToLower(strings.TrimSpace(skill))]; !ok {
			count++
		}
	}
	return count
}

package progress

import "sort"

// statusRank defines the fixed display priority of quest statuses. Lower
// ranks render first.
func statusRank(s Status) int {
	switch s {
	case StatusInProgress:
		return 0
	case StatusNotStarted:
		return 1
	case StatusCompleted:
		return 2
	default:
		return 3
	}
}

// LevelPercent is the XP progress toward the next level, clamped to
// [0,100] for display. Counter overflow beyond the threshold is resolved as
// a level-up by the service, never rendered as >100%.
func LevelPercent(state State) float64 {
	if state.XPToNextLevel <= 0 {
		return 0
	}
	percent := float64(state.CurrentXP) / float64(state.XPToNextLevel) * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// QuestPercent is a quest's completion percentage.
func QuestPercent(q Quest) float64 {
	if q.Progress.Total <= 0 {
		return 0
	}
	return float64(q.Progress.Current) / float64(q.Progress.Total) * 100
}

// OrderQuests returns the quests sorted by status priority: in_progress,
// then not_started, then completed. The sort is stable, so quests with the
// same status keep their original relative order. The input is not mutated.
func OrderQuests(quests []Quest) []Quest {
	out := append([]Quest(nil), quests...)
	sort.SliceStable(out, func(i, j int) bool {
		return statusRank(out[i].Status) < statusRank(out[j].Status)
	})
	return out
}

// ComposeProgress derives the progress panel's display model from a state
// snapshot. Pure; invoked fresh on every render.
func ComposeProgress(state State) RenderModel {
	ordered := OrderQuests(state.Quests)
	cards := make([]QuestCard, 0, len(ordered))
	for _, quest := range ordered {
		cards = append(cards, QuestCard{Quest: quest, Percent: QuestPercent(quest)})
	}
	badges := state.Badges
	if badges == nil {
		badges = []Badge{}
	}
	return RenderModel{
		Level:         state.Level,
		CurrentXP:     state.CurrentXP,
		XPToNextLevel: state.XPToNextLevel,
		LevelPercent:  LevelPercent(state),
		Quests:        cards,
		Badges:        badges,
	}
}

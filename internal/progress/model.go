package progress

// Status is a quest's lifecycle state.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// QuestCounter tracks completion of one quest.
type QuestCounter struct {
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Type    string `json:"type"`
}

// Quest is a single gamification quest.
type Quest struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	XPReward    int          `json:"xpReward"`
	Status      Status       `json:"status"`
	Progress    QuestCounter `json:"progress"`
}

// Badge is an earned achievement.
type Badge struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// State is a user's full gamification snapshot. Values are treated as
// immutable per render; mutation happens only through the service, which
// replaces the stored snapshot wholesale.
type State struct {
	Level         int     `json:"level"`
	CurrentXP     int     `json:"currentXp"`
	XPToNextLevel int     `json:"xpToNextLevel"`
	Quests        []Quest `json:"quests"`
	Badges        []Badge `json:"badges"`
}

// RenderModel is the progress panel's display model.
type RenderModel struct {
	Level         int         `json:"level"`
	CurrentXP     int         `json:"currentXp"`
	XPToNextLevel int         `json:"xpToNextLevel"`
	LevelPercent  float64     `json:"levelPercent"`
	Quests        []QuestCard `json:"quests"`
	Badges        []Badge     `json:"badges"`
}

// QuestCard is a quest enriched with its completion percentage.
type QuestCard struct {
	Quest
	Percent float64 `json:"percent"`
}

package progress

// Quest counter types, matched by the advancement hooks.
const (
	QuestTypeSkills         = "skills"
	QuestTypeUpload         = "upload"
	QuestTypeRecommendation = "recommendation"
)

// levelStep is how much the next-level threshold grows on each level-up.
const levelStep = 250

// SeedState is the fixed starting snapshot assigned to a user the first
// time their progress is read.
func SeedState() State {
	return State{
		Level:         3,
		CurrentXP:     350,
		XPToNextLevel: 500,
		Badges: []Badge{
			{ID: 1, Name: "Novice Explorer", Description: "Started your career journey", ImageURL: "🎯"},
			{ID: 2, Name: "Skill Novice", Description: "Added a skill to your profile", ImageURL: "⭐"},
			{ID: 3, Name: "Resume Master", Description: "Uploaded and analyzed your resume", ImageURL: "📄"},
		},
		Quests: []Quest{
			{
				ID:          1,
				Title:       "Skill Master",
				Description: "Add skills to your profile",
				XPReward:    200,
				Status:      StatusInProgress,
				Progress:    QuestCounter{Current: 3, Total: 5, Type: QuestTypeSkills},
			},
			{
				ID:          2,
				Title:       "Resume Analysis",
				Description: "Upload and analyze your resume to get personalized recommendations",
				XPReward:    150,
				Status:      StatusNotStarted,
				Progress:    QuestCounter{Current: 0, Total: 1, Type: QuestTypeUpload},
			},
			{
				ID:          3,
				Title:       "Career Path Explorer",
				Description: "Complete a recommended course to gain a new skill",
				XPReward:    250,
				Status:      StatusNotStarted,
				Progress:    QuestCounter{Current: 0, Total: 1, Type: QuestTypeRecommendation},
			},
		},
	}
}

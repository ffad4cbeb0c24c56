package composer

import "strings"

// DifficultyTier is the display tier derived from a course's free-text
// difficulty label.
type DifficultyTier string

const (
	DifficultyBeginner     DifficultyTier = "beginner"
	DifficultyIntermediate DifficultyTier = "intermediate"
	DifficultyAdvanced     DifficultyTier = "advanced"
	DifficultyUnknown      DifficultyTier = "unknown"
)

// FormatToken is the display token derived from a resource's free-text
// format label.
type FormatToken string

const (
	FormatVideo       FormatToken = "video"
	FormatText        FormatToken = "text"
	FormatInteractive FormatToken = "interactive"
	FormatUnknown     FormatToken = "unknown"
)

// ClassifyDifficulty maps a free-text difficulty label to its tier via
// case-insensitive exact match against the three known labels.
func ClassifyDifficulty(value string) DifficultyTier {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "beginner":
		return DifficultyBeginner
	case "intermediate":
		return DifficultyIntermediate
	case "advanced":
		return DifficultyAdvanced
	default:
		return DifficultyUnknown
	}
}

// ClassifyFormat maps a free-text format label to its token with the same
// policy as ClassifyDifficulty.
func ClassifyFormat(value string) FormatToken {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "video":
		return FormatVideo
	case "text":
		return FormatText
	case "interactive":
		return FormatInteractive
	default:
		return FormatUnknown
	}
}

// BadgeClass returns the CSS class rendered for the tier badge.
func (t DifficultyTier) BadgeClass() string {
	return "tier-" + string(t)
}

// Icon returns the glyph rendered next to a resource of this format.
func (f FormatToken) Icon() string {
	switch f {
	case FormatVideo:
		return "🎬"
	case FormatText:
		return "📖"
	case FormatInteractive:
		return "🕹️"
	default:
		return "🔗"
	}
}

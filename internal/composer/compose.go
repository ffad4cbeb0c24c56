package composer

import (
	"bytes"
	"encoding/json"
	"math"

	"career-compass/internal/knowledge"
	"career-compass/internal/shared/metrics"
)

// maxJobCards is the fixed-size prefix of job listings shown per render.
const maxJobCards = 2

var jsonNull = []byte("null")

// Composer builds render models from raw advisor payloads. It holds only the
// immutable catalog; Compose is pure and re-invocable on every render.
type Composer struct {
	kb *knowledge.Store
}

// New constructs a Composer over the given catalog store.
func New(kb *knowledge.Store) *Composer {
	return &Composer{kb: kb}
}

// Compose is the single entry point of the composition core. It returns the
// complete render model for a raw advisor payload, or ok=false when no
// recommendation is present (nil or JSON null payload). The caller renders
// a placeholder state, not an error.
func (c *Composer) Compose(raw json.RawMessage) (RenderModel, bool) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return RenderModel{}, false
	}

	rec := Normalize(raw)
	resolved := Resolve(c.kb, rec)
	if resolved.UsedFallback {
		metrics.IncCompositionFallback()
	}

	courseCards := make([]CourseCard, 0, len(resolved.Courses))
	for _, course := range resolved.Courses {
		courseCards = append(courseCards, CourseCard{
			Course:         course,
			DifficultyTier: ClassifyDifficulty(course.Difficulty),
		})
	}

	resourceCards := make([]ResourceCard, 0, len(resolved.Resources))
	for _, resource := range resolved.Resources {
		resourceCards = append(resourceCards, ResourceCard{
			Resource:    resource,
			FormatToken: ClassifyFormat(resource.Format),
		})
	}

	jobCards := resolved.Jobs
	if len(jobCards) > maxJobCards {
		jobCards = jobCards[:maxJobCards]
	}

	return RenderModel{
		Header: Header{
			Title:        rec.JobTitle,
			MatchPercent: MatchPercent(rec.ConfidenceScore),
		},
		SkillCards: rec.RequiredSkills,
		Timeline: Timeline{
			Immediate: rec.LearningRoadmap.Immediate,
			ShortTerm: rec.LearningRoadmap.ShortTerm,
			LongTerm:  rec.LearningRoadmap.LongTerm,
		},
		CourseCards:   courseCards,
		ResourceCards: resourceCards,
		JobCards:      jobCards,
	}, true
}

// MatchPercent converts a confidence score in [0,1] to a rounded percentage.
func MatchPercent(score float64) int {
	return int(math.Round(score * 100))
}

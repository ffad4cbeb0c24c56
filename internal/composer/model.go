package composer

import "career-compass/internal/knowledge"

// Recommendation is the fully-defaulted advisor verdict. After Normalize no
// field is ever nil: skills and every roadmap bucket are at least empty
// slices, the title is at least an empty string.
type Recommendation struct {
	JobTitle        string   `json:"job_title"`
	ConfidenceScore float64  `json:"confidence_score"`
	RequiredSkills  []string `json:"required_skills"`
	LearningRoadmap Roadmap  `json:"learning_roadmap"`
}

// Roadmap is the fixed three-bucket learning timeline.
type Roadmap struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// CompositionResult carries the catalog material resolved for one
// recommendation. Every field is a defined, possibly empty slice.
type CompositionResult struct {
	Courses   []knowledge.Course
	Resources []knowledge.Resource
	Jobs      []knowledge.JobListing

	// UsedFallback reports whether any sub-resource fell back to the
	// role-agnostic catalog entries.
	UsedFallback bool
}

// RenderModel is the complete display model served to the client.
type RenderModel struct {
	Header        Header                 `json:"header"`
	SkillCards    []string               `json:"skillCards"`
	Timeline      Timeline               `json:"timeline"`
	CourseCards   []CourseCard           `json:"courseCards"`
	ResourceCards []ResourceCard         `json:"resourceCards"`
	JobCards      []knowledge.JobListing `json:"jobCards"`
}

// Header summarizes the recommended role.
type Header struct {
	Title        string `json:"title"`
	MatchPercent int    `json:"matchPercent"`
}

// Timeline mirrors the roadmap buckets in display form.
type Timeline struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
}

// CourseCard is a catalog course enriched with its display tier.
type CourseCard struct {
	knowledge.Course
	DifficultyTier DifficultyTier `json:"difficultyTier"`
}

// ResourceCard is a catalog resource enriched with its display token.
type ResourceCard struct {
	knowledge.Resource
	FormatToken FormatToken `json:"formatToken"`
}

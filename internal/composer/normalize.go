package composer

import (
	"encoding/json"
	"strings"
)

// Normalize decodes a raw advisor payload into a total Recommendation value.
// It never fails: a payload that is not a JSON object, or any absent, null,
// or wrong-typed field, collapses to the documented defaults (empty string,
// zero score, empty slices). Downstream stages never branch on "partially
// missing"; only the caller distinguishes an entirely absent payload.
//
// Legacy payload variants carried embedded "learning_resources" and
// "relevant_jobs" fields; those are ignored here, client-side resolution
// through the catalog is canonical.
func Normalize(raw json.RawMessage) Recommendation {
	rec := Recommendation{
		RequiredSkills: []string{},
		LearningRoadmap: Roadmap{
			Immediate: []string{},
			ShortTerm: []string{},
			LongTerm:  []string{},
		},
	}

	var top map[string]any
	if err := json.Unmarshal(raw, &top); err != nil || top == nil {
		return rec
	}

	if title, ok := top["job_title"].(string); ok {
		rec.JobTitle = strings.TrimSpace(title)
	}
	if score, ok := top["confidence_score"].(float64); ok {
		rec.ConfidenceScore = clampUnit(score)
	}
	rec.RequiredSkills = stringSlice(top["required_skills"])

	if roadmap, ok := top["learning_roadmap"].(map[string]any); ok {
		rec.LearningRoadmap.Immediate = stringSlice(roadmap["immediate"])
		rec.LearningRoadmap.ShortTerm = stringSlice(roadmap["short_term"])
		rec.LearningRoadmap.LongTerm = stringSlice(roadmap["long_term"])
	}

	return rec
}

// stringSlice extracts the string elements of a decoded JSON array,
// skipping anything else. Always returns a non-nil slice.
func stringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

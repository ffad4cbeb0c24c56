package advisor

import (
	"context"
	"encoding/json"
	"strings"
)

// StubClient returns a canned recommendation for local development. The
// suggested role is picked from the profile's skills with a crude keyword
// match, defaulting to Software Engineer.
type StubClient struct{}

func (StubClient) Recommend(ctx context.Context, in RecommendInput) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload := map[string]any{
		"job_title":        pickRole(in.Skills),
		"confidence_score": 0.78,
		"required_skills":  requiredFor(in.Skills),
		"learning_roadmap": map[string]any{
			"immediate":  []string{"Review fundamentals for your target role"},
			"short_term": []string{"Build two portfolio projects", "Contribute to an open source repo"},
			"long_term":  []string{"Prepare for system design interviews"},
		},
	}
	return json.Marshal(payload)
}

func pickRole(skills []string) string {
	joined := strings.ToLower(strings.Join(skills, " "))
	switch {
	case strings.Contains(joined, "machine learning") || strings.Contains(joined, "tensorflow") || strings.Contains(joined, "pytorch"):
		return "Machine Learning Engineer"
	case strings.Contains(joined, "pandas") || strings.Contains(joined, "tableau") || strings.Contains(joined, "excel"):
		return "Data Analyst"
	case strings.Contains(joined, "docker") || strings.Contains(joined, "kubernetes") || strings.Contains(joined, "terraform"):
		return "DevOps Engineer"
	case strings.Contains(joined, "react") || strings.Contains(joined, "css") || strings.Contains(joined, "html"):
		return "Web Developer"
	case strings.Contains(joined, "python") && strings.Contains(joined, "sql"):
		return "Data Scientist"
	default:
		return "Software Engineer"
	}
}

func requiredFor(skills []string) []string {
	out := append([]string(nil), skills...)
	if len(out) == 0 {
		out = []string{"Programming Fundamentals"}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

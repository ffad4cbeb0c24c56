package profiles

import "strings"

// skillLexicon maps lowercase tokens found in resume text to canonical skill
// names. Multi-word entries are matched as substrings of the lowered text.
var skillLexicon = []struct {
	token string
	skill string
}{
	{"python", "Python"},
	{"javascript", "JavaScript"},
	{"typescript", "TypeScript"},
	{"golang", "Go"},
	{"java ", "Java"},
	{"c++", "C++"},
	{"sql", "SQL"},
	{"postgresql", "PostgreSQL"},
	{"mysql", "MySQL"},
	{"mongodb", "MongoDB"},
	{"react", "React"},
	{"angular", "Angular"},
	{"vue", "Vue"},
	{"node.js", "Node.js"},
	{"nodejs", "Node.js"},
	{"django", "Django"},
	{"flask", "Flask"},
	{"fastapi", "FastAPI"},
	{"docker", "Docker"},
	{"kubernetes", "Kubernetes"},
	{"terraform", "Terraform"},
	{"aws", "AWS"},
	{"azure", "Azure"},
	{"gcp", "GCP"},
	{"linux", "Linux"},
	{"git", "Git"},
	{"ci/cd", "CI/CD"},
	{"machine learning", "Machine Learning"},
	{"deep learning", "Deep Learning"},
	{"data analysis", "Data Analysis"},
	{"pandas", "Pandas"},
	{"numpy", "NumPy"},
	{"tensorflow", "TensorFlow"},
	{"pytorch", "PyTorch"},
	{"tableau", "Tableau"},
	{"excel", "Excel"},
	{"html", "HTML"},
	{"css", "CSS"},
	{"rest api", "REST APIs"},
	{"graphql", "GraphQL"},
}

// ExtractSkills scans resume text for known skills and returns canonical
// names in lexicon order. Matching is case insensitive.
func ExtractSkills(text string) []string {
	lowered := strings.ToLower(text)
	// Pad so word-boundary-ish tokens like "java " match at end of text.
	lowered = " " + lowered + " "
	var out []string
	seen := make(map[string]struct{})
	for _, entry := range skillLexicon {
		if !strings.Contains(lowered, entry.token) {
			continue
		}
		if _, dup := seen[entry.skill]; dup {
			continue
		}
		seen[entry.skill] = struct{}{}
		out = append(out, entry.skill)
	}
	return out
}

// MergeSkills combines declared and extracted skills, deduplicating case
// insensitively while preserving first-seen order and casing.
func MergeSkills(declared, extracted []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, skill := range append(append([]string(nil), declared...), extracted...) {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

package composer

import (
	"encoding/json"
	"testing"
)

func TestNormalizeFullPayload(t *testing.T) {
	raw := json.RawMessage(`{
		"job_title": "Data Scientist",
		"confidence_score": 0.82,
		"required_skills": ["SQL", "Python"],
		"learning_roadmap": {
			"immediate": ["SQL"],
			"short_term": ["Python"],
			"long_term": []
		}
	}`)

	rec := Normalize(raw)
	if rec.JobTitle != "Data Scientist" {
		t.Fatalf("expected job title, got %q", rec.JobTitle)
	}
	if rec.ConfidenceScore != 0.82 {
		t.Fatalf("expected confidence 0.82, got %v", rec.ConfidenceScore)
	}
	if len(rec.RequiredSkills) != 2 || rec.RequiredSkills[0] != "SQL" || rec.RequiredSkills[1] != "Python" {
		t.Fatalf("expected skills in payload order, got %v", rec.RequiredSkills)
	}
	if len(rec.LearningRoadmap.Immediate) != 1 || rec.LearningRoadmap.Immediate[0] != "SQL" {
		t.Fatalf("expected immediate bucket, got %v", rec.LearningRoadmap.Immediate)
	}
	if rec.LearningRoadmap.LongTerm == nil || len(rec.LearningRoadmap.LongTerm) != 0 {
		t.Fatalf("expected empty long_term bucket, got %v", rec.LearningRoadmap.LongTerm)
	}
}

func TestNormalizeIsTotalOverMissingFields(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "empty_object", raw: `{}`},
		{name: "null", raw: `null`},
		{name: "not_an_object", raw: `[1,2,3]`},
		{name: "invalid_json", raw: `{not json`},
		{name: "null_fields", raw: `{"job_title":null,"confidence_score":null,"required_skills":null,"learning_roadmap":null}`},
		{name: "wrong_types", raw: `{"job_title":7,"confidence_score":"high","required_skills":"SQL","learning_roadmap":[1]}`},
		{name: "partial_roadmap", raw: `{"learning_roadmap":{"immediate":["Go"]}}`},
		{name: "mixed_skill_types", raw: `{"required_skills":["SQL",4,null,"Python"]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Normalize(json.RawMessage(tc.raw))
			if rec.RequiredSkills == nil {
				t.Fatalf("required skills must not be nil")
			}
			if rec.LearningRoadmap.Immediate == nil || rec.LearningRoadmap.ShortTerm == nil || rec.LearningRoadmap.LongTerm == nil {
				t.Fatalf("every roadmap bucket must be a defined slice: %+v", rec.LearningRoadmap)
			}
			if rec.ConfidenceScore < 0 || rec.ConfidenceScore > 1 {
				t.Fatalf("confidence must stay in [0,1], got %v", rec.ConfidenceScore)
			}
		})
	}
}

func TestNormalizeSkipsNonStringSkills(t *testing.T) {
	rec := Normalize(json.RawMessage(`{"required_skills":["SQL",4,null,"Python"]}`))
	if len(rec.RequiredSkills) != 2 || rec.RequiredSkills[0] != "SQL" || rec.RequiredSkills[1] != "Python" {
		t.Fatalf("expected non-string entries skipped, got %v", rec.RequiredSkills)
	}
}

func TestNormalizeClampsConfidence(t *testing.T) {
	if rec := Normalize(json.RawMessage(`{"confidence_score":1.7}`)); rec.ConfidenceScore != 1 {
		t.Fatalf("expected clamp to 1, got %v", rec.ConfidenceScore)
	}
	if rec := Normalize(json.RawMessage(`{"confidence_score":-0.2}`)); rec.ConfidenceScore != 0 {
		t.Fatalf("expected clamp to 0, got %v", rec.ConfidenceScore)
	}
}

func TestNormalizeIgnoresLegacyEmbeddedResources(t *testing.T) {
	raw := json.RawMessage(`{
		"job_title": "Data Scientist",
		"learning_resources": {"courses": [{"title": "stale"}]},
		"relevant_jobs": [{"company": "stale"}]
	}`)
	rec := Normalize(raw)
	if rec.JobTitle != "Data Scientist" {
		t.Fatalf("expected job title, got %q", rec.JobTitle)
	}
	// Legacy fields must not leak anywhere into the normalized value.
	if len(rec.RequiredSkills) != 0 {
		t.Fatalf("expected no skills, got %v", rec.RequiredSkills)
	}
}

package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPClientPostsProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/recommendations" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in RecommendInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(in.Skills) != 2 || in.Location != "Berlin" {
			t.Errorf("unexpected input: %+v", in)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"job_title":"Data Scientist","confidence_score":0.9}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second, "", "", "")
	raw, err := client.Recommend(context.Background(), RecommendInput{
		Skills:   []string{"Python", "SQL"},
		Location: "Berlin",
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload["job_title"] != "Data Scientist" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestHTTPClientNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second, "", "", "")
	if _, err := client.Recommend(context.Background(), RecommendInput{}); err == nil {
		t.Fatalf("expected error for 502 response")
	}
}

func TestHTTPClientRequiresBaseURL(t *testing.T) {
	client := NewHTTPClient("", 0, "", "", "")
	if _, err := client.Recommend(context.Background(), RecommendInput{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestPlaceholderClient(t *testing.T) {
	if _, err := (PlaceholderClient{}).Recommend(context.Background(), RecommendInput{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestStubClientPicksRoleFromSkills(t *testing.T) {
	cases := []struct {
		name     string
		skills   []string
		expected string
	}{
		{name: "ml", skills: []string{"PyTorch"}, expected: "Machine Learning Engineer"},
		{name: "devops", skills: []string{"Docker", "Kubernetes"}, expected: "DevOps Engineer"},
		{name: "web", skills: []string{"React"}, expected: "Web Developer"},
		{name: "data_science", skills: []string{"Python", "SQL"}, expected: "Data Scientist"},
		{name: "default", skills: nil, expected: "Software Engineer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := (StubClient{}).Recommend(context.Background(), RecommendInput{Skills: tc.skills})
			if err != nil {
				t.Fatalf("Recommend: %v", err)
			}
			var payload struct {
				JobTitle string `json:"job_title"`
			}
			if err := json.Unmarshal(raw, &payload); err != nil {
				t.Fatalf("unmarshal payload: %v", err)
			}
			if payload.JobTitle != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, payload.JobTitle)
			}
		})
	}
}

package knowledge

import (
	"testing"
)

func testCatalog() Catalog {
	return Catalog{
		Version: "test",
		Roles: []RoleEntry{
			{
				Title: "Data Scientist",
				Courses: []Course{
					{Title: "Course A", Skill: "Python", Difficulty: "Beginner"},
					{Title: "Course B", Skill: "SQL", Difficulty: "Intermediate"},
				},
				Resources: []Resource{
					{Title: "Resource A", Format: "Video"},
				},
				Jobs: []JobListing{
					{Company: "Acme", Title: "Data Scientist"},
				},
			},
		},
		Fallback: FallbackEntry{
			Courses:   []Course{{Title: "Generic Course", Skill: "Git"}},
			Resources: []Resource{{Title: "Generic Resource", Format: "Text"}},
		},
	}
}

func TestLookupPreservesInsertionOrder(t *testing.T) {
	store, err := New(testCatalog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	courses, ok := store.LookupCourses("Data Scientist")
	if !ok {
		t.Fatalf("expected courses for Data Scientist")
	}
	if len(courses) != 2 || courses[0].Title != "Course A" || courses[1].Title != "Course B" {
		t.Fatalf("expected insertion order preserved, got %+v", courses)
	}
}

func TestLookupNormalizesTitle(t *testing.T) {
	store, err := New(testCatalog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cases := []string{
		"data scientist",
		"DATA SCIENTIST",
		"  Data Scientist  ",
		"Data  Scientist",
	}
	for _, title := range cases {
		if _, ok := store.LookupCourses(title); !ok {
			t.Fatalf("expected lookup hit for %q", title)
		}
		if _, ok := store.LookupJobs(title); !ok {
			t.Fatalf("expected job lookup hit for %q", title)
		}
	}
}

func TestLookupMissReturnsNotOK(t *testing.T) {
	store, err := New(testCatalog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := store.LookupCourses("Underwater Basket Weaver"); ok {
		t.Fatalf("expected miss for unknown role")
	}
	if _, ok := store.LookupResources("Underwater Basket Weaver"); ok {
		t.Fatalf("expected miss for unknown role")
	}
	if _, ok := store.LookupJobs("Underwater Basket Weaver"); ok {
		t.Fatalf("expected miss for unknown role")
	}
}

func TestNewRejectsDuplicateRole(t *testing.T) {
	catalog := testCatalog()
	catalog.Roles = append(catalog.Roles, RoleEntry{Title: "data scientist"})
	if _, err := New(catalog); err == nil {
		t.Fatalf("expected error for duplicate role title")
	}
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	store, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if store.Version() == "" {
		t.Fatalf("expected catalog version")
	}
	if len(store.Titles()) == 0 {
		t.Fatalf("expected at least one role in embedded catalog")
	}
	if len(store.FallbackCourses()) == 0 || len(store.FallbackResources()) == 0 {
		t.Fatalf("expected non-empty fallback sets")
	}
	courses, ok := store.LookupCourses("Data Scientist")
	if !ok || len(courses) == 0 {
		t.Fatalf("expected Data Scientist courses in embedded catalog")
	}
	for _, title := range store.Titles() {
		if title != NormalizeTitle(title) {
			t.Fatalf("expected normalized key, got %q", title)
		}
	}
}

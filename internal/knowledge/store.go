package knowledge

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed catalog.json
var catalogFS embed.FS

// Store is an immutable lookup table over the role catalog. It is built once
// and is safe for concurrent reads; there is no mutation API.
type Store struct {
	version   string
	courses   map[string][]Course
	resources map[string][]Resource
	jobs      map[string][]JobListing

	fallbackCourses   []Course
	fallbackResources []Resource
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the process-wide store built from the embedded catalog
// asset. The asset is parsed at most once.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		raw, err := catalogFS.ReadFile("catalog.json")
		if err != nil {
			defaultErr = fmt.Errorf("read embedded catalog: %w", err)
			return
		}
		var catalog Catalog
		if err := json.Unmarshal(raw, &catalog); err != nil {
			defaultErr = fmt.Errorf("parse embedded catalog: %w", err)
			return
		}
		defaultStore, defaultErr = New(catalog)
	})
	return defaultStore, defaultErr
}

// New builds a Store from an in-memory catalog. Tests use this to substitute
// small tables for the embedded asset.
func New(catalog Catalog) (*Store, error) {
	store := &Store{
		version:           catalog.Version,
		courses:           make(map[string][]Course, len(catalog.Roles)),
		resources:         make(map[string][]Resource, len(catalog.Roles)),
		jobs:              make(map[string][]JobListing, len(catalog.Roles)),
		fallbackCourses:   append([]Course(nil), catalog.Fallback.Courses...),
		fallbackResources: append([]Resource(nil), catalog.Fallback.Resources...),
	}
	for _, role := range catalog.Roles {
		key := NormalizeTitle(role.Title)
		if key == "" {
			return nil, fmt.Errorf("catalog role with empty title")
		}
		if _, ok := store.courses[key]; ok {
			return nil, fmt.Errorf("catalog role %q declared twice", role.Title)
		}
		store.courses[key] = append([]Course(nil), role.Courses...)
		store.resources[key] = append([]Resource(nil), role.Resources...)
		store.jobs[key] = append([]JobListing(nil), role.Jobs...)
	}
	return store, nil
}

// NormalizeTitle maps a role title to its lookup key. Lookups are
// case-insensitive and ignore surrounding/repeated whitespace, so the
// fallback chain only triggers on genuinely unknown roles rather than on
// casing drift in the advisor payload.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}

// Version reports the catalog asset version.
func (s *Store) Version() string { return s.version }

// LookupCourses returns the course set registered for the role title in
// insertion order. ok is false when the role has no entry.
func (s *Store) LookupCourses(title string) ([]Course, bool) {
	courses, ok := s.courses[NormalizeTitle(title)]
	return courses, ok
}

// LookupResources returns the resource set registered for the role title.
func (s *Store) LookupResources(title string) ([]Resource, bool) {
	resources, ok := s.resources[NormalizeTitle(title)]
	return resources, ok
}

// LookupJobs returns the job listings registered for the role title.
func (s *Store) LookupJobs(title string) ([]JobListing, bool) {
	jobs, ok := s.jobs[NormalizeTitle(title)]
	return jobs, ok
}

// FallbackCourses returns the role-agnostic course substitutes.
func (s *Store) FallbackCourses() []Course { return s.fallbackCourses }

// FallbackResources returns the role-agnostic resource substitutes.
func (s *Store) FallbackResources() []Resource { return s.fallbackResources }

// Titles lists the known role titles in normalized key form.
func (s *Store) Titles() []string {
	out := make([]string, 0, len(s.courses))
	for key := range s.courses {
		out = append(out, key)
	}
	return out
}

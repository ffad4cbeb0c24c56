package composer

import (
	"career-compass/internal/knowledge"
)

// Resolve looks up the recommendation's role in the catalog and applies the
// fallback chain, evaluated independently per sub-resource:
//
//  1. exact (normalized) title lookup;
//  2. courses and resources substitute the role-agnostic fallback sets on a
//     miss;
//  3. job listings have no fallback, a miss yields an empty list.
//
// No ranking is applied; catalog insertion order is the display order. The
// function cannot fail: every branch yields defined, possibly empty slices.
func Resolve(kb *knowledge.Store, rec Recommendation) CompositionResult {
	result := CompositionResult{
		Courses:   []knowledge.Course{},
		Resources: []knowledge.Resource{},
		Jobs:      []knowledge.JobListing{},
	}

	if courses, ok := kb.LookupCourses(rec.JobTitle); ok {
		result.Courses = append(result.Courses, courses...)
	} else {
		result.Courses = append(result.Courses, kb.FallbackCourses()...)
		result.UsedFallback = true
	}

	if resources, ok := kb.LookupResources(rec.JobTitle); ok {
		result.Resources = append(result.Resources, resources...)
	} else {
		result.Resources = append(result.Resources, kb.FallbackResources()...)
		result.UsedFallback = true
	}

	if jobs, ok := kb.LookupJobs(rec.JobTitle); ok {
		result.Jobs = append(result.Jobs, jobs...)
	}

	return result
}

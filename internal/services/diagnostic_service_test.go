package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/models"
)

func testPatterns() []models.DiagnosticPattern {
	return []models.DiagnosticPattern{
		{
			ID:                 1,
			Keywords:           []string{"cors", "403"},
			PossibleCauses:     []string{"Missing CORS headers"},
			DebugSteps:         []string{"Inspect the network tab"},
			Complexity:         models.ComplexityLow,
			RecommendedService: "API Integration",
		},
		{
			ID:                 2,
			Keywords:           []string{"timeout"},
			PossibleCauses:     []string{"Slow query"},
			DebugSteps:         []string{"Check query plans"},
			Complexity:         models.ComplexityMedium,
			RecommendedService: "Performance Optimization",
		},
	}
}

func TestMatchKeywordCounting(t *testing.T) {
	patterns := testPatterns()

	tests := []struct {
		name            string
		description     string
		expectMatch     bool
		expectedService string
	}{
		{
			name:            "two keywords beat one",
			description:     "Getting a CORS 403 error on my API calls",
			expectMatch:     true,
			expectedService: "API Integration",
		},
		{
			name:            "single keyword match",
			description:     "My page keeps hitting a timeout",
			expectMatch:     true,
			expectedService: "Performance Optimization",
		},
		{
			name:            "no keyword match falls back",
			description:     "colors look wrong on mobile",
			expectMatch:     false,
			expectedService: "Bug Fixing & Error Resolution",
		},
	}

	for _, test := range tests {
		result, _ := Match(patterns, DiagnosticSubmission{Description: test.description})
		if result.IsMatch != test.expectMatch {
			t.Errorf("%s: expected isMatch=%v, got %v", test.name, test.expectMatch, result.IsMatch)
		}
		if result.RecommendedService != test.expectedService {
			t.Errorf("%s: expected service '%s', got '%s'", test.name, test.expectedService, result.RecommendedService)
		}
	}
}

func TestMatchSearchesAllFields(t *testing.T) {
	patterns := testPatterns()

	// Keyword appears only in the error message, not the description
	result, _ := Match(patterns, DiagnosticSubmission{
		Description:  "my site is broken",
		ErrorMessage: "upstream request timeout",
	})
	if !result.IsMatch {
		t.Fatal("Expected a match via the error message field")
	}
	if result.RecommendedService != "Performance Optimization" {
		t.Errorf("Expected 'Performance Optimization', got '%s'", result.RecommendedService)
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	patterns := testPatterns()
	input := "Getting a CORS 403 error"

	variants := []string{
		input,
		strings.ToUpper(input),
		strings.ToLower(input),
	}

	base, _ := Match(patterns, DiagnosticSubmission{Description: variants[0]})
	for _, variant := range variants[1:] {
		result, _ := Match(patterns, DiagnosticSubmission{Description: variant})
		if !reflect.DeepEqual(result, base) {
			t.Errorf("Expected identical result for casing variant %q", variant)
		}
	}
}

func TestMatchDeterministic(t *testing.T) {
	patterns := testPatterns()
	submission := DiagnosticSubmission{Description: "cors timeout 403"}

	first, _ := Match(patterns, submission)
	second, _ := Match(patterns, submission)
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical results for repeated calls")
	}
}

func TestMatchTieBreakFirstWins(t *testing.T) {
	patterns := []models.DiagnosticPattern{
		{
			ID:                 10,
			Keywords:           []string{"bug"},
			Complexity:         models.ComplexityLow,
			RecommendedService: "First Service",
		},
		{
			ID:                 20,
			Keywords:           []string{"bug"},
			Complexity:         models.ComplexityHigh,
			RecommendedService: "Second Service",
		},
	}

	result, matched := Match(patterns, DiagnosticSubmission{Description: "there is a bug"})
	if !result.IsMatch {
		t.Fatal("Expected a match")
	}
	if result.RecommendedService != "First Service" {
		t.Errorf("Expected earlier pattern to win the tie, got '%s'", result.RecommendedService)
	}
	if matched == nil || matched.ID != 10 {
		t.Error("Expected matched pattern to be the first stored one")
	}
}

func TestMatchEmptyPatternSet(t *testing.T) {
	result, matched := Match(nil, DiagnosticSubmission{
		Description: "anything at all",
		Environment: models.EnvironmentProduction,
	})

	if result.IsMatch {
		t.Error("Expected no match for empty pattern set")
	}
	if matched != nil {
		t.Error("Expected no matched pattern for empty pattern set")
	}
	if result.Complexity != models.ComplexityMedium {
		t.Errorf("Expected fallback complexity MEDIUM, got %s", result.Complexity)
	}
	if result.RecommendedService != "Bug Fixing & Error Resolution" {
		t.Errorf("Expected fallback service, got '%s'", result.RecommendedService)
	}
	if len(result.PossibleCauses) == 0 || len(result.DebugSteps) == 0 {
		t.Error("Expected fallback causes and debug steps to be populated")
	}
}

func TestMatchEmptyKeywordsNeverWins(t *testing.T) {
	patterns := []models.DiagnosticPattern{
		{
			ID:                 1,
			Keywords:           nil,
			RecommendedService: "Should Never Match",
		},
		{
			ID:                 2,
			Keywords:           []string{""},
			RecommendedService: "Also Never",
		},
	}

	result, _ := Match(patterns, DiagnosticSubmission{Description: "any text"})
	if result.IsMatch {
		t.Error("Expected patterns with no usable keywords to never match")
	}
}

func TestMatchCarriesEnvironmentThrough(t *testing.T) {
	patterns := testPatterns()

	tests := []models.DiagnosticEnvironment{
		models.EnvironmentLocal,
		models.EnvironmentProduction,
		models.EnvironmentBoth,
	}

	for _, env := range tests {
		matchResult, _ := Match(patterns, DiagnosticSubmission{
			Description: "cors problem",
			Environment: env,
		})
		if matchResult.Environment != env {
			t.Errorf("Expected environment %s carried through on match, got %s", env, matchResult.Environment)
		}

		fallbackResult, _ := Match(patterns, DiagnosticSubmission{
			Description: "nothing relevant",
			Environment: env,
		})
		if fallbackResult.Environment != env {
			t.Errorf("Expected environment %s carried through on fallback, got %s", env, fallbackResult.Environment)
		}
	}
}

func TestMatchDoesNotMutatePatterns(t *testing.T) {
	patterns := testPatterns()
	before := make([]models.DiagnosticPattern, len(patterns))
	copy(before, patterns)

	Match(patterns, DiagnosticSubmission{Description: "cors 403 timeout"})

	if !reflect.DeepEqual(patterns, before) {
		t.Error("Expected pattern set to be unchanged after matching")
	}
}

func TestSubstringScorer(t *testing.T) {
	scorer := SubstringScorer{}

	tests := []struct {
		name     string
		keywords []string
		text     string
		expected int
	}{
		{
			name:     "substring containment without word boundary",
			keywords: []string{"time"},
			text:     "my page is timing out",
			expected: 1,
		},
		{
			name:     "counts each keyword once",
			keywords: []string{"cors", "403"},
			text:     "cors cors cors 403",
			expected: 2,
		},
		{
			name:     "keyword casing normalized",
			keywords: []string{"CORS"},
			text:     "a cors failure",
			expected: 1,
		},
		{
			name:     "blank keywords ignored",
			keywords: []string{"", "  "},
			text:     "anything",
			expected: 0,
		},
	}

	for _, test := range tests {
		pattern := models.DiagnosticPattern{Keywords: test.keywords}
		count := scorer.Score(pattern, NormalizeSubmission(DiagnosticSubmission{Description: test.text}))
		if count != test.expected {
			t.Errorf("%s: expected count %d, got %d", test.name, test.expected, count)
		}
	}
}

func TestClampLogLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "zero falls back to default", limit: 0, expected: 100},
		{name: "negative falls back to default", limit: -5, expected: 100},
		{name: "in-range value passes through", limit: 250, expected: 250},
		{name: "max passes through", limit: 500, expected: 500},
		{name: "oversized value caps at max", limit: 501, expected: 500},
		{name: "far oversized value caps at max", limit: 100000, expected: 500},
	}

	for _, test := range tests {
		if got := clampLogLimit(test.limit); got != test.expected {
			t.Errorf("%s: expected %d, got %d", test.name, test.expected, got)
		}
	}
}

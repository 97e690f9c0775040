package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMatch_PartialOverlap(t *testing.T) {
	m := NewMatchService()

	result := m.CalculateMatch(
		[]string{"Python", "React"},
		[]string{"Python", "React", "Docker"},
	)

	assert.InDelta(t, 66.7, result.Score, 0.001)
	assert.Equal(t, []string{"Python", "React"}, result.MatchedSkills)
	assert.Equal(t, []string{"Docker"}, result.MissingSkills)
	assert.Equal(t, 3, result.TotalJDSkills)
	assert.Equal(t, 2, result.TotalMatched)
}

func TestCalculateMatch_EmptyJDSkills(t *testing.T) {
	m := NewMatchService()

	result := m.CalculateMatch([]string{"Python", "React"}, nil)

	assert.Zero(t, result.Score)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Zero(t, result.TotalJDSkills)
}

func TestCalculateMatch_CaseInsensitiveWithJDCasing(t *testing.T) {
	m := NewMatchService()

	result := m.CalculateMatch(
		[]string{"python", "NODE.JS"},
		[]string{"Python", "Node.js", "aws"},
	)

	// jd casing wins in the rendered sets
	assert.Equal(t, []string{"Node.js", "Python"}, result.MatchedSkills)
	assert.Equal(t, []string{"aws"}, result.MissingSkills)
}

func TestCalculateMatch_SetInvariants(t *testing.T) {
	m := NewMatchService()

	resume := []string{"Go", "Docker", "Kafka", "Terraform"}
	jd := []string{"Go", "Kubernetes", "Docker", "PostgreSQL", "Redis"}

	result := m.CalculateMatch(resume, jd)

	// matched ∪ missing must reassemble the jd skill set
	assert.ElementsMatch(t, jd, append(append([]string{}, result.MatchedSkills...), result.MissingSkills...))
	for _, skill := range result.MatchedSkills {
		assert.Contains(t, jd, skill)
		assert.Contains(t, resume, skill)
	}
	for _, skill := range result.MissingSkills {
		assert.Contains(t, jd, skill)
		assert.NotContains(t, resume, skill)
	}
}

func TestCalculateMatch_FullAndZeroOverlap(t *testing.T) {
	m := NewMatchService()

	full := m.CalculateMatch([]string{"Go", "Docker"}, []string{"Go", "Docker"})
	assert.InDelta(t, 100.0, full.Score, 0.001)
	assert.Empty(t, full.MissingSkills)

	zero := m.CalculateMatch([]string{"Go"}, []string{"Rust", "Elixir"})
	assert.Zero(t, zero.Score)
	assert.Empty(t, zero.MatchedSkills)
	assert.Equal(t, []string{"Elixir", "Rust"}, zero.MissingSkills)
}

func TestCalculateMatch_OneDecimalRounding(t *testing.T) {
	m := NewMatchService()

	cases := []struct {
		name   string
		resume []string
		jd     []string
		want   float64
	}{
		{"one of three", []string{"Go"}, []string{"Go", "Rust", "Zig"}, 33.3},
		{"one of six", []string{"Go"}, []string{"Go", "A", "B", "C2", "D", "E"}, 16.7},
		{"five of six", []string{"Go", "A", "B", "C2", "D"}, []string{"Go", "A", "B", "C2", "D", "E"}, 83.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := m.CalculateMatch(tc.resume, tc.jd)
			assert.InDelta(t, tc.want, result.Score, 0.001)
		})
	}
}

func TestSuggestions(t *testing.T) {
	m := NewMatchService()

	suggestions := m.Suggestions([]string{"React", "Docker", "Terraform"})

	assert.Equal(t, []string{
		"Learn React through online courses or projects",
		"Learn Docker through online courses or projects",
		"Consider gaining experience with Terraform",
	}, suggestions)
}

func TestSuggestions_Empty(t *testing.T) {
	m := NewMatchService()
	assert.Empty(t, m.Suggestions(nil))
}

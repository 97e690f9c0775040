package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type MatchResult struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	TotalJDSkills int      `json:"total_jd_skills"`
	TotalMatched  int      `json:"total_matched"`
}

type MatchService interface {
	CalculateMatch(resumeSkills, jdSkills []string) MatchResult
	Suggestions(missingSkills []string) []string
}

type matchService struct{}

func NewMatchService() MatchService {
	return &matchService{}
}

// CalculateMatch intersects the two skill sets case-insensitively. Matched and
// missing skills are rendered in the job description's canonical casing and
// sorted; the score is the matched percentage of jd skills, one decimal.
func (m *matchService) CalculateMatch(resumeSkills, jdSkills []string) MatchResult {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSet[strings.ToLower(skill)] = true
	}

	// jd casing wins for the response; later duplicates don't override
	jdCanonical := make(map[string]string, len(jdSkills))
	for _, skill := range jdSkills {
		lower := strings.ToLower(skill)
		if _, ok := jdCanonical[lower]; !ok {
			jdCanonical[lower] = skill
		}
	}

	matched := make([]string, 0, len(jdCanonical))
	missing := make([]string, 0, len(jdCanonical))
	for lower, canonical := range jdCanonical {
		if resumeSet[lower] {
			matched = append(matched, canonical)
		} else {
			missing = append(missing, canonical)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	var score float64
	if len(jdSkills) > 0 {
		score = float64(len(matched)) / float64(len(jdSkills)) * 100
		score = math.Round(score*10) / 10
	}

	return MatchResult{
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: missing,
		TotalJDSkills: len(jdSkills),
		TotalMatched:  len(matched),
	}
}

// suggestionCategories groups skills that have well-trodden learning paths.
var suggestionCategories = map[string][]string{
	"frontend": {"React", "Angular", "Vue.js", "HTML", "CSS", "JavaScript", "TypeScript"},
	"backend":  {"Node.js", "Python", "Java", "Django", "Flask", "Spring Boot"},
	"database": {"MongoDB", "PostgreSQL", "MySQL", "Redis"},
	"cloud":    {"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes"},
}

// Suggestions produces one human-readable suggestion per missing skill.
func (m *matchService) Suggestions(missingSkills []string) []string {
	categorized := make(map[string]bool)
	for _, skills := range suggestionCategories {
		for _, skill := range skills {
			categorized[strings.ToLower(skill)] = true
		}
	}

	suggestions := make([]string, 0, len(missingSkills))
	for _, skill := range missingSkills {
		if categorized[strings.ToLower(skill)] {
			suggestions = append(suggestions, fmt.Sprintf("Learn %s through online courses or projects", skill))
		} else {
			suggestions = append(suggestions, fmt.Sprintf("Consider gaining experience with %s", skill))
		}
	}
	return suggestions
}

package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// MatchStrategy selects how vocabulary terms are located in text.
type MatchStrategy string

const (
	// MatchWord matches whole terms only: a term may not be preceded or
	// followed by a word character.
	MatchWord MatchStrategy = "word"
	// MatchSubstring matches terms anywhere in the text.
	MatchSubstring MatchStrategy = "substring"
)

type SkillExtractor interface {
	ExtractSkills(text string) []string
	Vocabulary() []string
}

type skillTerm struct {
	canonical string
	lower     string
	pattern   *regexp.Regexp
	// basePattern matches the part before the first dot, so "React" in text
	// still finds the "React.js" vocabulary entry.
	basePattern *regexp.Regexp
}

type skillExtractor struct {
	strategy MatchStrategy
	terms    []skillTerm
}

// NewSkillExtractor compiles the vocabulary once; the extractor is immutable
// afterwards and safe for concurrent use.
func NewSkillExtractor(vocabulary []string, strategy MatchStrategy) (SkillExtractor, error) {
	switch strategy {
	case MatchWord, MatchSubstring:
	default:
		return nil, fmt.Errorf("unknown match strategy: %q", strategy)
	}

	seen := make(map[string]bool, len(vocabulary))
	terms := make([]skillTerm, 0, len(vocabulary))
	for _, skill := range vocabulary {
		lower := strings.ToLower(skill)
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true

		term := skillTerm{canonical: skill, lower: lower}
		if strategy == MatchWord {
			term.pattern = compileTermPattern(lower)
			if base, _, ok := strings.Cut(lower, "."); ok && base != "" {
				term.basePattern = compileTermPattern(base)
			}
		}
		terms = append(terms, term)
	}

	return &skillExtractor{strategy: strategy, terms: terms}, nil
}

// compileTermPattern builds a whole-term pattern. RE2 has no lookarounds, so
// the boundary is expressed with explicit non-word alternatives; terms like
// "c++", "c#" and ".net" end or start in non-word characters where \b would
// not hold.
func compileTermPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|\W)` + regexp.QuoteMeta(term) + `(?:\W|$)`)
}

var textNormalizeRe = regexp.MustCompile(`[^\w\s.\-+#]`)

// normalizeText lowercases and strips characters that interfere with term
// matching, keeping dots, hyphens, plus and hash so terms like "node.js" and
// "c++" survive.
func normalizeText(text string) string {
	return textNormalizeRe.ReplaceAllString(strings.ToLower(text), " ")
}

func (e *skillExtractor) ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	normalized := normalizeText(text)

	found := make([]string, 0)
	for _, term := range e.terms {
		if e.matches(term, normalized) {
			found = append(found, term.canonical)
		}
	}

	sort.Strings(found)
	return found
}

func (e *skillExtractor) matches(term skillTerm, normalized string) bool {
	if e.strategy == MatchSubstring {
		return strings.Contains(normalized, term.lower)
	}
	if term.pattern.MatchString(normalized) {
		return true
	}
	return term.basePattern != nil && term.basePattern.MatchString(normalized)
}

func (e *skillExtractor) Vocabulary() []string {
	vocab := make([]string, len(e.terms))
	for i, term := range e.terms {
		vocab[i] = term.canonical
	}
	return vocab
}

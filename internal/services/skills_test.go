package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWordExtractor(t *testing.T, vocabulary []string) SkillExtractor {
	t.Helper()
	extractor, err := NewSkillExtractor(vocabulary, MatchWord)
	require.NoError(t, err)
	return extractor
}

func TestNewSkillExtractor_UnknownStrategy(t *testing.T) {
	_, err := NewSkillExtractor(DefaultVocabulary(), MatchStrategy("fuzzy"))
	require.Error(t, err)
}

func TestExtractSkills_CanonicalCasing(t *testing.T) {
	extractor := newWordExtractor(t, []string{"Python", "Docker", "Kubernetes"})

	skills := extractor.ExtractSkills("experienced PYTHON developer, knows docker and KuBeRnEtEs")
	assert.Equal(t, []string{"Docker", "Kubernetes", "Python"}, skills)
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	extractor := newWordExtractor(t, []string{"Java", "JavaScript", "Go"})

	t.Run("term inside a longer word does not match", func(t *testing.T) {
		skills := extractor.ExtractSkills("JavaScript expert")
		assert.Equal(t, []string{"JavaScript"}, skills, "Java must not match inside JavaScript")
	})

	t.Run("punctuation delimits terms", func(t *testing.T) {
		skills := extractor.ExtractSkills("Languages: Go, Java.")
		assert.Equal(t, []string{"Go", "Java"}, skills)
	})

	t.Run("suffixed term does not match", func(t *testing.T) {
		skills := extractor.ExtractSkills("Golang and Javascripting")
		assert.Empty(t, skills)
	})
}

func TestExtractSkills_SpecialCharacterTerms(t *testing.T) {
	extractor := newWordExtractor(t, []string{"C++", "C#", "C", ".NET"})

	skills := extractor.ExtractSkills("Proficient in C++ and C#")
	assert.Contains(t, skills, "C++")
	assert.Contains(t, skills, "C#")
}

func TestExtractSkills_DottedTermBase(t *testing.T) {
	extractor := newWordExtractor(t, []string{"React", "React.js", "Node.js"})

	// "react" and "node" in text should still surface the dotted entries
	skills := extractor.ExtractSkills("building with react and node on the backend")
	assert.ElementsMatch(t, []string{"React", "React.js", "Node.js"}, skills)
}

func TestExtractSkills_SubstringStrategy(t *testing.T) {
	extractor, err := NewSkillExtractor([]string{"JavaScript", "SQL"}, MatchSubstring)
	require.NoError(t, err)

	skills := extractor.ExtractSkills("Javascripting with PostgreSQL")
	assert.ElementsMatch(t, []string{"JavaScript", "SQL"}, skills)
}

func TestExtractSkills_EmptyText(t *testing.T) {
	extractor := newWordExtractor(t, DefaultVocabulary())

	assert.Empty(t, extractor.ExtractSkills(""))
	assert.Empty(t, extractor.ExtractSkills("   \n\t  "))
}

func TestExtractSkills_Deterministic(t *testing.T) {
	extractor := newWordExtractor(t, DefaultVocabulary())
	text := "Senior Python engineer: Django, PostgreSQL, Docker, AWS, Git"

	first := extractor.ExtractSkills(text)
	second := extractor.ExtractSkills(text)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Python")
	assert.Contains(t, first, "Django")
	assert.Contains(t, first, "PostgreSQL")
	assert.Contains(t, first, "Docker")
	assert.Contains(t, first, "AWS")
	assert.Contains(t, first, "Git")
}

func TestVocabulary_DeduplicatesCaseInsensitively(t *testing.T) {
	extractor := newWordExtractor(t, []string{"Python", "PYTHON", "python"})
	assert.Len(t, extractor.Vocabulary(), 1)
}

func TestDefaultVocabulary_ReturnsCopy(t *testing.T) {
	vocab := DefaultVocabulary()
	require.NotEmpty(t, vocab)
	vocab[0] = "mutated"
	assert.NotEqual(t, "mutated", DefaultVocabulary()[0])
}

package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumerrs/resume-analyzer-api/internal/testutil"
)

const testMaxFileSize = 5 * 1024 * 1024

func TestValidate(t *testing.T) {
	parser := NewPDFParserService(testMaxFileSize)
	validPDF := testutil.MinimalPDF("hello")

	t.Run("valid pdf", func(t *testing.T) {
		assert.NoError(t, parser.Validate("resume.pdf", validPDF))
	})

	t.Run("base64 uploads carry no filename", func(t *testing.T) {
		assert.NoError(t, parser.Validate("", validPDF))
	})

	t.Run("empty file", func(t *testing.T) {
		assert.ErrorIs(t, parser.Validate("resume.pdf", nil), ErrEmptyFile)
	})

	t.Run("oversized file", func(t *testing.T) {
		small := NewPDFParserService(8)
		assert.ErrorIs(t, small.Validate("resume.pdf", validPDF), ErrFileTooLarge)
	})

	t.Run("wrong extension", func(t *testing.T) {
		assert.ErrorIs(t, parser.Validate("resume.txt", validPDF), ErrNotPDF)
	})

	t.Run("missing magic bytes", func(t *testing.T) {
		assert.ErrorIs(t, parser.Validate("resume.pdf", []byte("plain text content")), ErrNotPDF)
	})
}

func TestExtractText(t *testing.T) {
	parser := NewPDFParserService(testMaxFileSize)

	t.Run("extracts selectable text", func(t *testing.T) {
		data := testutil.MinimalPDF("Go developer with Docker experience")

		text, err := parser.ExtractText(data)
		require.NoError(t, err)
		assert.Contains(t, text, "Docker")
		assert.Contains(t, text, "Go developer")
	})

	t.Run("garbage after magic bytes fails", func(t *testing.T) {
		data := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte{0x41}, 64)...)

		_, err := parser.ExtractText(data)
		assert.Error(t, err)
	})
}

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"collapses space runs", "a    b  c", "a b c"},
		{"collapses newline runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"rejoins hyphenated line breaks", "experi-\nence", "experience"},
		{"trims lines", "  hello  \n  world  ", "hello\nworld"},
		{"drops space before punctuation", "skills : Go , Docker", "skills: Go, Docker"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanText(tc.in))
		})
	}
}

package services

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	ErrEmptyFile     = errors.New("file is empty")
	ErrFileTooLarge  = errors.New("file size exceeds 5MB limit")
	ErrNotPDF        = errors.New("only PDF files are allowed")
	ErrNoTextContent = errors.New("no text could be extracted from PDF")
)

var pdfMagic = []byte("%PDF")

type PDFParserService interface {
	Validate(filename string, data []byte) error
	ExtractText(data []byte) (string, error)
}

type pdfParserService struct {
	maxFileSize int64
}

func NewPDFParserService(maxFileSize int64) PDFParserService {
	return &pdfParserService{maxFileSize: maxFileSize}
}

// Validate checks the upload before any extraction work: non-empty, within
// the size limit, a .pdf filename when one is present (base64 uploads may
// omit it) and the %PDF magic bytes.
func (p *pdfParserService) Validate(filename string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFile
	}
	if int64(len(data)) > p.maxFileSize {
		return ErrFileTooLarge
	}
	if filename != "" && strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return ErrNotPDF
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return ErrNotPDF
	}
	return nil
}

func (p *pdfParserService) ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages and keep going
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := CleanText(textBuilder.String())
	if text == "" {
		return "", ErrNoTextContent
	}
	return text, nil
}

var (
	multiSpaceRe     = regexp.MustCompile(` +`)
	multiNewlineRe   = regexp.MustCompile(`\n{3,}`)
	hyphenBreakRe    = regexp.MustCompile(`(\w+)-\s*\n\s*(\w+)`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,;:!?])`)
)

// CleanText normalizes extracted text while preserving line structure:
// collapses space runs, rejoins words hyphenated across line breaks and trims
// each line.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	text = hyphenBreakRe.ReplaceAllString(text, "$1$2")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

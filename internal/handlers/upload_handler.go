package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/resumerrs/resume-analyzer-api/internal/services"
)

var (
	errNoFileUploaded = errors.New("no file uploaded")
	errNoFileSelected = errors.New("no file selected")
	errInvalidBase64  = errors.New("invalid base64 file data")
)

type UploadHandler struct {
	pdfParser      services.PDFParserService
	skillExtractor services.SkillExtractor
}

func NewUploadHandler(
	pdfParser services.PDFParserService,
	skillExtractor services.SkillExtractor,
) *UploadHandler {
	return &UploadHandler{
		pdfParser:      pdfParser,
		skillExtractor: skillExtractor,
	}
}

// HandleUploadResume handles POST /api/upload-resume: accepts a PDF as
// multipart form data or as base64 inside a JSON object, extracts its text
// and the skills found in it.
func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	filename, data, err := extractUploadedFile(c)
	if err != nil {
		return h.uploadInputError(c, err)
	}

	if err := h.pdfParser.Validate(filename, data); err != nil {
		return h.validationError(c, err)
	}

	text, err := h.pdfParser.ExtractText(data)
	if err != nil {
		if errors.Is(err, services.ErrNoTextContent) {
			return respondErrorType(c, fiber.StatusBadRequest,
				"No text could be extracted from PDF. The file might be an image-based PDF (scanned document) or corrupted. Please ensure the PDF contains selectable text.",
				"extraction_error")
		}
		return respondErrorType(c, fiber.StatusBadRequest, "Failed to parse PDF", "extraction_error")
	}

	skills := h.skillExtractor.ExtractSkills(text)

	return respondOK(c, fiber.Map{
		"text":          text,
		"extractedText": text, // frontend compatibility
		"skills":        skills,
		"message":       fmt.Sprintf("Resume processed successfully. Found %d skills.", len(skills)),
		"stats": fiber.Map{
			"character_count": len(text),
			"word_count":      len(strings.Fields(text)),
			"skill_count":     len(skills),
		},
	})
}

// HandleValidatePDF handles POST /api/validate-pdf: validates a PDF without
// extracting anything.
func (h *UploadHandler) HandleValidatePDF(c *fiber.Ctx) error {
	filename, data, err := extractUploadedFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"valid":   false,
			"message": "No file uploaded",
		})
	}

	if err := h.pdfParser.Validate(filename, data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"valid":   false,
			"message": validationMessage(err),
		})
	}

	return respondOK(c, fiber.Map{
		"valid":   true,
		"message": "File is valid",
	})
}

func (h *UploadHandler) uploadInputError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errNoFileSelected):
		return respondError(c, fiber.StatusBadRequest, "No file selected. Please choose a PDF file to upload.")
	case errors.Is(err, errInvalidBase64):
		return respondError(c, fiber.StatusBadRequest, "Invalid base64 file data")
	default:
		return respondDebug(c, fiber.StatusBadRequest,
			"No file uploaded. Please send file as multipart/form-data with field name 'file', 'resume' or 'pdf', or as base64 JSON.",
			fiber.Map{
				"content_type": c.Get(fiber.HeaderContentType),
				"form_keys":    multipartFieldNames(c),
			})
	}
}

func (h *UploadHandler) validationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrFileTooLarge):
		return respondError(c, fiber.StatusRequestEntityTooLarge, validationMessage(err))
	case errors.Is(err, services.ErrNotPDF):
		return respondErrorType(c, fiber.StatusBadRequest, validationMessage(err), "extraction_error")
	default:
		return respondError(c, fiber.StatusBadRequest, validationMessage(err))
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrFileTooLarge):
		return "File size exceeds 5MB limit"
	case errors.Is(err, services.ErrEmptyFile):
		return "File is empty"
	case errors.Is(err, services.ErrNotPDF):
		return "Only PDF files are allowed"
	}
	return "File does not appear to be a valid PDF file"
}

// extractUploadedFile locates the PDF in the request: first the multipart
// file field aliases, then a base64 payload in a JSON body. A data-URL prefix
// ("data:application/pdf;base64,....") is stripped before decoding.
func extractUploadedFile(c *fiber.Ctx) (string, []byte, error) {
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, field := range fileFieldAliases {
			headers := form.File[field]
			if len(headers) == 0 {
				continue
			}
			header := headers[0]
			if header.Filename == "" {
				return "", nil, errNoFileSelected
			}
			f, err := header.Open()
			if err != nil {
				return "", nil, fmt.Errorf("failed to open uploaded file: %w", err)
			}
			defer f.Close()
			data, err := io.ReadAll(f)
			if err != nil {
				return "", nil, fmt.Errorf("failed to read uploaded file: %w", err)
			}
			return header.Filename, data, nil
		}
		return "", nil, errNoFileUploaded
	}

	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return "", nil, errNoFileUploaded
	}

	encoded := resolveString(body, base64FieldAliases)
	if encoded == "" {
		return "", nil, errNoFileUploaded
	}
	if idx := strings.Index(encoded, ","); idx >= 0 {
		encoded = encoded[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, errInvalidBase64
	}

	filename, _ := body["filename"].(string)
	if filename == "" {
		filename = "resume.pdf"
	}
	return filename, data, nil
}

func multipartFieldNames(c *fiber.Ctx) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return []string{}
	}
	names := make([]string, 0, len(form.File))
	for name := range form.File {
		names = append(names, name)
	}
	return names
}

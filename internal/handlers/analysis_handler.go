package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/resumerrs/resume-analyzer-api/internal/models"
	"github.com/resumerrs/resume-analyzer-api/internal/repositories"
	"github.com/resumerrs/resume-analyzer-api/internal/services"
)

type AnalysisHandler struct {
	analysisRepo   repositories.AnalysisRepository
	skillExtractor services.SkillExtractor
	matchService   services.MatchService
}

func NewAnalysisHandler(
	analysisRepo repositories.AnalysisRepository,
	skillExtractor services.SkillExtractor,
	matchService services.MatchService,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisRepo:   analysisRepo,
		skillExtractor: skillExtractor,
		matchService:   matchService,
	}
}

// HandleAnalyzeMatch handles POST /api/analyze-match. Resume skills may be
// given directly or derived from resume text; jd skills may be given directly
// or derived from the job description. The result is persisted when the store
// is reachable, but a storage failure never fails the analysis itself.
func (h *AnalysisHandler) HandleAnalyzeMatch(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil || len(body) == 0 {
		return respondDebug(c, fiber.StatusBadRequest,
			"No data provided. Please send JSON with 'resume_skills' and 'job_description' fields.",
			fiber.Map{
				"content_type": c.Get(fiber.HeaderContentType),
				"has_data":     false,
			})
	}

	resumeSkills := resolveSkills(body, resumeSkillsAliases)
	jobDescription := resolveString(body, jobDescAliases)
	resumeText := resolveString(body, resumeTextAliases)

	if len(resumeSkills) == 0 && resumeText != "" {
		resumeSkills = h.skillExtractor.ExtractSkills(resumeText)
	}

	var missingFields []string
	if len(resumeSkills) == 0 {
		missingFields = append(missingFields, "resume_skills (or skills, or resume_text)")
	}
	if jobDescription == "" {
		missingFields = append(missingFields, "job_description (or jobDescription)")
	}
	if len(missingFields) > 0 {
		return respondDebug(c, fiber.StatusBadRequest,
			fmt.Sprintf("Missing required fields: %s", strings.Join(missingFields, ", ")),
			fiber.Map{
				"received_keys": receivedKeys(body),
				"content_type":  c.Get(fiber.HeaderContentType),
			})
	}

	jdSkills := resolveSkills(body, jdSkillsAliases)
	if len(jdSkills) == 0 {
		jdSkills = h.skillExtractor.ExtractSkills(jobDescription)
	}

	result := h.matchService.CalculateMatch(resumeSkills, jdSkills)

	response := fiber.Map{
		"score":           result.Score,
		"matched_skills":  result.MatchedSkills,
		"missing_skills":  result.MissingSkills,
		"jd_skills":       jdSkills,
		"total_jd_skills": result.TotalJDSkills,
		"total_matched":   result.TotalMatched,
		"message":         fmt.Sprintf("Match score: %.1f%%", result.Score),
	}

	if include, _ := body["include_suggestions"].(bool); include {
		response["suggestions"] = h.matchService.Suggestions(result.MissingSkills)
	}

	analysis := &models.Analysis{
		ResumeText:     resumeText,
		ResumeSkills:   resumeSkills,
		JobDescription: jobDescription,
		JDSkills:       jdSkills,
		MatchedSkills:  result.MatchedSkills,
		MissingSkills:  result.MissingSkills,
		Score:          result.Score,
	}
	if err := h.analysisRepo.Create(analysis); err != nil {
		// The analysis is still useful without persistence
		log.Printf("failed to save analysis: %v", err)
	} else {
		response["analysis_id"] = analysis.ID
	}

	return respondOK(c, response)
}

// HandleAnalysisHistory handles GET /api/analysis-history?limit=&skip=.
func (h *AnalysisHandler) HandleAnalysisHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	skip := c.QueryInt("skip", 0)

	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	analyses, err := h.analysisRepo.FindAll(limit, skip)
	if err != nil {
		return h.storeError(c, err)
	}
	if analyses == nil {
		analyses = []models.Analysis{}
	}

	return respondOK(c, fiber.Map{
		"analyses": analyses,
		"limit":    limit,
		"skip":     skip,
		"count":    len(analyses),
	})
}

// HandleGetAnalysis handles GET /api/analysis/:id.
func (h *AnalysisHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	analysis, err := h.analysisRepo.FindByID(c.Params("id"))
	if err != nil {
		return h.storeError(c, err)
	}

	return respondOK(c, fiber.Map{
		"analysis": analysis,
	})
}

// HandleDeleteAnalysis handles DELETE /api/analysis/:id.
func (h *AnalysisHandler) HandleDeleteAnalysis(c *fiber.Ctx) error {
	if err := h.analysisRepo.Delete(c.Params("id")); err != nil {
		return h.storeError(c, err)
	}

	return respondOK(c, fiber.Map{
		"message": "Analysis deleted successfully",
	})
}

// HandleStatistics handles GET /api/statistics.
func (h *AnalysisHandler) HandleStatistics(c *fiber.Ctx) error {
	stats, err := h.analysisRepo.Statistics()
	if err != nil {
		return h.storeError(c, err)
	}

	return respondOK(c, fiber.Map{
		"statistics": stats,
	})
}

func (h *AnalysisHandler) storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrAnalysisNotFound):
		return respondError(c, fiber.StatusNotFound, "Analysis not found")
	case errors.Is(err, repositories.ErrStorageUnavailable):
		return respondError(c, fiber.StatusServiceUnavailable, "Database connection failed. Please try again later.")
	default:
		log.Printf("analysis store error: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

package repositories

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/resumerrs/resume-analyzer-api/internal/models"
)

var (
	// ErrAnalysisNotFound signals an unknown analysis id. Distinct from
	// ErrStorageUnavailable so handlers can answer 404 vs 503.
	ErrAnalysisNotFound = errors.New("analysis not found")

	// ErrStorageUnavailable signals that the database connection was never
	// established or cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id string) (*models.Analysis, error)
	FindAll(limit, skip int) ([]models.Analysis, error)
	Delete(id string) error
	Statistics() (*Statistics, error)
}

type Statistics struct {
	TotalAnalyses int64   `json:"total_analyses"`
	AvgScore      float64 `json:"avg_score"`
	MaxScore      float64 `json:"max_score"`
	MinScore      float64 `json:"min_score"`
}

type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository wraps a gorm handle. A nil handle is allowed; every
// operation then returns ErrStorageUnavailable.
func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if r.db == nil {
		return ErrStorageUnavailable
	}

	if analysis.ID == "" {
		analysis.ID = models.NewAnalysisID()
	}
	now := time.Now().UTC()
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = now
	}
	if analysis.UpdatedAt.IsZero() {
		analysis.UpdatedAt = now
	}

	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

func (r *analysisRepository) FindByID(id string) (*models.Analysis, error) {
	if r.db == nil {
		return nil, ErrStorageUnavailable
	}

	var analysis models.Analysis
	if err := r.db.Where("id = ?", id).First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &analysis, nil
}

func (r *analysisRepository) FindAll(limit, skip int) ([]models.Analysis, error) {
	if r.db == nil {
		return nil, ErrStorageUnavailable
	}

	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	var analyses []models.Analysis
	err := r.db.
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&analyses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

func (r *analysisRepository) Delete(id string) error {
	if r.db == nil {
		return ErrStorageUnavailable
	}

	result := r.db.Where("id = ?", id).Delete(&models.Analysis{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}

func (r *analysisRepository) Statistics() (*Statistics, error) {
	if r.db == nil {
		return nil, ErrStorageUnavailable
	}

	var stats Statistics
	err := r.db.Model(&models.Analysis{}).
		Select("COUNT(*) AS total_analyses, COALESCE(AVG(score), 0) AS avg_score, COALESCE(MAX(score), 0) AS max_score, COALESCE(MIN(score), 0) AS min_score").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to calculate statistics: %w", err)
	}

	stats.AvgScore = math.Round(stats.AvgScore*100) / 100
	return &stats, nil
}

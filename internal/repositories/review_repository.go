package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("review already exists for this company and candidate")
)

type ReviewRepository interface {
	// Create relies on the (company, candidate) unique index as the backstop
	// against a duplicate racing past the service's pre-check.
	Create(review *models.Review) error
	FindByCompany(companyID string, limit int) ([]models.Review, error)
	FindByCandidate(candidateID string) ([]models.Review, error)
	ExistsForPair(companyID, candidateID string) (bool, error)
	GetCompanyStats(companyID string) (*CompanyReviewStats, error)
}

// CompanyReviewStats are the server-computed per-category averages returned
// with a company's review list. Sub-rating averages only count reviews that
// set the sub-rating.
type CompanyReviewStats struct {
	TotalReviews       int64   `json:"totalReviews"`
	AvgRating          float64 `json:"avgRating"`
	AvgWorkEnvironment float64 `json:"avgWorkEnvironment"`
	AvgSalary          float64 `json:"avgSalary"`
	AvgBenefits        float64 `json:"avgBenefits"`
	AvgManagement      float64 `json:"avgManagement"`
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	err := r.db.Create(review).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateReview
	}
	return err
}

func (r *ReviewRepositoryImpl) FindByCompany(companyID string, limit int) ([]models.Review, error) {
	query := r.db.
		Preload("Candidate").
		Where("company_id = ?", companyID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var reviews []models.Review
	err := query.Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindByCandidate(candidateID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.
		Preload("Company").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) ExistsForPair(companyID, candidateID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("company_id = ? AND candidate_id = ?", companyID, candidateID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepositoryImpl) GetCompanyStats(companyID string) (*CompanyReviewStats, error) {
	stats := &CompanyReviewStats{}

	row := r.db.Model(&models.Review{}).
		Select(`COUNT(*),
			COALESCE(AVG(rating), 0),
			COALESCE(AVG(NULLIF(work_environment, 0)), 0),
			COALESCE(AVG(NULLIF(salary, 0)), 0),
			COALESCE(AVG(NULLIF(benefits, 0)), 0),
			COALESCE(AVG(NULLIF(management, 0)), 0)`).
		Where("company_id = ?", companyID).
		Row()

	err := row.Scan(
		&stats.TotalReviews,
		&stats.AvgRating,
		&stats.AvgWorkEnvironment,
		&stats.AvgSalary,
		&stats.AvgBenefits,
		&stats.AvgManagement,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

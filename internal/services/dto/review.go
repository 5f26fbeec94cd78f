package dto

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

type CreateReviewRequest struct {
	CompanyID string `json:"companyId" validate:"required,uuid4"`
	JobID     string `json:"jobId" validate:"omitempty,uuid4"`

	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title   string `json:"title" validate:"required,max=200"`
	Comment string `json:"comment" validate:"required,max=2000"`
	Pros    string `json:"pros" validate:"omitempty,max=2000"`
	Cons    string `json:"cons" validate:"omitempty,max=2000"`

	WorkEnvironment int `json:"workEnvironment" validate:"omitempty,gte=1,lte=5"`
	Salary          int `json:"salary" validate:"omitempty,gte=1,lte=5"`
	Benefits        int `json:"benefits" validate:"omitempty,gte=1,lte=5"`
	Management      int `json:"management" validate:"omitempty,gte=1,lte=5"`

	IsAnonymous bool `json:"isAnonymous"`
}

// ReviewEligibility drives the review form: only hired candidates who have
// not already reviewed the company may submit.
type ReviewEligibility struct {
	CanReview       bool `json:"canReview"`
	AlreadyReviewed bool `json:"alreadyReviewed"`
}

// CompanyReviewsResponse bundles a company's reviews with the
// server-computed stats.
type CompanyReviewsResponse struct {
	Reviews []models.Review                  `json:"reviews"`
	Stats   *repositories.CompanyReviewStats `json:"stats"`
}

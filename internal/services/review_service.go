package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(candidateID string, req *dto.CreateReviewRequest) (*models.Review, error)
	GetCompanyReviews(companyID string) (*dto.CompanyReviewsResponse, error)
	GetMyReviews(candidateID string) ([]models.Review, error)

	// Eligibility tells the review form whether to render before the
	// candidate tries to submit.
	Eligibility(candidateID, companyID string) (*dto.ReviewEligibility, error)
}

type reviewService struct {
	reviewRepo      repositories.ReviewRepository
	applicationRepo repositories.ApplicationRepository
	userRepo        repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	applicationRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:      reviewRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
	}
}

func (s *reviewService) Create(candidateID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	company, err := s.userRepo.FindByID(req.CompanyID)
	if err != nil || company.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrCompanyNotFound
	}

	// Only candidates the company actually hired may review it.
	hired, err := s.applicationRepo.HasHiredApplication(candidateID, req.CompanyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !hired {
		return nil, apperrors.ErrNotHired
	}

	review := &models.Review{
		CompanyID:   req.CompanyID,
		CandidateID: candidateID,
		JobID:       req.JobID,

		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
		Pros:    req.Pros,
		Cons:    req.Cons,

		WorkEnvironment: req.WorkEnvironment,
		Salary:          req.Salary,
		Benefits:        req.Benefits,
		Management:      req.Management,

		IsVerified:  true,
		IsAnonymous: req.IsAnonymous,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		if err == repositories.ErrDuplicateReview {
			return nil, apperrors.ErrAlreadyReviewed
		}
		return nil, apperrors.InternalError(err)
	}
	return review, nil
}

func (s *reviewService) GetCompanyReviews(companyID string) (*dto.CompanyReviewsResponse, error) {
	reviews, err := s.reviewRepo.FindByCompany(companyID, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Anonymous reviews keep their stored author but never expose one.
	for i := range reviews {
		if reviews[i].IsAnonymous {
			reviews[i].CandidateID = ""
			reviews[i].Candidate = nil
		}
	}

	stats, err := s.reviewRepo.GetCompanyStats(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CompanyReviewsResponse{Reviews: reviews, Stats: stats}, nil
}

func (s *reviewService) Eligibility(candidateID, companyID string) (*dto.ReviewEligibility, error) {
	hired, err := s.applicationRepo.HasHiredApplication(candidateID, companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	reviewed, err := s.reviewRepo.ExistsForPair(companyID, candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ReviewEligibility{
		CanReview:       hired && !reviewed,
		AlreadyReviewed: reviewed,
	}, nil
}

func (s *reviewService) GetMyReviews(candidateID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}

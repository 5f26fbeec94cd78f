package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type CompanyService interface {
	List(query *dto.CompanyListQuery) ([]models.User, *dto.Pagination, error)
	// GetDetail returns the public company page; viewerID may be empty for
	// anonymous visitors.
	GetDetail(companyID, viewerID string) (*dto.CompanyDetailResponse, error)
}

type companyService struct {
	userRepo   repositories.UserRepository
	jobRepo    repositories.JobRepository
	reviewRepo repositories.ReviewRepository
}

func NewCompanyService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	reviewRepo repositories.ReviewRepository,
) CompanyService {
	return &companyService{userRepo: userRepo, jobRepo: jobRepo, reviewRepo: reviewRepo}
}

func (s *companyService) List(query *dto.CompanyListQuery) ([]models.User, *dto.Pagination, error) {
	query.Normalize()

	companies, total, err := s.userRepo.FindCompanies(repositories.CompanyFilter{
		Search:   query.Search,
		Industry: query.Industry,
		Size:     query.Size,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return companies, dto.NewPagination(query.Page, query.PageSize, total), nil
}

func (s *companyService) GetDetail(companyID, viewerID string) (*dto.CompanyDetailResponse, error) {
	company, err := s.userRepo.FindByID(companyID)
	if err != nil || company.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrCompanyNotFound
	}

	jobs, err := s.jobRepo.FindByCompany(companyID, true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats, err := s.reviewRepo.GetCompanyStats(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.CompanyDetailResponse{
		Company:     company,
		ActiveJobs:  jobs,
		AvgRating:   stats.AvgRating,
		ReviewCount: stats.TotalReviews,
	}

	if viewerID != "" {
		followed, err := s.userRepo.IsCompanyFollowed(viewerID, companyID)
		if err == nil {
			resp.IsFollowed = followed
		}
	}
	return resp, nil
}

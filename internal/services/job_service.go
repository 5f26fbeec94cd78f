package services

import (
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	Create(companyID string, req *dto.CreateJobRequest) (*models.Job, error)
	Update(jobID, companyID string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(jobID, companyID string) error
	// GetByID bumps the view counter unless the viewer owns the job.
	GetByID(jobID, viewerID string) (*models.Job, error)
	List(query *dto.JobListQuery) ([]models.Job, *dto.Pagination, error)
	ListByCompany(companyID string, activeOnly bool) ([]models.Job, error)
	Meta() map[string][]string
}

type jobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) Create(companyID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		CompanyID:    companyID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Category:     req.Category,
		Skills:       req.Skills,

		SalaryFrom:       req.SalaryFrom,
		SalaryTo:         req.SalaryTo,
		SalaryNegotiable: req.SalaryNegotiable,

		JobType:          req.JobType,
		LocationCity:     req.LocationCity,
		LocationDistrict: req.LocationDistrict,
		LocationAddress:  req.LocationAddress,

		NumberOfPositions:   req.NumberOfPositions,
		ApplicationDeadline: req.ApplicationDeadline,

		Status: models.JobStatusActive,
	}
	if req.SalaryCurrency != "" {
		job.SalaryCurrency = req.SalaryCurrency
	}
	if req.WorkMode != "" {
		job.WorkMode = req.WorkMode
	}
	if req.ExperienceLevel != "" {
		job.ExperienceLevel = req.ExperienceLevel
	}
	if job.NumberOfPositions < 1 {
		job.NumberOfPositions = 1
	}

	if req.SalaryFrom != nil && req.SalaryTo != nil && *req.SalaryFrom > *req.SalaryTo {
		return nil, apperrors.NewBadRequestError("salaryFrom must not exceed salaryTo")
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) Update(jobID, companyID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.findOwned(jobID, companyID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		job.Benefits = *req.Benefits
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.SalaryFrom != nil {
		job.SalaryFrom = req.SalaryFrom
	}
	if req.SalaryTo != nil {
		job.SalaryTo = req.SalaryTo
	}
	if req.SalaryCurrency != nil {
		job.SalaryCurrency = *req.SalaryCurrency
	}
	if req.SalaryNegotiable != nil {
		job.SalaryNegotiable = *req.SalaryNegotiable
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.WorkMode != nil {
		job.WorkMode = *req.WorkMode
	}
	if req.LocationCity != nil {
		job.LocationCity = *req.LocationCity
	}
	if req.LocationDistrict != nil {
		job.LocationDistrict = *req.LocationDistrict
	}
	if req.LocationAddress != nil {
		job.LocationAddress = *req.LocationAddress
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.NumberOfPositions != nil {
		job.NumberOfPositions = *req.NumberOfPositions
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	if job.SalaryFrom != nil && job.SalaryTo != nil && *job.SalaryFrom > *job.SalaryTo {
		return nil, apperrors.NewBadRequestError("salaryFrom must not exceed salaryTo")
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) Delete(jobID, companyID string) error {
	if _, err := s.findOwned(jobID, companyID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *jobService) GetByID(jobID, viewerID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if viewerID != job.CompanyID {
		if err := s.jobRepo.IncrementViews(jobID); err != nil {
			logger.Warn("view counter increment failed", "error", err, "job_id", jobID)
		} else {
			job.Views++
		}
	}
	return job, nil
}

func (s *jobService) List(query *dto.JobListQuery) ([]models.Job, *dto.Pagination, error) {
	query.Normalize()

	jobs, total, err := s.jobRepo.FindWithFilter(repositories.JobFilter{
		Search:          query.Search,
		Category:        query.Category,
		Location:        query.Location,
		SalaryFrom:      query.SalaryFrom,
		SalaryTo:        query.SalaryTo,
		JobType:         query.JobType,
		ExperienceLevel: query.ExperienceLevel,
		Status:          models.JobStatusActive,
		SortBy:          query.SortBy,
		SortOrder:       query.SortOrder,
		Page:            query.Page,
		PageSize:        query.PageSize,
	})
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return jobs, dto.NewPagination(query.Page, query.PageSize, total), nil
}

func (s *jobService) ListByCompany(companyID string, activeOnly bool) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByCompany(companyID, activeOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// Meta lists the closed enums the posting form offers.
func (s *jobService) Meta() map[string][]string {
	return map[string][]string{
		"categories":       models.JobCategories,
		"jobTypes":         models.JobTypes,
		"workModes":        models.WorkModes,
		"experienceLevels": models.ExperienceLevels,
	}
}

func (s *jobService) findOwned(jobID, companyID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.CompanyID != companyID {
		return nil, apperrors.ErrForbidden
	}
	return job, nil
}

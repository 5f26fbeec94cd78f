package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(candidateID string, req *dto.ApplyRequest) (*models.Application, error)
	UpdateStatus(applicationID, employerID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	Withdraw(applicationID, candidateID string) error
	GetByID(applicationID, requesterID string, requesterRole models.UserRole) (*models.Application, error)
	ListForCandidate(candidateID string) ([]models.Application, error)
	ListForCompany(companyID string) ([]models.Application, error)
	ListForJob(jobID, employerID string) ([]models.Application, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	notifications   NotificationService
	statusPolicy    models.ApplicationStatusPolicy
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
	statusPolicy models.ApplicationStatusPolicy,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		notifications:   notifications,
		statusPolicy:    statusPolicy,
	}
}

func (s *applicationService) Apply(candidateID string, req *dto.ApplyRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	// Paused jobs are delisted but still accept applications; only a closed
	// job refuses them.
	if job.Status == models.JobStatusClosed {
		return nil, apperrors.ErrJobClosed
	}

	cvType := models.CVType(req.CVType)
	if cvType == "" {
		cvType = models.CVTypeProfile
	}
	if cvType == models.CVTypeUpload && req.CVUrl == "" {
		return nil, apperrors.NewBadRequestError("cvUrl is required when cvType is upload")
	}

	application := &models.Application{
		JobID:       job.ID,
		CandidateID: candidateID,
		CompanyID:   job.CompanyID,
		CVType:      cvType,
		CVUrl:       req.CVUrl,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	// The repository writes the row, the initial status event and the job
	// counter in one transaction; the unique index settles a duplicate race.
	if err := s.applicationRepo.Create(application); err != nil {
		if err == repositories.ErrDuplicateApplication {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	candidate, err := s.userRepo.FindByID(candidateID)
	if err != nil {
		candidate = nil
	}
	s.notifications.NotifyNewApplication(job, application, candidate)

	return application, nil
}

func (s *applicationService) UpdateStatus(applicationID, employerID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	application, err := s.findByID(applicationID)
	if err != nil {
		return nil, err
	}
	if application.CompanyID != employerID {
		return nil, apperrors.ErrForbidden
	}

	newStatus := models.ApplicationStatus(req.Status)
	if !models.ValidApplicationStatus(newStatus) {
		return nil, apperrors.NewBadRequestError("Invalid application status")
	}
	if !s.statusPolicy.CanTransition(application.Status, newStatus) {
		return nil, apperrors.ErrInvalidTransition
	}

	// A same-status write may refresh the note but appends no history event
	// and sends no notification.
	statusChanged := application.Status != newStatus

	if err := s.applicationRepo.UpdateStatus(applicationID, newStatus, req.Note); err != nil {
		return nil, apperrors.InternalError(err)
	}

	application.Status = newStatus
	if req.Note != "" {
		application.Notes = req.Note
	}

	if statusChanged {
		s.notifications.NotifyApplicationStatus(application, newStatus)
	}

	return application, nil
}

func (s *applicationService) Withdraw(applicationID, candidateID string) error {
	application, err := s.findByID(applicationID)
	if err != nil {
		return err
	}
	if application.CandidateID != candidateID {
		return apperrors.ErrForbidden
	}

	if err := s.applicationRepo.Delete(application); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *applicationService) GetByID(applicationID, requesterID string, requesterRole models.UserRole) (*models.Application, error) {
	application, err := s.findByID(applicationID)
	if err != nil {
		return nil, err
	}

	allowed := requesterRole == models.UserRoleAdmin ||
		application.CandidateID == requesterID ||
		application.CompanyID == requesterID
	if !allowed {
		return nil, apperrors.ErrForbidden
	}
	return application, nil
}

func (s *applicationService) ListForCandidate(candidateID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *applicationService) ListForCompany(companyID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByCompany(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *applicationService) ListForJob(jobID, employerID string) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.CompanyID != employerID {
		return nil, apperrors.ErrForbidden
	}

	applications, err := s.applicationRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *applicationService) findByID(id string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

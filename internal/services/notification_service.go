package services

import (
	"fmt"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// statusMessages maps an application status to the candidate-facing
// notification text. "shortlisted" is kept in the table even though no write
// path can produce it.
var statusMessages = map[models.ApplicationStatus]string{
	models.ApplicationStatusPending:   "Your application is pending review",
	models.ApplicationStatusReviewing: "Your application is being reviewed",
	"shortlisted":                     "Congratulations! You have been shortlisted",
	models.ApplicationStatusInterview: "You have been invited to an interview",
	models.ApplicationStatusRejected:  "Your application was not successful this time",
	models.ApplicationStatusHired:     "Congratulations! You have been hired",
}

type NotificationService interface {
	List(userID string) (*dto.NotificationListResponse, error)
	UnreadCount(userID string) (int64, error)
	MarkRead(id, userID string) error
	MarkAllRead(userID string) error
	Delete(id, userID string) error

	// NotifyNewApplication and NotifyApplicationStatus are best-effort: a
	// failure is logged and never surfaces to the caller.
	NotifyNewApplication(job *models.Job, application *models.Application, candidate *models.User)
	NotifyApplicationStatus(application *models.Application, status models.ApplicationStatus)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) List(userID string) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindByRecipient(userID, 50)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) UnreadCount(userID string) (int64, error) {
	unread, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return unread, nil
}

func (s *notificationService) MarkRead(id, userID string) error {
	err := s.notificationRepo.MarkRead(id, userID)
	if err == repositories.ErrNotificationNotFound {
		return apperrors.ErrNotificationNotFound
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) Delete(id, userID string) error {
	err := s.notificationRepo.Delete(id, userID)
	if err == repositories.ErrNotificationNotFound {
		return apperrors.ErrNotificationNotFound
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) NotifyNewApplication(job *models.Job, application *models.Application, candidate *models.User) {
	candidateName := "A candidate"
	if candidate != nil && candidate.FullName != "" {
		candidateName = candidate.FullName
	}

	n := &models.Notification{
		RecipientID:          job.CompanyID,
		SenderID:             application.CandidateID,
		Type:                 models.NotificationTypeApplication,
		Title:                "New application",
		Message:              fmt.Sprintf("%s applied for %s", candidateName, job.Title),
		Link:                 fmt.Sprintf("/employer/jobs/%s/applications", job.ID),
		RelatedJobID:         job.ID,
		RelatedApplicationID: application.ID,
	}

	if err := s.notificationRepo.Create(n); err != nil {
		logger.Warn("failed to create application notification",
			"error", err, "job_id", job.ID, "candidate_id", application.CandidateID)
	}
}

func (s *notificationService) NotifyApplicationStatus(application *models.Application, status models.ApplicationStatus) {
	// Unmapped statuses fall through as the raw status string.
	message, ok := statusMessages[status]
	if !ok {
		message = string(status)
	}

	jobTitle := ""
	if application.Job != nil {
		jobTitle = application.Job.Title
	}
	if jobTitle != "" {
		message = fmt.Sprintf("%s: %s", jobTitle, message)
	}

	n := &models.Notification{
		RecipientID:          application.CandidateID,
		SenderID:             application.CompanyID,
		Type:                 models.NotificationTypeStatusChange,
		Title:                "Application update",
		Message:              message,
		Link:                 "/candidate/applications",
		RelatedJobID:         application.JobID,
		RelatedApplicationID: application.ID,
	}

	if err := s.notificationRepo.Create(n); err != nil {
		logger.Warn("failed to create status notification",
			"error", err, "application_id", application.ID, "status", status)
	}
}

package services

import (
	"encoding/json"
	"fmt"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// AuditContext carries the request attribution written to every audit entry.
type AuditContext struct {
	AdminID   string
	IPAddress string
	UserAgent string
}

type AdminService interface {
	ListUsers(query *dto.AdminUserListQuery) ([]models.User, *dto.Pagination, error)
	GetUserDetail(userID string) (*dto.AdminUserDetail, error)
	ToggleUserActive(userID string, audit AuditContext) (*models.User, error)
	UpdateUser(userID string, req *dto.AdminUpdateUserRequest, audit AuditContext) (*models.User, error)
	// DeleteUser deactivates the account; user rows are never hard-deleted.
	DeleteUser(userID string, audit AuditContext) error

	ListJobs(query *dto.AdminJobListQuery) ([]models.Job, *dto.Pagination, error)
	GetJobDetail(jobID string) (*dto.AdminJobDetail, error)
	UpdateJobStatus(jobID string, req *dto.AdminUpdateJobStatusRequest, audit AuditContext) (*models.Job, error)
	DeleteJob(jobID string, audit AuditContext) error

	GetAuditLogs(query *dto.AuditLogQuery) ([]models.AuditLog, *dto.Pagination, error)
}

type adminService struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	auditLogRepo    repositories.AuditLogRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	auditLogRepo repositories.AuditLogRepository,
) AdminService {
	return &adminService{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		auditLogRepo:    auditLogRepo,
	}
}

func (s *adminService) ListUsers(query *dto.AdminUserListQuery) ([]models.User, *dto.Pagination, error) {
	query.Normalize()

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:      models.UserRole(query.Role),
		Status:    query.Status,
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return users, dto.NewPagination(query.Page, query.PageSize, total), nil
}

func (s *adminService) GetUserDetail(userID string) (*dto.AdminUserDetail, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	detail := &dto.AdminUserDetail{User: user}
	switch user.Role {
	case models.UserRoleCandidate:
		applications, err := s.applicationRepo.FindByCandidate(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		detail.ApplicationCount = len(applications)
	case models.UserRoleEmployer:
		jobs, err := s.jobRepo.FindByCompany(userID, false)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		detail.JobCount = len(jobs)

		received, err := s.applicationRepo.FindByCompany(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		detail.ReceivedCount = len(received)
	}
	return detail, nil
}

func (s *adminService) ToggleUserActive(userID string, audit AuditContext) (*models.User, error) {
	user, err := s.findMutableUser(userID)
	if err != nil {
		return nil, err
	}

	newActive := !user.IsActive
	if err := s.userRepo.UpdateActive(userID, newActive); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.IsActive = newActive

	action := models.AuditActionBlockUser
	verb := "blocked"
	if newActive {
		action = models.AuditActionUnblockUser
		verb = "unblocked"
	}
	s.writeAudit(audit, action, models.AuditTargetUser, userID,
		fmt.Sprintf("Admin %s user %s", verb, user.Email),
		map[string]interface{}{"isActive": newActive})

	return user, nil
}

func (s *adminService) UpdateUser(userID string, req *dto.AdminUpdateUserRequest, audit AuditContext) (*models.User, error) {
	user, err := s.findMutableUser(userID)
	if err != nil {
		return nil, err
	}

	before := map[string]interface{}{
		"fullName":    user.FullName,
		"phone":       user.Phone,
		"companyName": user.CompanyName,
		"industry":    user.Industry,
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.Industry != nil {
		user.Industry = *req.Industry
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.writeAudit(audit, models.AuditActionUpdateUser, models.AuditTargetUser, userID,
		fmt.Sprintf("Admin updated user %s", user.Email),
		map[string]interface{}{
			"before": before,
			"after": map[string]interface{}{
				"fullName":    user.FullName,
				"phone":       user.Phone,
				"companyName": user.CompanyName,
				"industry":    user.Industry,
			},
		})

	return user, nil
}

func (s *adminService) DeleteUser(userID string, audit AuditContext) error {
	user, err := s.findMutableUser(userID)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return nil
	}

	if err := s.userRepo.UpdateActive(userID, false); err != nil {
		return apperrors.InternalError(err)
	}

	s.writeAudit(audit, models.AuditActionDeleteUser, models.AuditTargetUser, userID,
		fmt.Sprintf("Admin deleted (deactivated) user %s", user.Email), nil)
	return nil
}

func (s *adminService) ListJobs(query *dto.AdminJobListQuery) ([]models.Job, *dto.Pagination, error) {
	query.Normalize()

	jobs, total, err := s.jobRepo.FindWithFilter(repositories.JobFilter{
		Search:   query.Search,
		Category: query.Category,
		Status:   models.JobStatus(query.Status),
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return jobs, dto.NewPagination(query.Page, query.PageSize, total), nil
}

// GetJobDetail counts applications from the ledger rather than trusting the
// cached counter on the job row.
func (s *adminService) GetJobDetail(jobID string) (*dto.AdminJobDetail, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	count, err := s.applicationRepo.CountByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AdminJobDetail{Job: job, ApplicationCount: count}, nil
}

func (s *adminService) UpdateJobStatus(jobID string, req *dto.AdminUpdateJobStatusRequest, audit AuditContext) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	newStatus := models.JobStatus(req.Status)
	oldStatus := job.Status
	if err := s.jobRepo.UpdateStatus(jobID, newStatus); err != nil {
		return nil, apperrors.InternalError(err)
	}
	job.Status = newStatus

	action := models.AuditActionUpdateJob
	switch newStatus {
	case models.JobStatusActive:
		action = models.AuditActionApproveJob
	case models.JobStatusClosed:
		action = models.AuditActionRejectJob
	}
	s.writeAudit(audit, action, models.AuditTargetJob, jobID,
		fmt.Sprintf("Admin changed job %q status from %s to %s", job.Title, oldStatus, newStatus),
		map[string]interface{}{"before": oldStatus, "after": newStatus, "reason": req.Reason})

	return job, nil
}

func (s *adminService) DeleteJob(jobID string, audit AuditContext) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}

	s.writeAudit(audit, models.AuditActionDeleteJob, models.AuditTargetJob, jobID,
		fmt.Sprintf("Admin deleted job %q", job.Title),
		map[string]interface{}{"companyId": job.CompanyID})
	return nil
}

func (s *adminService) GetAuditLogs(query *dto.AuditLogQuery) ([]models.AuditLog, *dto.Pagination, error) {
	query.Normalize()

	filter := repositories.AuditLogFilter{
		AdminID:    query.AdminID,
		Action:     models.AuditAction(query.Action),
		TargetType: models.AuditTargetType(query.TargetType),
		TargetID:   query.TargetID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	if query.From != "" {
		t, err := parseDate(query.From)
		if err != nil {
			return nil, nil, apperrors.NewBadRequestError("Invalid 'from' date")
		}
		filter.From = t
	}
	if query.To != "" {
		t, err := parseDate(query.To)
		if err != nil {
			return nil, nil, apperrors.NewBadRequestError("Invalid 'to' date")
		}
		filter.To = t
	}

	entries, total, err := s.auditLogRepo.FindWithFilter(filter)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return entries, dto.NewPagination(query.Page, query.PageSize, total), nil
}

// findMutableUser loads the target and refuses admins and system accounts.
func (s *adminService) findMutableUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if user.IsSystemAccount {
		return nil, apperrors.ErrSystemAccount
	}
	if user.Role == models.UserRoleAdmin {
		return nil, apperrors.ErrCannotModifyAdmin
	}
	return user, nil
}

// writeAudit records the entry best-effort after the primary action commits.
func (s *adminService) writeAudit(audit AuditContext, action models.AuditAction, targetType models.AuditTargetType, targetID, description string, metadata map[string]interface{}) {
	entry := &models.AuditLog{
		AdminID:     audit.AdminID,
		Action:      action,
		TargetType:  targetType,
		TargetID:    targetID,
		Description: description,
		IPAddress:   audit.IPAddress,
		UserAgent:   audit.UserAgent,
		Timestamp:   time.Now(),
	}
	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			entry.Metadata = datatypes.JSON(raw)
		}
	}

	if err := s.auditLogRepo.Create(entry); err != nil {
		logger.Warn("audit log write failed",
			"error", err, "action", action, "target_id", targetID)
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

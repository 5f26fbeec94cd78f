package models

type UserRole string
type JobStatus string
type ApplicationStatus string
type CVType string
type AuditAction string
type AuditTargetType string
type NotificationType string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"

	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusHired     ApplicationStatus = "hired"

	CVTypeProfile CVType = "profile"
	CVTypeUpload  CVType = "upload"

	AuditActionBlockUser   AuditAction = "BLOCK_USER"
	AuditActionUnblockUser AuditAction = "UNBLOCK_USER"
	AuditActionDeleteUser  AuditAction = "DELETE_USER"
	AuditActionUpdateUser  AuditAction = "UPDATE_USER"
	AuditActionApproveJob  AuditAction = "APPROVE_JOB"
	AuditActionRejectJob   AuditAction = "REJECT_JOB"
	AuditActionDeleteJob   AuditAction = "DELETE_JOB"
	AuditActionUpdateJob   AuditAction = "UPDATE_JOB"
	AuditActionViewStats   AuditAction = "VIEW_STATISTICS"
	AuditActionOther       AuditAction = "OTHER"

	AuditTargetUser        AuditTargetType = "User"
	AuditTargetJob         AuditTargetType = "Job"
	AuditTargetApplication AuditTargetType = "Application"
	AuditTargetReview      AuditTargetType = "Review"
	AuditTargetSystem      AuditTargetType = "System"

	NotificationTypeApplication  NotificationType = "application"
	NotificationTypeStatusChange NotificationType = "status_change"
	NotificationTypeSystem       NotificationType = "system"
)

// ValidApplicationStatus reports whether s is a declared ledger status.
// "shortlisted" is deliberately not declared: the status-message table knows
// it, but no write path accepts it.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing,
		ApplicationStatusInterview, ApplicationStatusRejected,
		ApplicationStatusHired:
		return true
	}
	return false
}

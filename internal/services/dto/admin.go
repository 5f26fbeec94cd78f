package dto

import "jobboard_backend/internal/models"

type AdminUserListQuery struct {
	PaginationQuery
	Role      string `form:"role" validate:"omitempty,oneof=candidate employer admin"`
	Status    string `form:"status" validate:"omitempty,oneof=active blocked"`
	Search    string `form:"search"`
	SortBy    string `form:"sortBy" validate:"omitempty,oneof=created_at email full_name"`
	SortOrder string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

type AdminJobListQuery struct {
	PaginationQuery
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status" validate:"omitempty,oneof=active paused closed"`
}

// AdminUserDetail augments the account with activity counts for the role it
// holds. Unused counts stay zero.
type AdminUserDetail struct {
	User             *models.User `json:"user"`
	ApplicationCount int          `json:"applicationCount"`
	JobCount         int          `json:"jobCount"`
	ReceivedCount    int          `json:"receivedApplicationCount"`
}

// AdminJobDetail pairs the job with the ledger count of its applications,
// which may disagree with the cached counter on the row.
type AdminJobDetail struct {
	Job              *models.Job `json:"job"`
	ApplicationCount int64       `json:"applicationCount"`
}

// AdminUpdateUserRequest is the admin's profile edit. Role and password are
// not editable; blocking goes through the toggle endpoint.
type AdminUpdateUserRequest struct {
	FullName    *string `json:"fullName" validate:"omitempty,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	CompanyName *string `json:"companyName" validate:"omitempty,max=200"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
}

type AdminUpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active paused closed"`
	Reason string `json:"reason" validate:"omitempty,max=1000"`
}

type AuditLogQuery struct {
	PaginationQuery
	AdminID    string `form:"adminId" validate:"omitempty,uuid4"`
	Action     string `form:"action"`
	TargetType string `form:"targetType"`
	TargetID   string `form:"targetId" validate:"omitempty,uuid4"`
	From       string `form:"from"` // RFC 3339 or YYYY-MM-DD
	To         string `form:"to"`
}

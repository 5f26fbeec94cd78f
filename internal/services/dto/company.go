package dto

import "jobboard_backend/internal/models"

type CompanyListQuery struct {
	PaginationQuery
	Search   string `form:"search"`
	Industry string `form:"industry"`
	Size     string `form:"size"`
}

// CompanyDetailResponse is the public company page payload.
type CompanyDetailResponse struct {
	Company     *models.User `json:"company"`
	ActiveJobs  []models.Job `json:"activeJobs"`
	AvgRating   float64      `json:"avgRating"`
	ReviewCount int64        `json:"reviewCount"`
	IsFollowed  bool         `json:"isFollowed,omitempty"`
}

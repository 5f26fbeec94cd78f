package dto

import "time"

type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"required,max=10000"`
	Requirements string   `json:"requirements" validate:"required,max=5000"`
	Benefits     string   `json:"benefits" validate:"omitempty,max=5000"`
	Category     string   `json:"category" validate:"required,oneof=Frontend Backend Mobile 'AI / Data' DevOps 'QA / Tester' 'Product Manager' 'Finance / Accounting' Marketing Other"`
	Skills       []string `json:"skills" validate:"omitempty,max=30"`

	SalaryFrom       *int   `json:"salaryFrom" validate:"omitempty,gte=0"`
	SalaryTo         *int   `json:"salaryTo" validate:"omitempty,gte=0"`
	SalaryCurrency   string `json:"salaryCurrency" validate:"omitempty,max=5"`
	SalaryNegotiable bool   `json:"salaryNegotiable"`

	JobType          string `json:"jobType" validate:"required,oneof=Full-time Part-time Contract Internship Remote"`
	WorkMode         string `json:"workMode" validate:"omitempty,oneof=On-site Remote Hybrid"`
	LocationCity     string `json:"locationCity" validate:"omitempty,max=100"`
	LocationDistrict string `json:"locationDistrict" validate:"omitempty,max=100"`
	LocationAddress  string `json:"locationAddress" validate:"omitempty,max=300"`
	ExperienceLevel  string `json:"experienceLevel" validate:"omitempty,oneof=Intern Fresher Junior Middle Senior Lead Manager"`

	NumberOfPositions   int        `json:"numberOfPositions" validate:"omitempty,gte=1,lte=100"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
}

// UpdateJobRequest uses pointers so absent fields are left untouched.
type UpdateJobRequest struct {
	Title        *string   `json:"title" validate:"omitempty,max=200"`
	Description  *string   `json:"description" validate:"omitempty,max=10000"`
	Requirements *string   `json:"requirements" validate:"omitempty,max=5000"`
	Benefits     *string   `json:"benefits" validate:"omitempty,max=5000"`
	Category     *string   `json:"category" validate:"omitempty,oneof=Frontend Backend Mobile 'AI / Data' DevOps 'QA / Tester' 'Product Manager' 'Finance / Accounting' Marketing Other"`
	Skills       *[]string `json:"skills" validate:"omitempty,max=30"`

	SalaryFrom       *int    `json:"salaryFrom" validate:"omitempty,gte=0"`
	SalaryTo         *int    `json:"salaryTo" validate:"omitempty,gte=0"`
	SalaryCurrency   *string `json:"salaryCurrency" validate:"omitempty,max=5"`
	SalaryNegotiable *bool   `json:"salaryNegotiable"`

	JobType          *string `json:"jobType" validate:"omitempty,oneof=Full-time Part-time Contract Internship Remote"`
	WorkMode         *string `json:"workMode" validate:"omitempty,oneof=On-site Remote Hybrid"`
	LocationCity     *string `json:"locationCity" validate:"omitempty,max=100"`
	LocationDistrict *string `json:"locationDistrict" validate:"omitempty,max=100"`
	LocationAddress  *string `json:"locationAddress" validate:"omitempty,max=300"`
	ExperienceLevel  *string `json:"experienceLevel" validate:"omitempty,oneof=Intern Fresher Junior Middle Senior Lead Manager"`

	NumberOfPositions   *int       `json:"numberOfPositions" validate:"omitempty,gte=1,lte=100"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`

	Status *string `json:"status" validate:"omitempty,oneof=active paused closed"`
}

type JobListQuery struct {
	PaginationQuery
	Search          string `form:"search"`
	Category        string `form:"category"`
	Location        string `form:"location"`
	SalaryFrom      *int   `form:"salaryFrom"`
	SalaryTo        *int   `form:"salaryTo"`
	JobType         string `form:"jobType"`
	ExperienceLevel string `form:"experienceLevel"`
	SortBy          string `form:"sortBy" validate:"omitempty,oneof=created_at views application_count salary_from"`
	SortOrder       string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

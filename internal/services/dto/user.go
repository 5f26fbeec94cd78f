package dto

import "time"

// UpdateProfileRequest covers both candidate and employer profile edits;
// nil pointers mean "leave unchanged". Email, role and account flags are not
// editable here.
type UpdateProfileRequest struct {
	FullName    *string    `json:"fullName" validate:"omitempty,max=100"`
	Avatar      *string    `json:"avatar" validate:"omitempty,url"`
	Phone       *string    `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     *string    `json:"address" validate:"omitempty,max=300"`
	Bio         *string    `json:"bio" validate:"omitempty,max=2000"`
	Skills      *[]string  `json:"skills" validate:"omitempty,max=50"`
	CVUrl       *string    `json:"cvUrl" validate:"omitempty,url"`

	Experience *[]ExperienceInput `json:"experience" validate:"omitempty,dive"`
	Education  *[]EducationInput  `json:"education" validate:"omitempty,dive"`

	CompanyName        *string `json:"companyName" validate:"omitempty,max=200"`
	CompanyLogo        *string `json:"companyLogo" validate:"omitempty,url"`
	CompanyWebsite     *string `json:"companyWebsite" validate:"omitempty,url"`
	CompanySize        *string `json:"companySize" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 500+"`
	CompanyType        *string `json:"companyType" validate:"omitempty,max=50"`
	Industry           *string `json:"industry" validate:"omitempty,max=100"`
	CompanyDescription *string `json:"companyDescription" validate:"omitempty,max=5000"`
	CompanyAddress     *string `json:"companyAddress" validate:"omitempty,max=300"`
}

type ExperienceInput struct {
	Company     string     `json:"company" validate:"required,max=200"`
	Position    string     `json:"position" validate:"required,max=200"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsCurrent   bool       `json:"isCurrent"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
}

type EducationInput struct {
	School      string     `json:"school" validate:"required,max=200"`
	Degree      string     `json:"degree" validate:"required,max=200"`
	Field       string     `json:"field" validate:"omitempty,max=200"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
}

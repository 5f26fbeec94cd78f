package models

import "time"

// User holds all three roles in one table, as the platform always has:
// candidate profile fields and employer company fields are both here and the
// unused half stays empty. Admin "delete" flips IsActive; user rows are never
// hard-deleted.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;index" json:"role"`

	IsActive        bool `gorm:"default:true" json:"isActive"`
	IsSystemAccount bool `gorm:"default:false" json:"isSystemAccount"`

	// Candidate fields
	FullName    string     `json:"fullName,omitempty"`
	Avatar      string     `json:"avatar,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Address     string     `json:"address,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	Skills      []string   `gorm:"serializer:json" json:"skills,omitempty"`
	CVUrl       string     `json:"cvUrl,omitempty"`

	Experience []ExperienceEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"experience,omitempty"`
	Education  []EducationEntry  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"education,omitempty"`

	SavedJobs         []SavedJob        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	FollowedCompanies []FollowedCompany `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	// Employer fields
	CompanyName        string `json:"companyName,omitempty"`
	CompanyLogo        string `json:"companyLogo,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CompanySize        string `gorm:"type:varchar(20)" json:"companySize,omitempty"`
	CompanyType        string `gorm:"type:varchar(20)" json:"companyType,omitempty"`
	Industry           string `json:"industry,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	CompanyAddress     string `json:"companyAddress,omitempty"`
}

type ExperienceEntry struct {
	BaseModel
	UserID      string     `gorm:"type:uuid;not null;index" json:"-"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsCurrent   bool       `json:"isCurrent"`
	Description string     `json:"description,omitempty"`
}

type EducationEntry struct {
	BaseModel
	UserID      string     `gorm:"type:uuid;not null;index" json:"-"`
	School      string     `json:"school"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty"`
}

// SavedJob and FollowedCompany are join rows toggled by candidates.
type SavedJob struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_job" json:"userId"`
	JobID  string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_job" json:"jobId"`
}

type FollowedCompany struct {
	BaseModel
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_follow_user_company" json:"userId"`
	CompanyID string `gorm:"type:uuid;not null;uniqueIndex:idx_follow_user_company" json:"companyId"`
}

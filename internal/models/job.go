package models

import "time"

// Job is owned by exactly one employer. CompanyID is immutable after creation;
// the ownership check lives in the service layer, not in the schema.
// Deleting a job is a hard delete and cascades nothing: applications keep
// their job_id and the read paths tolerate the dangling reference.
type Job struct {
	BaseModel
	CompanyID string `gorm:"type:uuid;not null;index" json:"companyId"`

	Title        string   `gorm:"not null" json:"title"`
	Description  string   `gorm:"not null" json:"description"`
	Requirements string   `gorm:"not null" json:"requirements"`
	Benefits     string   `json:"benefits,omitempty"`
	Category     string   `gorm:"type:varchar(40);not null;index" json:"category"`
	Skills       []string `gorm:"serializer:json" json:"skills,omitempty"`

	SalaryFrom       *int   `json:"salaryFrom,omitempty"`
	SalaryTo         *int   `json:"salaryTo,omitempty"`
	SalaryCurrency   string `gorm:"type:varchar(5);default:'VND'" json:"salaryCurrency"`
	SalaryNegotiable bool   `gorm:"default:false" json:"salaryNegotiable"`

	JobType          string `gorm:"type:varchar(20);not null" json:"jobType"`
	WorkMode         string `gorm:"type:varchar(20);default:'On-site'" json:"workMode"`
	LocationCity     string `json:"locationCity,omitempty"`
	LocationDistrict string `json:"locationDistrict,omitempty"`
	LocationAddress  string `json:"locationAddress,omitempty"`
	ExperienceLevel  string `gorm:"type:varchar(20);default:'Junior'" json:"experienceLevel"`

	NumberOfPositions   int        `gorm:"default:1" json:"numberOfPositions"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`

	Status JobStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`

	// Counters maintained with atomic SQL increments. ApplicationCount is a
	// stored column, not derived from the ledger, and can drift if a
	// withdrawal races a hard job delete.
	Views            int `gorm:"default:0" json:"views"`
	ApplicationCount int `gorm:"default:0" json:"applicationCount"`

	Company *User `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// JobCategories is the closed category enum.
var JobCategories = []string{
	"Frontend", "Backend", "Mobile", "AI / Data", "DevOps", "QA / Tester",
	"Product Manager", "Finance / Accounting", "Marketing", "Other",
}

// JobTypes, WorkModes and ExperienceLevels mirror the posting form.
var (
	JobTypes         = []string{"Full-time", "Part-time", "Contract", "Internship", "Remote"}
	WorkModes        = []string{"On-site", "Remote", "Hybrid"}
	ExperienceLevels = []string{"Intern", "Fresher", "Junior", "Middle", "Senior", "Lead", "Manager"}
)

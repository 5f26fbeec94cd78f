package models

import "time"

// Application is the ledger: one row per (job, candidate) pair, enforced by
// the composite unique index. CompanyID is a denormalized copy of the job's
// owner frozen at apply time. Withdrawal hard-deletes the row together with
// its status events.
type Application struct {
	BaseModel
	JobID       string `gorm:"type:uuid;not null;uniqueIndex:idx_app_job_candidate;index" json:"jobId"`
	CandidateID string `gorm:"type:uuid;not null;uniqueIndex:idx_app_job_candidate;index" json:"candidateId"`
	CompanyID   string `gorm:"type:uuid;not null;index" json:"companyId"`

	CVType      CVType `gorm:"type:varchar(10);default:'profile'" json:"cvType"`
	CVUrl       string `json:"cvUrl,omitempty"`
	CoverLetter string `json:"coverLetter,omitempty"`

	Status ApplicationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// Notes is the employer's single free-text field: each status update with
	// a note overwrites it, only the latest note survives. The per-transition
	// note lives on the status event.
	Notes string `json:"notes,omitempty"`

	AppliedAt time.Time `gorm:"default:now()" json:"appliedAt"`

	// StatusHistory is append-only: exactly one event per status write,
	// including the initial pending entry at creation.
	StatusHistory []ApplicationStatusEvent `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"statusHistory,omitempty"`

	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Candidate *User `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	Company   *User `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

type ApplicationStatusEvent struct {
	BaseModel
	ApplicationID string            `gorm:"type:uuid;not null;index" json:"-"`
	Status        ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`
	Note          string            `json:"note,omitempty"`
	ChangedAt     time.Time         `gorm:"default:now()" json:"changedAt"`
}

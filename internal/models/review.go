package models

// Review is one candidate's verdict on one company, ever: the composite
// unique index allows a single row per (company, candidate) and no endpoint
// updates or deletes reviews. Creation requires a hired application for the
// pair, checked by the service.
type Review struct {
	BaseModel
	CompanyID   string `gorm:"type:uuid;not null;uniqueIndex:idx_review_company_candidate;index" json:"companyId"`
	CandidateID string `gorm:"type:uuid;not null;uniqueIndex:idx_review_company_candidate" json:"candidateId"`
	JobID       string `gorm:"type:uuid" json:"jobId,omitempty"`

	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Title   string `gorm:"not null;size:200" json:"title"`
	Comment string `gorm:"not null;size:2000" json:"comment"`
	Pros    string `json:"pros,omitempty"`
	Cons    string `json:"cons,omitempty"`

	// Optional sub-ratings, 1-5; zero means not given.
	WorkEnvironment int `json:"workEnvironment,omitempty"`
	Salary          int `json:"salary,omitempty"`
	Benefits        int `json:"benefits,omitempty"`
	Management      int `json:"management,omitempty"`

	IsVerified bool `gorm:"default:false" json:"isVerified"`

	// IsAnonymous suppresses the author's display name on the read path; the
	// stored candidate reference is kept intact.
	IsAnonymous bool `gorm:"default:false" json:"isAnonymous"`

	Candidate *User `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	Company   *User `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

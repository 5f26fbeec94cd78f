package dto

type ApplyRequest struct {
	JobID       string `json:"jobId" validate:"required,uuid4"`
	CVType      string `json:"cvType" validate:"omitempty,oneof=profile upload"`
	CVUrl       string `json:"cvUrl" validate:"omitempty,url"`
	CoverLetter string `json:"coverLetter" validate:"omitempty,max=5000"`
}

// UpdateApplicationStatusRequest accepts only the declared ledger statuses.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing interview rejected hired"`
	Note   string `json:"note" validate:"omitempty,max=2000"`
}

// internal/transport/dto/candidate_dto.go
package dto

// --- Candidate Request DTOs ---

// CreateCandidateRequest defines the structure for submitting a candidate
// against a job. Status is not accepted; every candidate starts as
// "Enviado".
type CreateCandidateRequest struct {
	JobID     string `json:"job_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Recruiter string `json:"recruiter" validate:"required"`
	Actor     string `json:"-"`
}

// UpdateCandidateRequest defines the structure for editing a candidate.
// Status and StartDate are the fields the propagation engine watches;
// StartDate must be dd/mm/yyyy when present.
type UpdateCandidateRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=1"`
	Recruiter *string `json:"recruiter,omitempty" validate:"omitempty,min=1"`
	Status    *string `json:"status,omitempty" validate:"omitempty,min=1"`
	StartDate *string `json:"start_date,omitempty"`
	Actor     string  `json:"-"`
}

// ListCandidatesRequest defines the query filters for the candidate listing.
type ListCandidatesRequest struct {
	JobID     string `form:"job_id"`
	ClientID  string `form:"client_id"`
	Role      string `form:"role"`
	Recruiter string `form:"recruiter"`
	Status    string `form:"status"`
}

// CandidateResponse defines the standard candidate data returned to the
// API consumer. Client and Role come from the linked job at read time.
type CandidateResponse struct {
	ID        string `json:"id"`
	JobID     string `json:"job_id"`
	Client    string `json:"client,omitempty"`
	Role      string `json:"role,omitempty"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Recruiter string `json:"recruiter"`
	Status    string `json:"status"`
	StartDate string `json:"start_date,omitempty"`
}

// internal/transport/dto/job_dto.go
package dto

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for opening a new job. Status is
// not accepted on creation; every job starts as "Aberta".
type CreateJobRequest struct {
	ClientID    string `json:"client_id" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Recruiter   string `json:"recruiter" validate:"required"`
	SalaryFrom  string `json:"salary_from,omitempty"`
	SalaryTo    string `json:"salary_to,omitempty"`
	Description string `json:"description,omitempty"`
	Actor       string `json:"-"`
}

// UpdateJobRequest defines the structure for editing a job. Only non-nil
// fields are applied; Status is validated against the job status enum in
// the service layer (the values contain spaces and accents).
type UpdateJobRequest struct {
	ID          string  `json:"-"`
	ClientID    *string `json:"client_id,omitempty" validate:"omitempty,min=1"`
	Status      *string `json:"status,omitempty" validate:"omitempty,min=1"`
	Role        *string `json:"role,omitempty" validate:"omitempty,min=1"`
	Recruiter   *string `json:"recruiter,omitempty" validate:"omitempty,min=1"`
	SalaryFrom  *string `json:"salary_from,omitempty"`
	SalaryTo    *string `json:"salary_to,omitempty"`
	Description *string `json:"description,omitempty"`
	Actor       string  `json:"-"`
}

// ListJobsRequest defines the query filters for the job listing, matching
// the filter row of the jobs screen.
type ListJobsRequest struct {
	ClientID  string `form:"client_id"`
	Role      string `form:"role"`
	Recruiter string `form:"recruiter"`
	Status    string `form:"status"`
}

// JobResponse defines the standard job data returned to the API consumer.
// Client is the parent's display name, joined at read time.
type JobResponse struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	Client      string `json:"client,omitempty"`
	Status      string `json:"status"`
	OpeningDate string `json:"opening_date"`
	Role        string `json:"role"`
	Recruiter   string `json:"recruiter"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	SalaryFrom  string `json:"salary_from,omitempty"`
	SalaryTo    string `json:"salary_to,omitempty"`
	Description string `json:"description,omitempty"`
}

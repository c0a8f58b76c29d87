package models

// Date layouts used across every persisted table (Brazilian day/month/year).
const (
	DateLayout      = "02/01/2006"
	TimestampLayout = "02/01/2006 15:04:05"
)

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusOpen          JobStatus = "Aberta"
	JobStatusAwaitingStart JobStatus = "Ag. Inicio"
	JobStatusCancelled     JobStatus = "Cancelada"
	JobStatusClosed        JobStatus = "Fechada"
	JobStatusReopened      JobStatus = "Reaberta"
	JobStatusPaused        JobStatus = "Pausada"
)

// Valid reports whether the value is one of the recognized job statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusAwaitingStart, JobStatusCancelled,
		JobStatusClosed, JobStatusReopened, JobStatusPaused:
		return true
	default:
		return false
	}
}

// --- Candidate Status Enum ---
type CandidateStatus string

const (
	CandidateStatusSubmitted      CandidateStatus = "Enviado"
	CandidateStatusNotInterviewed CandidateStatus = "Não Entrevistado"
	CandidateStatusValidated      CandidateStatus = "Validado"
	CandidateStatusNotValidated   CandidateStatus = "Não Validado"
	CandidateStatusWithdrawn      CandidateStatus = "Desistência"
)

// Valid reports whether the value is one of the recognized candidate statuses.
func (s CandidateStatus) Valid() bool {
	switch s {
	case CandidateStatusSubmitted, CandidateStatusNotInterviewed,
		CandidateStatusValidated, CandidateStatusNotValidated, CandidateStatusWithdrawn:
		return true
	default:
		return false
	}
}

// --- Sales funnel ---

// LeadStages is the fixed funnel order. Stage moves walk this list one
// position at a time; there are no shortcut transitions.
var LeadStages = []string{
	"Prospect",
	"Lead Qualificado",
	"Reunião",
	"Proposta Enviada",
	"Negócio Fechado",
	"Declinado",
}

// LeadStageInitial is the stage every new lead starts at.
const LeadStageInitial = "Prospect"

// LeadStageIndex returns the funnel position of a stage, or -1 when the
// value is not a canonical stage.
func LeadStageIndex(stage string) int {
	for i, s := range LeadStages {
		if s == stage {
			return i
		}
	}
	return -1
}

// --- Audit vocabulary ---

const (
	AuditTabClients    = "Clientes"
	AuditTabJobs       = "Vagas"
	AuditTabCandidates = "Candidatos"
	AuditTabLeads      = "Comercial"
	AuditTabSystem     = "Sistema"
)

const (
	AuditActionCreate        = "Criar"
	AuditActionEdit          = "Editar"
	AuditActionDelete        = "Excluir"
	AuditActionCascadeDelete = "Exclusão em Cascata"
	AuditActionImport        = "Importar"
	AuditActionLogin         = "Login"
	AuditActionLogout        = "Logout"
	AuditActionAutoUpdate    = "Atualização Automática"
)

// Client is a customer company of the agency.
type Client struct {
	ID      string `json:"id"`
	Date    string `json:"date"` // registration date, dd/mm/yyyy
	Company string `json:"company"`
	Name    string `json:"contact_name"`
	City    string `json:"city"`
	State   string `json:"state"` // two-letter UF code
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Job is an opening ("Vaga") belonging to a client. The client link is a
// foreign-key ID; the display name is joined at read time.
type Job struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Status      JobStatus `json:"status"`
	OpeningDate string    `json:"opening_date"` // dd/mm/yyyy
	Role        string    `json:"role"`
	Recruiter   string    `json:"recruiter"`
	UpdatedAt   string    `json:"updated_at"` // dd/mm/yyyy, last manual or automatic change
	SalaryFrom  string    `json:"salary_from"`
	SalaryTo    string    `json:"salary_to"`
	Description string    `json:"description"`
}

// Candidate is a person submitted against a specific job.
type Candidate struct {
	ID        string          `json:"id"`
	JobID     string          `json:"job_id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Recruiter string          `json:"recruiter"`
	Status    CandidateStatus `json:"status"`
	StartDate string          `json:"start_date"` // dd/mm/yyyy, optional
}

// Lead is a sales-pipeline prospect ("Comercial" record).
type Lead struct {
	ID      string `json:"id"`
	Date    string `json:"date"` // dd/mm/yyyy
	Company string `json:"company"`
	City    string `json:"city"`
	State   string `json:"state"`
	Name    string `json:"contact_name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Product string `json:"product"`
	Channel string `json:"channel"`
	Status  string `json:"status"`
}

// AuditEntry is one row of the append-only action log. Entries are never
// edited or deleted once written.
type AuditEntry struct {
	Timestamp string `json:"timestamp"` // dd/mm/yyyy HH:MM:SS
	Actor     string `json:"actor"`
	Tab       string `json:"tab"`
	Action    string `json:"action"`
	ItemID    string `json:"item_id"`
	Field     string `json:"field"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
	Detail    string `json:"detail"`
}

// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// ClientHandlerInterface defines the methods needed by the client routes.
type ClientHandlerInterface interface {
	GetClients(c *gin.Context)
	GetClientByID(c *gin.Context)
	CreateClient(c *gin.Context)
	UpdateClient(c *gin.Context)
	DeleteClient(c *gin.Context)
	ImportClients(c *gin.Context)
	ExportClients(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	GetJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
	ImportJobs(c *gin.Context)
	ExportJobs(c *gin.Context)
}

// CandidateHandlerInterface defines the methods needed by the candidate routes.
type CandidateHandlerInterface interface {
	GetCandidates(c *gin.Context)
	GetCandidateByID(c *gin.Context)
	CreateCandidate(c *gin.Context)
	UpdateCandidate(c *gin.Context)
	DeleteCandidate(c *gin.Context)
	ImportCandidates(c *gin.Context)
	ExportCandidates(c *gin.Context)
}

// LeadHandlerInterface defines the methods needed by the lead routes.
type LeadHandlerInterface interface {
	GetLeads(c *gin.Context)
	GetFunnel(c *gin.Context)
	GetLeadByID(c *gin.Context)
	CreateLead(c *gin.Context)
	UpdateLead(c *gin.Context)
	MoveLeadStage(c *gin.Context)
	DeleteLead(c *gin.Context)
	ImportLeads(c *gin.Context)
	ExportLeads(c *gin.Context)
}

// AuditHandlerInterface defines the methods needed by the audit routes.
type AuditHandlerInterface interface {
	GetAuditLog(c *gin.Context)
	ExportAuditLog(c *gin.Context)
}

// UserHandlerInterface defines the methods needed by the auth routes.
type UserHandlerInterface interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ ClientHandlerInterface = (*ClientHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ CandidateHandlerInterface = (*CandidateHandler)(nil)
var _ LeadHandlerInterface = (*LeadHandler)(nil)
var _ AuditHandlerInterface = (*AuditHandler)(nil)
var _ UserHandlerInterface = (*UserHandler)(nil)

package handlers

import (
	"net/http"

	"parma-backoffice/internal/services"
	"parma-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CandidateHandler holds the service dependency for candidate operations
type CandidateHandler struct {
	service   services.CandidateService
	validator *validator.Validate
}

// NewCandidateHandler creates a new CandidateHandler with the given service
func NewCandidateHandler(service services.CandidateService, validate *validator.Validate) *CandidateHandler {
	return &CandidateHandler{service: service, validator: validate}
}

// GetCandidates godoc
// @Summary      List candidates
// @Description  Retrieves candidates with the job's client and role joined in, optionally filtered by job, client, role, recruiter or status.
// @Tags         candidates
// @Produce      json
// @Param        job_id    query   string false "Exact job ID"
// @Param        client_id query   string false "Exact client ID (via the job link)"
// @Param        role      query   string false "Role name (case-insensitive)"
// @Param        recruiter query   string false "Recruiter name (case-insensitive)"
// @Param        status    query   string false "Exact candidate status"
// @Success      200  {array}   dto.CandidateResponse "Successfully retrieved list of candidates"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /candidates [get]
func (h *CandidateHandler) GetCandidates(c *gin.Context) {
	var req dto.ListCandidatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	candidates, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "retrieve candidates")
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// GetCandidateByID godoc
// @Summary      Get a candidate by ID
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  dto.CandidateResponse "Successfully retrieved candidate"
// @Failure      404  {object}  map[string]string{error=string} "Candidate Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetCandidateByID(c *gin.Context) {
	candidate, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "retrieve candidate")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// CreateCandidate godoc
// @Summary      Submit a new candidate
// @Description  Registers a candidate against an existing job opening. New candidates start as "Enviado" with no start date.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate body  dto.CreateCandidateRequest true "Candidate to submit"
// @Success      201  {object}  dto.CandidateResponse "Candidate created successfully"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string{error=string} "Job Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /candidates [post]
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req dto.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.Actor = actorFromContext(c)

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "create candidate")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCandidate godoc
// @Summary      Update an existing candidate
// @Description  Edits candidate fields and then runs job-status propagation: a validated candidate moves the linked job to "Ag. Inicio" or "Fechada", and reverting validation reopens it. Propagated job changes are logged as automatic updates.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id        path  string                     true "Candidate ID"
// @Param        candidate body  dto.UpdateCandidateRequest true "Fields to update"
// @Success      200  {object}  dto.CandidateResponse "Candidate updated successfully"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string{error=string} "Candidate Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	var req dto.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = c.Param("id")
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.Actor = actorFromContext(c)

	updated, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "update candidate")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCandidate godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      204  {object}  nil "Candidate deleted successfully"
// @Failure      404  {object}  map[string]string{error=string} "Candidate Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), actorFromContext(c)); err != nil {
		respondServiceError(c, err, "delete candidate")
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportCandidates godoc
// @Summary      Import candidates from a file
// @Description  Merges rows from an uploaded CSV or Excel file with an exact column-set match; duplicate IDs are skipped.
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData  file true "CSV or XLSX file"
// @Success      200  {object}  map[string]int{added=int} "Number of rows merged"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - column mismatch or unreadable file"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /candidates/import [post]
func (h *CandidateHandler) ImportCandidates(c *gin.Context) {
	filename, file, err := openUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	added, err := h.service.Import(c.Request.Context(), actorFromContext(c), filename, file)
	if err != nil {
		respondServiceError(c, err, "import candidates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

// ExportCandidates godoc
// @Summary      Export the candidate table
// @Produce      text/csv
// @Tags         candidates
// @Success      200  {string}  string "CSV payload"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /candidates/export [get]
func (h *CandidateHandler) ExportCandidates(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "export candidates")
		return
	}
	writeCSVAttachment(c, "candidatos.csv", data)
}

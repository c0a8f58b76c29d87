package handlers

import (
	"net/http"

	"parma-backoffice/internal/services"
	"parma-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// LeadHandler holds the service dependency for sales-pipeline operations
type LeadHandler struct {
	service   services.LeadService
	validator *validator.Validate
}

// NewLeadHandler creates a new LeadHandler with the given service
func NewLeadHandler(service services.LeadService, validate *validator.Validate) *LeadHandler {
	return &LeadHandler{service: service, validator: validate}
}

// GetLeads godoc
// @Summary      List sales leads
// @Tags         leads
// @Produce      json
// @Param        status query    string false "Exact funnel stage"
// @Success      200  {array}   models.Lead "Successfully retrieved list of leads"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /leads [get]
func (h *LeadHandler) GetLeads(c *gin.Context) {
	var req dto.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	leads, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "retrieve leads")
		return
	}
	c.JSON(http.StatusOK, leads)
}

// GetFunnel godoc
// @Summary      Funnel board
// @Description  Returns every lead grouped by funnel stage in the fixed stage order, for the Kanban view.
// @Tags         leads
// @Produce      json
// @Success      200  {array}   dto.FunnelColumn "Stages with their leads"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /leads/funnel [get]
func (h *LeadHandler) GetFunnel(c *gin.Context) {
	columns, err := h.service.Funnel(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "build funnel")
		return
	}
	c.JSON(http.StatusOK, columns)
}

// GetLeadByID godoc
// @Summary      Get a lead by ID
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  models.Lead "Successfully retrieved lead"
// @Failure      404  {object}  map[string]string{error=string} "Lead Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /leads/{id} [get]
func (h *LeadHandler) GetLeadByID(c *gin.Context) {
	lead, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "retrieve lead")
		return
	}
	c.JSON(http.StatusOK, lead)
}

// CreateLead godoc
// @Summary      Register a new lead
// @Description  Adds a sales prospect. Every new lead starts at the "Prospect" stage with today's date.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead body      dto.CreateLeadRequest true "Lead to register"
// @Success      201  {object}  models.Lead "Lead created successfully"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req dto.CreateLeadRequest
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
		respondServiceError(c, err, "create lead")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateLead godoc
// @Summary      Update an existing lead
// @Description  Edits lead fields. Direct status edits may jump to any canonical stage; single-step walks go through the move endpoint.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id   path      string                true "Lead ID"
// @Param        lead body      dto.UpdateLeadRequest true "Fields to update"
// @Success      200  {object}  models.Lead "Lead updated successfully"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string{error=string} "Lead Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var req dto.UpdateLeadRequest
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
		respondServiceError(c, err, "update lead")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// MoveLeadStage godoc
// @Summary      Move a lead through the funnel
// @Description  Walks the lead exactly one stage forward or backward. Moves past either end of the funnel are rejected and leave the lead untouched.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id   path      string               true "Lead ID"
// @Param        move body      dto.MoveStageRequest true "Move direction"
// @Success      200  {object}  models.Lead "Lead moved successfully"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - move out of bounds"
// @Failure      404  {object}  map[string]string{error=string} "Lead Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /leads/{id}/move [post]
func (h *LeadHandler) MoveLeadStage(c *gin.Context) {
	var req dto.MoveStageRequest
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

	moved, err := h.service.MoveStage(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "move lead")
		return
	}
	c.JSON(http.StatusOK, moved)
}

// DeleteLead godoc
// @Summary      Delete a lead
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead ID"
// @Success      204  {object}  nil "Lead deleted successfully"
// @Failure      404  {object}  map[string]string{error=string} "Lead Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), actorFromContext(c)); err != nil {
		respondServiceError(c, err, "delete lead")
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportLeads godoc
// @Summary      Import leads from a file
// @Description  Merges rows from an uploaded CSV or Excel file with an exact column-set match; duplicate IDs are skipped.
// @Tags         leads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData  file true "CSV or XLSX file"
// @Success      200  {object}  map[string]int{added=int} "Number of rows merged"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - column mismatch or unreadable file"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /leads/import [post]
func (h *LeadHandler) ImportLeads(c *gin.Context) {
	filename, file, err := openUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	added, err := h.service.Import(c.Request.Context(), actorFromContext(c), filename, file)
	if err != nil {
		respondServiceError(c, err, "import leads")
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

// ExportLeads godoc
// @Summary      Export the lead table
// @Produce      text/csv
// @Tags         leads
// @Success      200  {string}  string "CSV payload"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /leads/export [get]
func (h *LeadHandler) ExportLeads(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "export leads")
		return
	}
	writeCSVAttachment(c, "comercial.csv", data)
}

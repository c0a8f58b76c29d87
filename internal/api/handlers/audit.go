package handlers

import (
	"net/http"

	"parma-backoffice/internal/services"
	"parma-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// AuditHandler holds the service dependency for reading the action log
type AuditHandler struct {
	service services.AuditService
}

// NewAuditHandler creates a new AuditHandler with the given service
func NewAuditHandler(service services.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// GetAuditLog godoc
// @Summary      Read the action log
// @Description  Returns the append-only action log, newest first, optionally narrowed by tab and action.
// @Tags         audit
// @Produce      json
// @Param        tab    query    string false "Tab name (Clientes, Vagas, Candidatos, Comercial, Sistema)"
// @Param        action query    string false "Action name (Criar, Editar, Excluir, ...)"
// @Success      200  {array}   models.AuditEntry "Successfully retrieved the log"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /audit [get]
func (h *AuditHandler) GetAuditLog(c *gin.Context) {
	var req dto.ListAuditRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "retrieve audit log")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ExportAuditLog godoc
// @Summary      Export the action log
// @Produce      text/csv
// @Tags         audit
// @Success      200  {string}  string "CSV payload"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /audit/export [get]
func (h *AuditHandler) ExportAuditLog(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "export audit log")
		return
	}
	writeCSVAttachment(c, "logs.csv", data)
}

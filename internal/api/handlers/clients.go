package handlers

import (
	"net/http"

	"parma-backoffice/internal/services"
	"parma-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ClientHandler holds the service dependency for client operations
type ClientHandler struct {
	service   services.ClientService
	validator *validator.Validate
}

// NewClientHandler creates a new ClientHandler with the given service
func NewClientHandler(service services.ClientService, validate *validator.Validate) *ClientHandler {
	return &ClientHandler{service: service, validator: validate}
}

// GetClients godoc
// @Summary      List clients
// @Description  Retrieves all registered client companies, optionally filtered by company name substring.
// @Tags         clients
// @Produce      json
// @Param        company query     string false "Company name filter (case-insensitive substring)"
// @Success      200  {array}   models.Client "Successfully retrieved list of clients"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /clients [get]
func (h *ClientHandler) GetClients(c *gin.Context) {
	var req dto.ListClientsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	clients, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "retrieve clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClientByID godoc
// @Summary      Get a client by ID
// @Description  Retrieves details for a specific client.
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  models.Client "Successfully retrieved client"
// @Failure      404  {object}  map[string]string{error=string} "Client Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	client, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "retrieve client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient godoc
// @Summary      Register a new client
// @Description  Adds a client company. The registration date and ID are assigned by the system.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client body      dto.CreateClientRequest true "Client to register"
// @Success      201  {object}  models.Client "Client created successfully"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
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
		respondServiceError(c, err, "create client")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateClient godoc
// @Summary      Update an existing client
// @Description  Edits client fields; every changed field lands in the action log.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id     path      string                  true "Client ID"
// @Param        client body      dto.UpdateClientRequest true "Fields to update"
// @Success      200  {object}  models.Client "Client updated successfully"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string{error=string} "Client Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req dto.UpdateClientRequest
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
		respondServiceError(c, err, "update client")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClient godoc
// @Summary      Delete a client
// @Description  Removes a client and, in cascade, its job openings and their candidates.
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      204  {object}  nil "Client deleted successfully"
// @Failure      404  {object}  map[string]string{error=string} "Client Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), actorFromContext(c)); err != nil {
		respondServiceError(c, err, "delete client")
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportClients godoc
// @Summary      Import clients from a file
// @Description  Merges rows from an uploaded CSV or Excel file. The column set must match the client table exactly; rows whose ID already exists are skipped.
// @Tags         clients
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData  file true "CSV or XLSX file"
// @Success      200  {object}  map[string]int{added=int} "Number of rows merged"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - column mismatch or unreadable file"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /clients/import [post]
func (h *ClientHandler) ImportClients(c *gin.Context) {
	filename, file, err := openUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	added, err := h.service.Import(c.Request.Context(), actorFromContext(c), filename, file)
	if err != nil {
		respondServiceError(c, err, "import clients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

// ExportClients godoc
// @Summary      Export the client table
// @Description  Downloads the full client table as CSV.
// @Tags         clients
// @Produce      text/csv
// @Success      200  {string}  string "CSV payload"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /clients/export [get]
func (h *ClientHandler) ExportClients(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "export clients")
		return
	}
	writeCSVAttachment(c, "clientes.csv", data)
}

package handlers

import (
	"net/http"

	"parma-backoffice/internal/services"
	"parma-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds the service dependency for job-opening operations
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler with the given service
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// GetJobs godoc
// @Summary      List job openings
// @Description  Retrieves job openings with the client display name joined in, optionally filtered by client, role, recruiter or status.
// @Tags         jobs
// @Produce      json
// @Param        client_id query   string false "Exact client ID"
// @Param        role      query   string false "Role name (case-insensitive)"
// @Param        recruiter query   string false "Recruiter name (case-insensitive)"
// @Param        status    query   string false "Exact job status"
// @Success      200  {array}   dto.JobResponse "Successfully retrieved list of jobs"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) GetJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	jobs, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "retrieve jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobByID godoc
// @Summary      Get a job opening by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  dto.JobResponse "Successfully retrieved job"
// @Failure      404  {object}  map[string]string{error=string} "Job Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	job, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "retrieve job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Open a new job
// @Description  Registers a job opening against an existing client. New jobs start as "Aberta" with today's opening date.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      dto.CreateJobRequest true "Job to open"
// @Success      201  {object}  dto.JobResponse "Job created successfully"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string{error=string} "Client Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
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
		respondServiceError(c, err, "create job")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateJob godoc
// @Summary      Update an existing job
// @Description  Edits job fields; status values outside the canonical set are rejected and every change lands in the action log.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string               true "Job ID"
// @Param        job  body      dto.UpdateJobRequest true "Fields to update"
// @Success      200  {object}  dto.JobResponse "Job updated successfully"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string{error=string} "Job Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
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
		respondServiceError(c, err, "update job")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Removes a job opening and, in cascade, its candidates.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      204  {object}  nil "Job deleted successfully"
// @Failure      404  {object}  map[string]string{error=string} "Job Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), actorFromContext(c)); err != nil {
		respondServiceError(c, err, "delete job")
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportJobs godoc
// @Summary      Import jobs from a file
// @Description  Merges rows from an uploaded CSV or Excel file with an exact column-set match; duplicate IDs are skipped.
// @Tags         jobs
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData  file true "CSV or XLSX file"
// @Success      200  {object}  map[string]int{added=int} "Number of rows merged"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - column mismatch or unreadable file"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/import [post]
func (h *JobHandler) ImportJobs(c *gin.Context) {
	filename, file, err := openUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	added, err := h.service.Import(c.Request.Context(), actorFromContext(c), filename, file)
	if err != nil {
		respondServiceError(c, err, "import jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

// ExportJobs godoc
// @Summary      Export the job table
// @Produce      text/csv
// @Tags         jobs
// @Success      200  {string}  string "CSV payload"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/export [get]
func (h *JobHandler) ExportJobs(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "export jobs")
		return
	}
	writeCSVAttachment(c, "vagas.csv", data)
}

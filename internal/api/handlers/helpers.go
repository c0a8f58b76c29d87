package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"

	"parma-backoffice/internal/api/middleware"
	"parma-backoffice/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorsMap := make(map[string]string)
	for _, fieldError := range errs {
		fieldName := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "len":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be exactly %s characters long", fieldName, fieldError.Param())
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		default:
			errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		}
	}
	return errorsMap
}

// respondValidationError writes the 400 payload for binding-level failures.
func respondValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed: " + err.Error()})
}

// respondServiceError maps the service error taxonomy to HTTP statuses.
func respondServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidStage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("Error %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// actorFromContext resolves the authenticated username for audit
// attribution. Unauthenticated routes fall back to an empty actor, which
// the audit layer stamps as "admin".
func actorFromContext(c *gin.Context) string {
	username, err := middleware.GetUserFromContext(c)
	if err != nil {
		return ""
	}
	return username
}

// openUpload fetches the multipart "file" field from an import request.
func openUpload(c *gin.Context) (string, multipart.File, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("missing uploaded file: %w", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, fmt.Errorf("could not open uploaded file: %w", err)
	}
	return fileHeader.Filename, file, nil
}

// writeCSVAttachment streams an exported table as a CSV download.
func writeCSVAttachment(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/eventure/events-api/pkg/errors"
)

// The wire contract is flat: success payloads are returned as-is,
// failures as {code, message} and validation failures as
// {fieldErrors: {field: [message]}}.

// JSON sends a success response.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Error sends an error response converting the error to the common structure.
// A *FieldErrors is rendered as the field-keyed 400 shape.
func Error(c *gin.Context, err error) {
	var fieldErrs *appErrors.FieldErrors
	if errors.As(err, &fieldErrs) {
		FieldErrors(c, fieldErrs)
		return
	}

	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, appErr)
}

// FieldErrors sends the per-field validation failure shape.
func FieldErrors(c *gin.Context, errs *appErrors.FieldErrors) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusBadRequest, errs)
}

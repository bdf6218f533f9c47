package validation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// BindAndValidate binds the JSON body into `out` and runs validation.
// If either step fails it writes a 400 response and returns an error
// for the handler to short-circuit on.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid_request_body",
			"msg":   err.Error(),
		})
		return err
	}

	if err := v.Struct(out); err != nil {
		WriteFieldErrors(c, err)
		return err
	}
	return nil
}

// WriteFieldErrors writes the 400 response for a failed validation,
// naming each offending field and constraint.
func WriteFieldErrors(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "validation_failed",
		"fields": FieldErrors(err),
	})
}

// IsFieldError reports whether err carries validator field errors, so
// handlers can map it to a 400 instead of a 500.
func IsFieldError(err error) bool {
	var ve validatorv10.ValidationErrors
	return errors.As(err, &ve)
}

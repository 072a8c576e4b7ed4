package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidationError carries field-level messages and renders as the 422 body.
type ValidationError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func NewValidation() *ValidationError {
	return &ValidationError{
		Message: "The given data was invalid.",
		Errors:  map[string][]string{},
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Errors[field] = append(e.Errors[field], message)
	return e
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

func WriteValidation(c *gin.Context, ve *ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, ve)
}

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrNotFound_Error(t *testing.T) {
	err := &ErrNotFound{Entity: "template", ID: "12"}
	assert.Equal(t, "template not found with ID: 12", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("bad input")
	assert.Equal(t, "validation error: bad input", err.Error())
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsValidationError(errors.New("other")))
}

func TestFieldError(t *testing.T) {
	err := &FieldError{Field: "templateReferenceId", Key: "notification.templateReferenceIdNotEmpty"}
	assert.Contains(t, err.Error(), "templateReferenceId")
	assert.True(t, IsValidationError(err))
}

func TestRequestError_Error(t *testing.T) {
	withMessage := &RequestError{Method: "POST", Path: "/p/templates/new", StatusCode: 400, Message: "name taken"}
	assert.Equal(t, "POST /p/templates/new: status 400: name taken", withMessage.Error())

	bare := &RequestError{Method: "GET", Path: "/p/config", StatusCode: 502}
	assert.Equal(t, "GET /p/config: unexpected status 502", bare.Error())

	var target *RequestError
	assert.True(t, errors.As(fmt.Errorf("save: %w", withMessage), &target))
	assert.Equal(t, 400, target.StatusCode)
}

func TestLegacyConversionError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &LegacyConversionError{Err: cause}

	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.ErrorIs(t, err, cause)
}

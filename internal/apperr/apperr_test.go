package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNormalizePassesCodedErrorsThrough(t *testing.T) {
	sentinel := NotFound("household not found")

	got := Normalize(fmt.Errorf("load household: %w", sentinel))

	assert.Same(t, sentinel, got)
}

func TestNormalizeMapsRecordNotFound(t *testing.T) {
	got := Normalize(gorm.ErrRecordNotFound)

	assert.Equal(t, CodeNotFound, got.Code)
}

func TestNormalizeWrapsArbitraryErrorAsUpstream(t *testing.T) {
	cause := errors.New("connection refused")

	got := Normalize(cause)

	assert.Equal(t, CodeUpstream, got.Code)
	assert.Equal(t, "connection refused", got.Message)
	assert.Equal(t, cause, got.Details)
}

func TestNormalizeNil(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}

func TestErrorDefaultsMessage(t *testing.T) {
	err := &Error{Code: CodeUnknown}

	assert.Equal(t, "an unknown error occurred", err.Error())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeValidation, CodeOf(Validation("email is required")))
	assert.Equal(t, CodeUnauthorized, CodeOf(fmt.Errorf("toggle: %w", Unauthorized("email mismatch"))))
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("gone")))
	assert.False(t, IsNotFound(Validation("bad")))
}

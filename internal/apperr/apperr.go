package apperr

import (
	"errors"

	"gorm.io/gorm"
)

// Code classifies an operation failure. Every error that crosses a
// repository or service boundary carries exactly one code.
type Code string

const (
	CodeNotFound     Code = "not_found"
	CodeValidation   Code = "validation"
	CodeUnauthorized Code = "unauthorized"
	CodeUpstream     Code = "upstream"
	CodeUnknown      Code = "unknown"
)

const unknownMessage = "an unknown error occurred"

type Error struct {
	Code    Code
	Message string
	Details any
}

func (e *Error) Error() string {
	if e.Message == "" {
		return unknownMessage
	}
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func Validation(message string) *Error {
	return New(CodeValidation, message)
}

func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, message)
}

func Upstream(err error) *Error {
	if err == nil {
		return New(CodeUpstream, unknownMessage)
	}
	return &Error{Code: CodeUpstream, Message: err.Error(), Details: err}
}

func Unknown(err error) *Error {
	if err == nil {
		return New(CodeUnknown, unknownMessage)
	}
	return &Error{Code: CodeUnknown, Message: err.Error(), Details: err}
}

// Normalize maps whatever a backend produced to a coded Error. Coded
// errors pass through untouched so sentinel identity survives.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("record not found")
	}
	return Upstream(err)
}

// CodeOf reports the code carried by err, or CodeUnknown for uncoded errors.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

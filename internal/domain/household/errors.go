package household

import "household-app-go/internal/apperr"

var (
	ErrHouseholdNotFound = apperr.NotFound("household not found")
	ErrMemberNotFound    = apperr.NotFound("member not found")
	ErrNameRequired      = apperr.Validation("household name is required")
	ErrMemberName        = apperr.Validation("member name is required")
	ErrInvalidRole       = apperr.Validation("invalid member role")
)

package trip

import "household-app-go/internal/apperr"

var (
	ErrTripNotFound    = apperr.NotFound("trip not found")
	ErrNameRequired    = apperr.Validation("trip name is required")
	ErrInvalidDates    = apperr.Validation("trip end date precedes start date")
	ErrRecordNotFound  = apperr.NotFound("trip record not found")
	ErrLabelRequired   = apperr.Validation("label is required")
	ErrMemberIDMissing = apperr.Validation("member id is required")
)

package handler

import (
	"encoding/json"
	"net/http"

	"household-app-go/internal/apperr"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeDomainError maps a coded domain error onto the HTTP envelope.
// Client-caused failures are logged as business errors, everything else
// as internal ones.
func (h *Handlers) writeDomainError(w http.ResponseWriter, scope string, err error, args ...any) {
	coded := apperr.Normalize(err)
	switch coded.Code {
	case apperr.CodeNotFound:
		h.log.BusinessError(scope+": not found", err, args...)
		writeError(w, http.StatusNotFound, "not_found", coded.Message)
	case apperr.CodeValidation:
		h.log.BusinessError(scope+": invalid request", err, args...)
		writeError(w, http.StatusBadRequest, "invalid_request", coded.Message)
	case apperr.CodeUnauthorized:
		h.log.BusinessError(scope+": forbidden", err, args...)
		writeError(w, http.StatusForbidden, "forbidden", coded.Message)
	case apperr.CodeUpstream:
		h.log.InternalError(scope+": upstream failure", err, args...)
		writeError(w, http.StatusBadGateway, "upstream_error", "upstream error")
	default:
		h.log.InternalError(scope+": internal error", err, args...)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

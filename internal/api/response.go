package api

import (
	"encoding/json"
	"net/http"

	"maestros/internal/validate"
)

type errorResponse struct {
	Error  string                `json:"error"`
	Errors []validate.FieldError `json:"errors,omitempty"`
}

func sendJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, errorResponse{Error: message})
}

// sendValidationError возвращает 400 со списком всех нарушений по полям.
func sendValidationError(w http.ResponseWriter, errs []validate.FieldError) {
	sendJSON(w, http.StatusBadRequest, errorResponse{
		Error:  "Datos inválidos",
		Errors: errs,
	})
}

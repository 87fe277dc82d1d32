package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"maestros/internal/auth"
	"maestros/internal/models"
	"maestros/internal/validate"
)

// handleLogin обрабатывает запрос на вход в систему
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	username := validate.EscapeHTML(strings.TrimSpace(req.Username))
	password := strings.TrimSpace(req.Password)

	var errs []validate.FieldError
	if username == "" {
		errs = append(errs, validate.FieldError{Field: "username", Reason: "Invalid value"})
	}
	if password == "" {
		errs = append(errs, validate.FieldError{Field: "password", Reason: "Invalid value"})
	}
	if len(errs) > 0 {
		sendValidationError(w, errs)
		return
	}

	if !s.creds.Check(username, password) {
		sendError(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	token, err := auth.GenerateToken(username, s.secret, s.tokenTTL)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error al generar el token")
		return
	}

	sendJSON(w, http.StatusOK, models.LoginResponse{Token: token, Username: username})
}

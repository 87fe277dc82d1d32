package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"maestros/internal/models"
	"maestros/internal/store"
	"maestros/internal/validate"
)

func (s *Server) handleListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := s.store.List()
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error al leer los datos")
		return
	}

	sendJSON(w, http.StatusOK, teachers)
}

func (s *Server) handleGetTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, http.StatusNotFound, "Maestro no encontrado")
		return
	}

	teacher, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Maestro no encontrado")
			return
		}
		sendError(w, http.StatusInternalServerError, "Error al leer los datos")
		return
	}

	sendJSON(w, http.StatusOK, teacher)
}

func (s *Server) handleCreateTeacher(w http.ResponseWriter, r *http.Request) {
	var input models.Teacher
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	clean, errs := validate.Teacher(input)
	if len(errs) > 0 {
		sendValidationError(w, errs)
		return
	}

	teacher, err := s.store.Create(clean)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error al guardar los datos")
		return
	}

	sendJSON(w, http.StatusCreated, teacher)
}

func (s *Server) handleUpdateTeacher(w http.ResponseWriter, r *http.Request) {
	var input models.Teacher
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	// Поля проверяются до проверки существования записи: запрос с
	// неверными полями и несуществующим id получает 400, а не 404.
	clean, errs := validate.Teacher(input)
	if len(errs) > 0 {
		sendValidationError(w, errs)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, http.StatusNotFound, "Maestro no encontrado")
		return
	}

	teacher, err := s.store.Update(id, clean)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Maestro no encontrado")
			return
		}
		sendError(w, http.StatusInternalServerError, "Error al actualizar los datos")
		return
	}

	sendJSON(w, http.StatusOK, teacher)
}

func (s *Server) handleDeleteTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, http.StatusNotFound, "Maestro no encontrado")
		return
	}

	if err := s.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Maestro no encontrado")
			return
		}
		sendError(w, http.StatusInternalServerError, "Error al eliminar los datos")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "Maestro eliminado exitosamente"})
}

package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"maestros/internal/auth"
	"maestros/internal/store"
)

// Server связывает хранилище записей и параметры аутентификации
// с HTTP-обработчиками.
type Server struct {
	store    store.TeacherStore
	creds    auth.Credentials
	secret   []byte
	tokenTTL time.Duration
}

func NewServer(st store.TeacherStore, creds auth.Credentials, secret []byte, tokenTTL time.Duration) *Server {
	return &Server{
		store:    st,
		creds:    creds,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// SetupRouter настраивает маршруты для API
func (s *Server) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		// Публичные маршруты (без аутентификации)
		r.Post("/login", s.handleLogin)

		// Защищенные маршруты (с аутентификацией)
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Route("/teachers", func(r chi.Router) {
				r.Get("/", s.handleListTeachers)
				r.Post("/", s.handleCreateTeacher)
				r.Get("/{id}", s.handleGetTeacher)
				r.Put("/{id}", s.handleUpdateTeacher)
				r.Delete("/{id}", s.handleDeleteTeacher)
			})
		})
	})

	return r
}

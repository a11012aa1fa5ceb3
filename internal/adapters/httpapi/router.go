package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the application HTTP router.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ptas", http.StatusFound)
	})

	r.Mount("/ptas", s.Pages("/ptas"))
	r.Mount("/api/ptas", s.API())
	return r
}

// Pages returns the HTML form UI. base is the path the handler is mounted at
// and prefixes every link and redirect it emits.
func (s *Server) Pages(base string) http.Handler {
	h := &pages{Server: s, base: base}
	r := chi.NewRouter()
	r.Use(middleware.SetHeader("Content-Type", "text/html; charset=utf-8"))

	r.Get("/", h.list)
	r.Get("/add", h.addForm)
	r.Post("/add", h.add)
	r.Get("/{id}", h.view)
	r.Get("/{id}/edit", h.editForm)
	r.Post("/{id}/edit", h.edit)
	r.Get("/{id}/delete", h.delete)
	return r
}

// API returns the JSON API handler.
func (s *Server) API() http.Handler {
	h := &api{Server: s}
	r := chi.NewRouter()

	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes registers the page routes. Paths follow the original browser
// routes so existing bookmarks keep working.
//
//	GET  /                   list
//	GET  /book/{id}          details
//	POST /book/{id}/delete   delete
//	GET  /create             empty form
//	POST /create             create
//	GET  /edit/{id}          prefilled form
//	POST /edit/{id}          update
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Handle("/static/*", staticFiles())

	r.Get("/", h.ListBooks)

	r.Route("/book/{id}", func(r chi.Router) {
		r.Get("/", h.ShowBook)
		r.Post("/delete", h.DeleteBook)
	})

	r.Get("/create", h.NewBookForm)
	r.Post("/create", h.CreateBook)

	r.Get("/edit/{id}", h.EditBookForm)
	r.Post("/edit/{id}", h.UpdateBook)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		data := NewTemplateData(r, "Page not found").Set("Error", "The page you requested does not exist")
		h.render(w, http.StatusNotFound, "error", data)
	})

	return r
}

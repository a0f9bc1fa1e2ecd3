package web

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bookweb/internal/book"
	"bookweb/internal/platform/bookapi"
)

// Handler serves the book pages.
type Handler struct {
	books *book.Service
	pages map[string]*template.Template
}

// NewHandler parses the embedded templates once.
func NewHandler(books *book.Service) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Handler{books: books, pages: pages}, nil
}

// ListBooks handles GET /
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, "Books")

	books, err := h.books.List(r.Context())
	if err != nil {
		data.Set("Error", err.Error()).Set("Books", []book.Book(nil))
		h.render(w, statusFor(err), "list", data)
		return
	}

	h.render(w, http.StatusOK, "list", data.Set("Books", books))
}

// ShowBook handles GET /book/{id}
func (h *Handler) ShowBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	b, err := h.books.Get(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, http.StatusOK, "view", NewTemplateData(r, "Book Details").Set("Book", b))
}

// NewBookForm handles GET /create
func (h *Handler) NewBookForm(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, "Create Book").WithForm("/create", book.Form{}, nil)
	h.render(w, http.StatusOK, "form", data)
}

// CreateBook handles POST /create
func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	f, ok := h.readForm(w, r)
	if !ok {
		return
	}

	if _, err := h.books.Create(r.Context(), f); err != nil {
		h.renderFormError(w, r, "Create Book", "/create", f, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditBookForm handles GET /edit/{id}
func (h *Handler) EditBookForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	b, err := h.books.Get(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := NewTemplateData(r, "Edit Book").WithForm(editPath(id), book.FormFromBook(b), nil)
	h.render(w, http.StatusOK, "form", data)
}

// UpdateBook handles POST /edit/{id}
func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}
	f, ok := h.readForm(w, r)
	if !ok {
		return
	}

	if _, err := h.books.Update(r.Context(), id, f); err != nil {
		if bookapi.IsNotFound(err) {
			h.renderError(w, r, err)
			return
		}
		h.renderFormError(w, r, "Edit Book", editPath(id), f, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteBook handles POST /book/{id}/delete
func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	err := h.books.Delete(r.Context(), id)
	if err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// Show the list as the server now has it, with the failure on top.
	data := NewTemplateData(r, "Books")
	message := err.Error()
	books, listErr := h.books.List(r.Context())
	if listErr != nil {
		message += "; " + listErr.Error()
	}
	data.Set("Error", message).Set("Books", books)
	h.render(w, statusFor(err), "list", data)
}

func (h *Handler) bookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		data := NewTemplateData(r, "Invalid Request").Set("Error", "Invalid book id")
		h.render(w, http.StatusBadRequest, "error", data)
		return 0, false
	}
	return id, true
}

func (h *Handler) readForm(w http.ResponseWriter, r *http.Request) (book.Form, bool) {
	if err := r.ParseForm(); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		data := NewTemplateData(r, "Invalid Request").Set("Error", "Could not read the submitted form")
		h.render(w, status, "error", data)
		return book.Form{}, false
	}

	return book.Form{
		Title:       r.PostForm.Get("title"),
		Author:      r.PostForm.Get("author"),
		Description: r.PostForm.Get("description"),
	}, true
}

// renderFormError puts the form back in front of the user with whatever went
// wrong: local violations inline, server rejections as message plus inline
// field errors, anything else as page error.
func (h *Handler) renderFormError(w http.ResponseWriter, r *http.Request, title, action string, f book.Form, err error) {
	data := NewTemplateData(r, title)

	var violations book.Violations
	var rejected *bookapi.ValidationError
	switch {
	case errors.As(err, &violations):
		data.WithForm(action, f, violations.Messages())
	case errors.As(err, &rejected):
		data.WithForm(action, f, book.Violations(nil).Merge(rejected.Fields).Messages())
		data.Set("Error", rejected.Message)
	default:
		data.WithForm(action, f, nil)
		data.Set("Error", err.Error())
	}

	h.render(w, statusFor(err), "form", data)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	title := "Something went wrong"
	if bookapi.IsNotFound(err) {
		title = "Book not found"
	}
	data := NewTemplateData(r, title).Set("Error", err.Error())
	h.render(w, statusFor(err), "error", data)
}

func statusFor(err error) int {
	var violations book.Violations
	var fetchErr *bookapi.FetchError
	switch {
	case bookapi.IsNotFound(err):
		return http.StatusNotFound
	case bookapi.IsValidation(err), errors.As(err, &violations):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func editPath(id int64) string {
	return "/edit/" + strconv.FormatInt(id, 10)
}

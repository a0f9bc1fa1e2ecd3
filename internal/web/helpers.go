package web

import (
	"net/http"

	"bookweb/internal/book"
	"bookweb/internal/httpx"
)

// TemplateData holds values shared by every page template.
type TemplateData map[string]interface{}

// NewTemplateData starts page data with the defaults the layout relies on.
func NewTemplateData(r *http.Request, pageTitle string) TemplateData {
	return TemplateData{
		"PageTitle": pageTitle,
		"RequestID": httpx.RequestIDFrom(r),
		"Error":     "",
	}
}

// Set stores a value for the template.
func (t TemplateData) Set(key string, value interface{}) TemplateData {
	t[key] = value
	return t
}

// WithForm adds everything the book form template needs.
func (t TemplateData) WithForm(action string, f book.Form, errs map[string]string) TemplateData {
	if errs == nil {
		errs = map[string]string{}
	}
	return t.
		Set("Action", action).
		Set("Form", f).
		Set("Errors", errs).
		Set("MaxTitle", book.MaxTitleLength).
		Set("MaxAuthor", book.MaxAuthorLength).
		Set("MaxDescription", book.MaxDescriptionLength)
}

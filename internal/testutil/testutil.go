package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"bookweb/internal/book"
)

// TestBook is a sample book as the books API returns it
var TestBook = book.Book{
	ID:          7,
	Title:       "The Hobbit",
	Author:      "J.R.R. Tolkien",
	Description: "There and back again",
	CreatedDate: "2024-01-01T10:00:00Z",
}

// UpdatedBook returns TestBook with an update timestamp set
func UpdatedBook() book.Book {
	b := TestBook
	updated := "2024-03-05T12:30:00Z"
	b.UpdatedDate = &updated
	return b
}

// NewFormRequest creates a form POST request for testing
func NewFormRequest(path string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// BookForm builds the url values a browser sends for the book form
func BookForm(title, author, description string) url.Values {
	return url.Values{
		"title":       {title},
		"author":      {author},
		"description": {description},
	}
}

// RecordResponse holds the parts of a page response tests look at
type RecordResponse struct {
	Code     int
	Header   http.Header
	Location string
	Body     string
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	return RecordResponse{
		Code:     result.StatusCode,
		Header:   result.Header,
		Location: result.Header.Get("Location"),
		Body:     string(bodyBytes),
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

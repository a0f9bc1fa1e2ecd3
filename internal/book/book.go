package book

// Book represents a catalog record as returned by the books API.
// Dates are kept as the server formats them.
type Book struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	CreatedDate string  `json:"createdDate"`
	UpdatedDate *string `json:"updatedDate"`
}

// Input is the editable part of a book sent on create and update.
type Input struct {
	Title       string `json:"title" validate:"required,max=200"`
	Author      string `json:"author" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type (
	CreateInput = Input
	UpdateInput = Input
)

// Form holds raw, untrimmed values as submitted by a user.
type Form struct {
	Title       string
	Author      string
	Description string
}

// FormFromBook prefills an edit form.
func FormFromBook(b Book) Form {
	return Form{Title: b.Title, Author: b.Author, Description: b.Description}
}

// WasUpdated reports whether the book has been edited since creation.
func (b Book) WasUpdated() bool {
	return b.UpdatedDate != nil && *b.UpdatedDate != ""
}

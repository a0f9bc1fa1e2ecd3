package book

import (
	"context"
)

// Service sits between the pages and the remote API. Form values are
// validated here so invalid input never reaches the network.
type Service struct {
	client Client
}

// NewService creates a new book service.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// List returns every book in server order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.client.List(ctx)
}

// Get returns a single book.
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	return s.client.Get(ctx, id)
}

// Create validates f and, if it is clean, creates the book. A rejected form
// comes back as Violations.
func (s *Service) Create(ctx context.Context, f Form) (Book, error) {
	in, violations := ValidateForm(f)
	if violations != nil {
		return Book{}, violations
	}
	return s.client.Create(ctx, in)
}

// Update validates f and, if it is clean, replaces the editable fields of book id.
func (s *Service) Update(ctx context.Context, id int64, f Form) (Book, error) {
	in, violations := ValidateForm(f)
	if violations != nil {
		return Book{}, violations
	}
	return s.client.Update(ctx, id, in)
}

// Delete removes a book.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, id)
}

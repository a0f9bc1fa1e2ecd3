package book

import (
	"context"
)

// Client is the contract of the remote books resource.
type Client interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id int64) (Book, error)
	Create(ctx context.Context, in CreateInput) (Book, error)
	Update(ctx context.Context, id int64, in UpdateInput) (Book, error)
	Delete(ctx context.Context, id int64) error
}

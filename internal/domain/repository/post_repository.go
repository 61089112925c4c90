package repository

import (
	"context"

	"github.com/darshanbachhav0/Entrepreneur/internal/domain/entity"
)

// PostRepository defines post document store operations.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	List(ctx context.Context) ([]entity.Post, error)
}

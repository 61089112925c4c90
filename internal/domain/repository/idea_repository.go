package repository

import (
	"context"

	"github.com/darshanbachhav0/Entrepreneur/internal/domain/entity"
)

// IdeaRepository defines idea document store operations.
//
// AddComment and IncrementUpvotes must be single atomic store updates on the
// targeted record; concurrent calls against the same idea must not lose
// writes.
type IdeaRepository interface {
	Create(ctx context.Context, i *entity.Idea) error
	GetByID(ctx context.Context, id string) (*entity.Idea, error)
	// List returns all ideas, or only those matching domain when it is
	// non-empty, in store-natural order.
	List(ctx context.Context, domain string) ([]entity.Idea, error)
	ListByAuthor(ctx context.Context, authorID string) ([]entity.Idea, error)
	// DistinctDomains returns the domain values currently in use.
	DistinctDomains(ctx context.Context) ([]string, error)
	AddComment(ctx context.Context, ideaID string, c entity.Comment) error
	IncrementUpvotes(ctx context.Context, ideaID string) error
}

package repository

import (
	"context"

	"github.com/darshanbachhav0/Entrepreneur/internal/domain/entity"
)

// UserRepository defines user-related document store operations.
// Email uniqueness is not enforced by the store; see DESIGN.md.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

package auth

import (
	"context"

	"pardarsh/internal/domain"
)

// UserRepositoryInterface lists only the methods the auth service needs.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type TokenSigner interface {
	Sign(userID int64, role string) (string, error)
}

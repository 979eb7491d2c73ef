package contractor

import (
	"context"

	"pardarsh/internal/domain"
	"pardarsh/internal/repository"
)

type UserRepositoryInterface interface {
	GetContractor(ctx context.Context, id int64) (*domain.User, error)
	ListContractors(ctx context.Context) ([]domain.User, error)
	UpdateFaithScore(ctx context.Context, id int64, score float64) (*domain.User, error)
}

type ReviewRepositoryInterface interface {
	Create(ctx context.Context, rv *domain.Review) error
	ListByContractor(ctx context.Context, contractorID int64) ([]repository.ReviewRow, error)
	ListByContractors(ctx context.Context, contractorIDs []int64) (map[int64][]domain.Review, error)
}

type ProjectReader interface {
	ListByContractor(ctx context.Context, contractorID int64) ([]repository.ProjectRow, error)
}

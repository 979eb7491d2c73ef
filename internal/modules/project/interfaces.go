package project

import (
	"context"

	"pardarsh/internal/domain"
	"pardarsh/internal/repository"
)

// ProjectRepositoryInterface covers the registry operations the service needs.
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetRow(ctx context.Context, id int64) (*repository.ProjectRow, error)
	List(ctx context.Context) ([]repository.ProjectRow, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	AssignContractor(ctx context.Context, id, contractorID int64) (*domain.Project, error)
}

// ContractorGate resolves a user only when it holds the Contractor role.
type ContractorGate interface {
	GetContractor(ctx context.Context, id int64) (*domain.User, error)
}

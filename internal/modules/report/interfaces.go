package report

import (
	"context"

	"pardarsh/internal/domain"
	"pardarsh/internal/repository"
)

type ReportRepositoryInterface interface {
	Create(ctx context.Context, rep *domain.ProjectReport) error
	ListByProject(ctx context.Context, projectID int64) ([]repository.ReportRow, error)
	GetRow(ctx context.Context, id int64) (*repository.ReportRow, error)
}

type ProjectGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
}

package complaint

import (
	"context"

	"pardarsh/internal/domain"
	"pardarsh/internal/repository"
)

type ComplaintRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Complaint) error
	GetByTrackingID(ctx context.Context, trackingID string) (*domain.Complaint, error)
	List(ctx context.Context) ([]repository.ComplaintRow, error)
	UpdateStatus(ctx context.Context, trackingID string, status domain.ComplaintStatus, responseText string) (*domain.Complaint, error)
}

type ProjectGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
}

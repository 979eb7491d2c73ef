package project

import (
	"context"
	"errors"
	"time"

	"pardarsh/internal/domain"
	"pardarsh/internal/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	projects ProjectRepositoryInterface
	users    ContractorGate
}

func NewService(projects ProjectRepositoryInterface, users ContractorGate) *Service {
	return &Service{projects: projects, users: users}
}

func (s *Service) Create(ctx context.Context, createdBy int64, req CreateProjectRequest) (*domain.Project, error) {
	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		return nil, err
	}

	p := &domain.Project{
		Name:             req.Name,
		Region:           req.Region,
		Description:      req.Description,
		TenderDetails:    req.TenderDetails,
		Deadline:         deadline,
		Status:           domain.ProjectOpen,
		MaterialCost:     req.MaterialCost,
		LaborCost:        req.LaborCost,
		ConstructionCost: req.ConstructionCost,
		CreatedBy:        createdBy,
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]repository.ProjectRow, error) {
	return s.projects.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*repository.ProjectRow, error) {
	row, err := s.projects.GetRow(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateProjectRequest) (*domain.Project, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.TenderDetails != nil {
		updates["tender_details"] = *req.TenderDetails
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(dateLayout, *req.Deadline)
		if err != nil {
			return nil, err
		}
		updates["deadline"] = deadline
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = status
	}
	if req.MaterialCost != nil {
		updates["material_cost"] = *req.MaterialCost
	}
	if req.LaborCost != nil {
		updates["labor_cost"] = *req.LaborCost
	}
	if req.ConstructionCost != nil {
		updates["construction_cost"] = *req.ConstructionCost
	}

	p, err := s.projects.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Assign validates the target is a Contractor-role user, then sets the
// contractor and moves the project to In Progress in a single update. On any
// validation failure the project is left exactly as it was.
func (s *Service) Assign(ctx context.Context, projectID, contractorID int64) (*domain.Project, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.users.GetContractor(ctx, contractorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidContractor
		}
		return nil, err
	}

	p, err := s.projects.AssignContractor(ctx, projectID, contractorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

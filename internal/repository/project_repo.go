package repository

import (
	"context"

	"pardarsh/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ProjectRow is a project enriched with display names resolved at read time.
// The names are view-time joins, never stored on the project itself.
type ProjectRow struct {
	domain.Project
	CreatedByName  string `json:"createdByName"`
	ContractorName string `json:"contractorName,omitempty"`
}

const projectRowSelect = `projects.*,
	creator.legal_name AS created_by_name,
	contractor.legal_name AS contractor_name`

func (r *ProjectRepository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Select(projectRowSelect).
		Joins("LEFT JOIN users AS creator ON creator.id = projects.created_by").
		Joins("LEFT JOIN users AS contractor ON contractor.id = projects.contractor_id")
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]ProjectRow, error) {
	var rows []ProjectRow
	err := r.rowQuery(ctx).
		Order("projects.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ProjectRepository) GetRow(ctx context.Context, id int64) (*ProjectRow, error) {
	var row ProjectRow
	tx := r.rowQuery(ctx).Where("projects.id = ?", id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *ProjectRepository) ListByContractor(ctx context.Context, contractorID int64) ([]ProjectRow, error) {
	var rows []ProjectRow
	err := r.rowQuery(ctx).
		Where("projects.contractor_id = ?", contractorID).
		Order("projects.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Project, error) {
	if len(updates) > 0 {
		tx := r.db.WithContext(ctx).
			Model(&domain.Project{}).
			Where("id = ?", id).
			Updates(updates)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Project{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AssignContractor sets the contractor and flips the status in one UPDATE so
// no reader can observe a project with a contractor still marked Open.
func (r *ProjectRepository) AssignContractor(ctx context.Context, id, contractorID int64) (*domain.Project, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"contractor_id": contractorID,
			"status":        domain.ProjectInProgress,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

package repository

import (
	"context"
	"time"

	"pardarsh/internal/domain"

	"gorm.io/gorm"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// ComplaintRow is a complaint with the project name resolved for the
// officials' listing. Anonymous tracking never sees this shape.
type ComplaintRow struct {
	domain.Complaint
	ProjectName string `json:"projectName"`
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetByTrackingID looks up by the public token, the only access path a
// submitter has.
func (r *ComplaintRepository) GetByTrackingID(ctx context.Context, trackingID string) (*domain.Complaint, error) {
	var c domain.Complaint
	err := r.db.WithContext(ctx).
		Where("complaint_id = ?", trackingID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComplaintRepository) List(ctx context.Context) ([]ComplaintRow, error) {
	var rows []ComplaintRow
	err := r.db.WithContext(ctx).
		Model(&domain.Complaint{}).
		Select("complaints.*, projects.name AS project_name").
		Joins("LEFT JOIN projects ON projects.id = complaints.project_id").
		Order("complaints.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ComplaintRepository) UpdateStatus(ctx context.Context, trackingID string, status domain.ComplaintStatus, responseText string) (*domain.Complaint, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Complaint{}).
		Where("complaint_id = ?", trackingID).
		Updates(map[string]any{
			"status":     status,
			"response":   responseText,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByTrackingID(ctx, trackingID)
}

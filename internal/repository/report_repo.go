package repository

import (
	"context"

	"pardarsh/internal/domain"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ReportRow carries the report plus names resolved for display.
type ReportRow struct {
	domain.ProjectReport
	ContractorName string `json:"contractorName"`
	ProjectName    string `json:"projectName,omitempty"`
}

// Create relies on the (project_id, week_number) unique index for the
// one-report-per-week invariant; callers detect the conflict with
// IsUniqueViolation.
func (r *ReportRepository) Create(ctx context.Context, rep *domain.ProjectReport) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *ReportRepository) ListByProject(ctx context.Context, projectID int64) ([]ReportRow, error) {
	var rows []ReportRow
	err := r.db.WithContext(ctx).
		Model(&domain.ProjectReport{}).
		Select("project_reports.*, contractor.legal_name AS contractor_name").
		Joins("LEFT JOIN users AS contractor ON contractor.id = project_reports.contractor_id").
		Where("project_reports.project_id = ?", projectID).
		Order("project_reports.week_number DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) GetRow(ctx context.Context, id int64) (*ReportRow, error) {
	var row ReportRow
	tx := r.db.WithContext(ctx).
		Model(&domain.ProjectReport{}).
		Select("project_reports.*, contractor.legal_name AS contractor_name, projects.name AS project_name").
		Joins("LEFT JOIN users AS contractor ON contractor.id = project_reports.contractor_id").
		Joins("LEFT JOIN projects ON projects.id = project_reports.project_id").
		Where("project_reports.id = ?", id).
		Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

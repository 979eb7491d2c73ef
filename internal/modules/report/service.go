package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pardarsh/internal/domain"
	"pardarsh/internal/pkg/validator"
	"pardarsh/internal/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	reports  ReportRepositoryInterface
	projects ProjectGate
}

func NewService(reports ReportRepositoryInterface, projects ProjectGate) *Service {
	return &Service{reports: reports, projects: projects}
}

// Submit files the caller's weekly report. The one-report-per-week rule is
// enforced by the store's unique index, so two concurrent submissions for the
// same week cannot both land.
func (s *Service) Submit(ctx context.Context, projectID, contractorID int64, req SubmitReportRequest) (*domain.ProjectReport, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, validator.Describe(fields))
	}

	weekStart, err := time.Parse(dateLayout, req.WeekStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: weekStartDate must be YYYY-MM-DD", ErrValidation)
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	rep := &domain.ProjectReport{
		ProjectID:     projectID,
		ContractorID:  contractorID,
		WeekNumber:    req.WeekNumber,
		WeekStartDate: weekStart,
		Expenses: domain.Expenses{
			Materials: *req.Expenses.Materials,
			Labor:     *req.Expenses.Labor,
			Equipment: *req.Expenses.Equipment,
			Other:     req.Expenses.Other,
		},
		ProgressDetails:      req.ProgressDetails,
		CompletionPercentage: req.CompletionPercentage,
		Challenges:           req.Challenges,
		NextWeekPlan:         req.NextWeekPlan,
		Status:               domain.ReportSubmitted,
	}

	if err := s.reports.Create(ctx, rep); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateWeek
		}
		return nil, err
	}
	return rep, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID int64) ([]repository.ReportRow, error) {
	return s.reports.ListByProject(ctx, projectID)
}

func (s *Service) Get(ctx context.Context, reportID int64) (*repository.ReportRow, error) {
	row, err := s.reports.GetRow(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

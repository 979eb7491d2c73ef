package complaint

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"pardarsh/internal/domain"
	"pardarsh/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	complaints ComplaintRepositoryInterface
	projects   ProjectGate
}

func NewService(complaints ComplaintRepositoryInterface, projects ProjectGate) *Service {
	return &Service{complaints: complaints, projects: projects}
}

// Submit accepts an anonymous complaint and returns only the tracking token.
// No identity is captured; the token is the submitter's single access path.
func (s *Service) Submit(ctx context.Context, req SubmitComplaintRequest) (string, error) {
	if _, err := s.projects.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrProjectNotFound
		}
		return "", err
	}

	trackingID, err := generateTrackingID()
	if err != nil {
		return "", err
	}

	c := &domain.Complaint{
		ComplaintID: trackingID,
		ProjectID:   req.ProjectID,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      domain.ComplaintPending,
		Evidence:    datatypes.NewJSONSlice(req.Evidence),
	}

	if err := s.complaints.Create(ctx, c); err != nil {
		return "", err
	}
	return trackingID, nil
}

func (s *Service) Track(ctx context.Context, trackingID string) (*TrackingView, error) {
	c, err := s.complaints.GetByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTrackingView(c), nil
}

func (s *Service) List(ctx context.Context) ([]repository.ComplaintRow, error) {
	return s.complaints.List(ctx)
}

// UpdateStatus applies an official's decision. The transition rules live on
// ComplaintStatus; closed complaints stay closed.
func (s *Service) UpdateStatus(ctx context.Context, trackingID string, req UpdateStatusRequest) (*domain.Complaint, error) {
	next := domain.ComplaintStatus(req.Status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	current, err := s.complaints.GetByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	return s.complaints.UpdateStatus(ctx, trackingID, next, req.Response)
}

// generateTrackingID mints the short opaque public token, distinct from the
// row id.
func generateTrackingID() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

package complaint

import (
	"time"

	"pardarsh/internal/domain"
)

type SubmitComplaintRequest struct {
	ProjectID   int64    `json:"projectId" binding:"required"`
	Subject     string   `json:"subject" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Evidence    []string `json:"evidence"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Response string `json:"response"`
}

// TrackingView is the redacted projection handed to an anonymous submitter.
// The internal row id is never part of it.
type TrackingView struct {
	ComplaintID string                 `json:"complaintId"`
	Subject     string                 `json:"subject"`
	Status      domain.ComplaintStatus `json:"status"`
	Response    string                 `json:"response"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func toTrackingView(c *domain.Complaint) *TrackingView {
	return &TrackingView{
		ComplaintID: c.ComplaintID,
		Subject:     c.Subject,
		Status:      c.Status,
		Response:    c.Response,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

package domain

import (
	"time"

	"gorm.io/datatypes"
)

type ComplaintStatus string

const (
	ComplaintPending            ComplaintStatus = "Pending"
	ComplaintUnderInvestigation ComplaintStatus = "Under Investigation"
	ComplaintResolved           ComplaintStatus = "Resolved"
	ComplaintRejected           ComplaintStatus = "Rejected"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintUnderInvestigation, ComplaintResolved, ComplaintRejected:
		return true
	}
	return false
}

// CanTransitionTo enforces the complaint workflow: Pending may move anywhere,
// Under Investigation may only close, Resolved/Rejected are terminal.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	switch s {
	case ComplaintPending:
		return next == ComplaintUnderInvestigation || next == ComplaintResolved || next == ComplaintRejected
	case ComplaintUnderInvestigation:
		return next == ComplaintResolved || next == ComplaintRejected
	}
	return false
}

// Complaint is an anonymous report against a project. ComplaintID is the
// opaque public tracking token; the row ID never leaves the server for
// anonymous callers.
type Complaint struct {
	ID          int64                      `json:"id" gorm:"primaryKey"`
	ComplaintID string                     `json:"complaintId" gorm:"uniqueIndex;not null"`
	ProjectID   int64                      `json:"projectId" gorm:"not null;index"`
	Subject     string                     `json:"subject" gorm:"not null"`
	Description string                     `json:"description" gorm:"not null"`
	Status      ComplaintStatus            `json:"status" gorm:"type:varchar(24);default:'Pending'"`
	Evidence    datatypes.JSONSlice[string] `json:"evidence,omitempty"`
	Response    string                     `json:"response"`
	CreatedAt   time.Time                  `json:"createdAt"`
	UpdatedAt   time.Time                  `json:"updatedAt"`
}

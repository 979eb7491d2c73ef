package domain

import "time"

type ReportStatus string

const (
	ReportSubmitted ReportStatus = "Submitted"
	ReportApproved  ReportStatus = "Approved"
	ReportRejected  ReportStatus = "Rejected"
)

// Expenses breaks a weekly report's spend down by category.
type Expenses struct {
	Materials float64 `json:"materials"`
	Labor     float64 `json:"labor"`
	Equipment float64 `json:"equipment"`
	Other     float64 `json:"other"`
}

// ProjectReport is a contractor's weekly progress report. The composite
// unique index keeps at most one report per project per week; concurrent
// submissions race on the index, not on an application-level check.
type ProjectReport struct {
	ID                   int64        `json:"id" gorm:"primaryKey"`
	ProjectID            int64        `json:"projectId" gorm:"not null;uniqueIndex:idx_project_week"`
	ContractorID         int64        `json:"contractorId" gorm:"not null;index"`
	WeekNumber           int          `json:"weekNumber" gorm:"not null;uniqueIndex:idx_project_week"`
	WeekStartDate        time.Time    `json:"weekStartDate" gorm:"not null"`
	Expenses             Expenses     `json:"expenses" gorm:"embedded;embeddedPrefix:expense_"`
	ProgressDetails      string       `json:"progressDetails" gorm:"not null"`
	CompletionPercentage float64      `json:"completionPercentage" gorm:"not null"`
	Challenges           string       `json:"challenges,omitempty"`
	NextWeekPlan         string       `json:"nextWeekPlan,omitempty"`
	Status               ReportStatus `json:"status" gorm:"type:varchar(16);default:'Submitted'"`
	CreatedAt            time.Time    `json:"createdAt"`
}

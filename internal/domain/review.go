package domain

import "time"

// Review is an official's rating of a contractor for a given project.
// Reviews are stored as written; the contractor's faith score is maintained
// separately and is never recomputed from them.
type Review struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	ContractorID int64     `json:"contractorId" gorm:"not null;index"`
	ProjectID    int64     `json:"projectId" gorm:"not null"`
	ReviewerID   int64     `json:"reviewerId" gorm:"not null"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

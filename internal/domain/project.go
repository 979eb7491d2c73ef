package domain

import "time"

type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "Open"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectCancelled  ProjectStatus = "Cancelled"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectOpen, ProjectInProgress, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

type Project struct {
	ID               int64         `json:"id" gorm:"primaryKey"`
	Name             string        `json:"name" gorm:"not null"`
	Region           string        `json:"region" gorm:"not null"`
	Description      string        `json:"description" gorm:"not null"`
	TenderDetails    string        `json:"tenderDetails,omitempty"`
	Deadline         time.Time     `json:"deadline" gorm:"not null"`
	Status           ProjectStatus `json:"status" gorm:"type:varchar(16);default:'Open'"`
	ContractorID     *int64        `json:"contractorId,omitempty" gorm:"index"`
	MaterialCost     float64       `json:"materialCost"`
	LaborCost        float64       `json:"laborCost"`
	ConstructionCost float64       `json:"constructionCost"`
	CreatedBy        int64         `json:"createdBy" gorm:"not null;index"`
	CreatedAt        time.Time     `json:"createdAt"`
}

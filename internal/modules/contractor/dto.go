package contractor

import (
	"pardarsh/internal/domain"
	"pardarsh/internal/repository"
)

type AddReviewRequest struct {
	ProjectID int64  `json:"projectId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

type FaithScoreRequest struct {
	FaithScore *float64 `json:"faithScore" binding:"required"`
}

// ContractorListing pairs a contractor with the reviews written about them.
type ContractorListing struct {
	domain.User
	Reviews []domain.Review `json:"reviews"`
}

// ContractorProfile is the composite read on GET /contractors/:id.
type ContractorProfile struct {
	Contractor *domain.User            `json:"contractor"`
	Projects   []repository.ProjectRow `json:"projects"`
	Reviews    []repository.ReviewRow  `json:"reviews"`
}

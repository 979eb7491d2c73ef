package project

type CreateProjectRequest struct {
	Name             string  `json:"name" binding:"required"`
	Region           string  `json:"region" binding:"required"`
	Description      string  `json:"description" binding:"required"`
	TenderDetails    string  `json:"tenderDetails"`
	Deadline         string  `json:"deadline" binding:"required"`
	MaterialCost     float64 `json:"materialCost"`
	LaborCost        float64 `json:"laborCost"`
	ConstructionCost float64 `json:"constructionCost"`
}

// UpdateProjectRequest is a partial update; absent fields stay untouched.
type UpdateProjectRequest struct {
	Name             *string  `json:"name"`
	Region           *string  `json:"region"`
	Description      *string  `json:"description"`
	TenderDetails    *string  `json:"tenderDetails"`
	Deadline         *string  `json:"deadline"`
	Status           *string  `json:"status"`
	MaterialCost     *float64 `json:"materialCost"`
	LaborCost        *float64 `json:"laborCost"`
	ConstructionCost *float64 `json:"constructionCost"`
}

type AssignContractorRequest struct {
	ContractorID int64 `json:"contractorId" binding:"required"`
}

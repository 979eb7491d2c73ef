package report

// ExpensesPayload mirrors the weekly spend breakdown; "other" is the only
// optional category.
type ExpensesPayload struct {
	Materials *float64 `json:"materials" binding:"required" validate:"required"`
	Labor     *float64 `json:"labor" binding:"required" validate:"required"`
	Equipment *float64 `json:"equipment" binding:"required" validate:"required"`
	Other     float64  `json:"other"`
}

type SubmitReportRequest struct {
	WeekNumber           int             `json:"weekNumber" binding:"required" validate:"required,min=1"`
	WeekStartDate        string          `json:"weekStartDate" binding:"required" validate:"required"`
	Expenses             ExpensesPayload `json:"expenses" binding:"required"`
	ProgressDetails      string          `json:"progressDetails" binding:"required" validate:"required"`
	CompletionPercentage float64         `json:"completionPercentage" validate:"min=0,max=100"`
	Challenges           string          `json:"challenges"`
	NextWeekPlan         string          `json:"nextWeekPlan"`
}

package report

import (
	"errors"
	"net/http"
	"strconv"

	"pardarsh/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/projects/:id/reports", h.ListByProject)
	api.GET("/projects/:id/reports/:reportId", h.Get)
}

func (h *Handler) RegisterContractorRoutes(contractor *gin.RouterGroup) {
	contractor.POST("/projects/:id/reports", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || projectID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rep, err := h.service.Submit(c.Request.Context(), projectID, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrProjectNotFound):
			response.Error(c, http.StatusNotFound, "Project not found")
		case errors.Is(err, ErrDuplicateWeek):
			response.Error(c, http.StatusConflict, "Report already submitted for this week")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, rep)
}

func (h *Handler) ListByProject(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || projectID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	rows, err := h.service.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.SuccessWithCount(c, http.StatusOK, rows, len(rows))
}

func (h *Handler) Get(c *gin.Context) {
	reportID, err := strconv.ParseInt(c.Param("reportId"), 10, 64)
	if err != nil || reportID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid report ID")
		return
	}

	row, err := h.service.Get(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Report not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusOK, row)
}

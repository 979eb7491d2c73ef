package complaint

import (
	"errors"
	"net/http"

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
	api.POST("/complaints", h.Submit)
	api.GET("/complaints/track/:complaintId", h.Track)
}

func (h *Handler) RegisterOfficialRoutes(official *gin.RouterGroup) {
	official.GET("/complaints", h.List)
	official.PUT("/complaints/:complaintId", h.UpdateStatus)
}

// @Summary		Submit an anonymous complaint
// @Description	Accepts a complaint against a project without any authentication and returns an opaque tracking ID, the caller's only way to check on it later.
// @Tags		Complaints
// @Param		request	body	SubmitComplaintRequest	true	"Complaint payload"
// @Success		201	{object}	map[string]interface{}	"Returns the tracking ID"
// @Failure		404	{object}	map[string]interface{}	"Referenced project does not exist"
// @Router		/complaints [POST]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	trackingID, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated,
		"Complaint submitted successfully. Save your complaint ID for tracking.",
		gin.H{"complaintId": trackingID})
}

func (h *Handler) Track(c *gin.Context) {
	view, err := h.service.Track(c.Request.Context(), c.Param("complaintId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Complaint not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusOK, view)
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.SuccessWithCount(c, http.StatusOK, rows, len(rows))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("complaintId"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Complaint not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid complaint status")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusBadRequest, "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.Success(c, http.StatusOK, updated)
}

package contractor

import (
	"errors"
	"net/http"
	"strconv"

	"pardarsh/internal/domain"
	"pardarsh/internal/middleware"
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
	api.GET("/contractors", h.List)
	api.GET("/contractors/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/contractors/:id/projects",
		middleware.RequireRole(domain.RoleContractor, domain.RoleOfficial), h.ListProjects)
	protected.POST("/contractors/:id/reviews",
		middleware.RequireRole(domain.RoleOfficial), h.AddReview)
	protected.PUT("/contractors/:id/faith-score",
		middleware.RequireRole(domain.RoleOfficial), h.UpdateFaithScore)
}

func (h *Handler) List(c *gin.Context) {
	listings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.SuccessWithCount(c, http.StatusOK, listings, len(listings))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid contractor ID")
		return
	}

	profile, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Contractor not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) ListProjects(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid contractor ID")
		return
	}

	rows, err := h.service.ListProjects(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.SuccessWithCount(c, http.StatusOK, rows, len(rows))
}

func (h *Handler) AddReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid contractor ID")
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rv, err := h.service.AddReview(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Contractor not found")
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) UpdateFaithScore(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid contractor ID")
		return
	}

	var req FaithScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.service.UpdateFaithScore(c.Request.Context(), id, *req.FaithScore)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Contractor not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusOK, u)
}

package project

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

// Reads are public; every mutation sits behind the Government Official gate
// applied by the caller.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/projects", h.List)
	api.GET("/projects/:id", h.Get)
}

func (h *Handler) RegisterOfficialRoutes(official *gin.RouterGroup) {
	official.POST("/projects", h.Create)
	official.PUT("/projects/:id", h.Update)
	official.DELETE("/projects/:id", h.Delete)
	official.PUT("/projects/:id/assign", h.Assign)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.SuccessWithCount(c, http.StatusOK, rows, len(rows))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusOK, row)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Project not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid project status")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) Assign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req AssignContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.Assign(c.Request.Context(), id, req.ContractorID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Project not found")
		case errors.Is(err, ErrInvalidContractor):
			response.Error(c, http.StatusBadRequest, "Invalid contractor")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}

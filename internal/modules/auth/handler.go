package auth

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
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.Me)
}

// @Summary		Register a user
// @Description	Creates an account with a bcrypt-hashed password and returns a signed bearer token plus a public user projection.
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"Registration payload"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}
// @Failure		409	{object}	map[string]interface{}	"Email already registered"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "User already exists")
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "Invalid role")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  toPublic(user),
	})
}

// @Summary		Log in
// @Description	Verifies credentials and returns a bearer token. Unknown email and wrong password answer identically.
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"Credentials"
// @Success		200	{object}	map[string]interface{}
// @Failure		401	{object}	map[string]interface{}	"Invalid credentials"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  toPublic(user),
	})
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "Authorization denied")
		return
	}

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}

	response.Success(c, http.StatusOK, user)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/event-planner-api/internal/application"
	"github.com/oksasatya/event-planner-api/internal/interface/middleware"
	"github.com/oksasatya/event-planner-api/pkg/response"
	"github.com/oksasatya/event-planner-api/pkg/validation"
)

// AuthHandler serves registration, login (token minting) and current-identity
// lookup.
type AuthHandler struct {
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(users *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Users.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if h.Logger != nil {
		h.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	response.Success(c, http.StatusCreated, userJSON(u), "registered", nil)
}

// Login POST /api/v1/auth/token
// Verifies credentials and mints a bearer token as a separate, explicit step.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	tok, exp, err := h.Users.IssueToken(u, time.Now())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "could not issue token", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"access_token": tok,
		"token_type":   "bearer",
	}, "login successful", gin.H{"expires_at": exp})
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.Error(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "current user", nil)
}

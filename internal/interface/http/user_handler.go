package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/event-planner-api/internal/application"
	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	"github.com/oksasatya/event-planner-api/internal/interface/middleware"
	"github.com/oksasatya/event-planner-api/pkg/response"
	"github.com/oksasatya/event-planner-api/pkg/validation"
)

type UserHandler struct {
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(users *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

type updateProfileRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"omitempty,pwd"`
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"is_active":  u.IsActive,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

// GetMe GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	u := middleware.CurrentUser(c)
	response.Success(c, http.StatusOK, userJSON(u), "profile", nil)
}

// UpdateMe PUT /api/v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	updated, err := h.Users.UpdateProfile(c.Request.Context(), u, application.UpdateProfileInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(updated), "profile updated", nil)
}

// GetByID GET /api/v1/users/:id, own profile only.
func (h *UserHandler) GetByID(c *gin.Context) {
	u := middleware.CurrentUser(c)
	target, err := h.Users.GetUser(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(target), "profile", nil)
}

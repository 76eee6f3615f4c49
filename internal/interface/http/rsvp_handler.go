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

type RSVPHandler struct {
	RSVPs  *application.RSVPService
	Logger *logrus.Logger
}

func NewRSVPHandler(rsvps *application.RSVPService, logger *logrus.Logger) *RSVPHandler {
	return &RSVPHandler{RSVPs: rsvps, Logger: logger}
}

type createRSVPRequest struct {
	EventID string `json:"event_id" binding:"required"`
	Status  string `json:"status" binding:"omitempty,rsvpstatus"`
}

type updateRSVPRequest struct {
	Status string `json:"status" binding:"required,rsvpstatus"`
}

func rsvpJSON(r *entity.RSVP) gin.H {
	return gin.H{
		"id":         r.ID,
		"user_id":    r.UserID,
		"event_id":   r.EventID,
		"status":     r.Status,
		"created_at": r.CreatedAt,
		"updated_at": r.UpdatedAt,
	}
}

func rsvpsJSON(rs []*entity.RSVP) []gin.H {
	out := make([]gin.H, 0, len(rs))
	for _, r := range rs {
		out = append(out, rsvpJSON(r))
	}
	return out
}

// Create POST /api/v1/rsvps
func (h *RSVPHandler) Create(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req createRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	r, err := h.RSVPs.Create(c.Request.Context(), u, req.EventID, req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rsvpJSON(r), "rsvp created", nil)
}

// Update PUT /api/v1/rsvps/:id
func (h *RSVPHandler) Update(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req updateRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	r, err := h.RSVPs.Update(c.Request.Context(), u, c.Param("id"), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rsvpJSON(r), "rsvp updated", nil)
}

// ListByEvent GET /api/v1/rsvps/event/:event_id?status=
func (h *RSVPHandler) ListByEvent(c *gin.Context) {
	u := middleware.CurrentUser(c)
	rs, err := h.RSVPs.ListByEvent(c.Request.Context(), u, c.Param("event_id"), c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rsvpsJSON(rs), "rsvps", nil)
}

// ListMine GET /api/v1/rsvps/user/me
func (h *RSVPHandler) ListMine(c *gin.Context) {
	u := middleware.CurrentUser(c)
	rs, err := h.RSVPs.ListMine(c.Request.Context(), u)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rsvpsJSON(rs), "rsvps", nil)
}

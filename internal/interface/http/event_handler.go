package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/event-planner-api/internal/application"
	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	"github.com/oksasatya/event-planner-api/internal/interface/middleware"
	"github.com/oksasatya/event-planner-api/pkg/response"
	"github.com/oksasatya/event-planner-api/pkg/validation"
)

type EventHandler struct {
	Events *application.EventService
	Logger *logrus.Logger
}

func NewEventHandler(events *application.EventService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Events: events, Logger: logger}
}

type createEventRequest struct {
	Title        string    `json:"title" binding:"required,min=3,max=100"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	IsPublic     *bool     `json:"is_public"`
	Category     string    `json:"category"`
	MaxAttendees int       `json:"max_attendees" binding:"omitempty,min=1"`
}

type updateEventRequest struct {
	Title        *string    `json:"title" binding:"omitempty,min=3,max=100"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	IsPublic     *bool      `json:"is_public"`
	Category     *string    `json:"category"`
	MaxAttendees *int       `json:"max_attendees" binding:"omitempty,min=1"`
}

func eventJSON(e *entity.Event) gin.H {
	return gin.H{
		"id":            e.ID,
		"title":         e.Title,
		"description":   e.Description,
		"location":      e.Location,
		"start_time":    e.StartTime,
		"end_time":      e.EndTime,
		"is_public":     e.IsPublic,
		"category":      e.Category,
		"max_attendees": e.MaxAttendees,
		"created_by":    e.CreatedBy,
		"created_at":    e.CreatedAt,
		"updated_at":    e.UpdatedAt,
	}
}

func eventsJSON(es []*entity.Event) []gin.H {
	out := make([]gin.H, 0, len(es))
	for _, e := range es {
		out = append(out, eventJSON(e))
	}
	return out
}

// Create POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	isPublic := true // events default to public, as in the original product
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	e, err := h.Events.Create(c.Request.Context(), u, application.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsPublic:     isPublic,
		Category:     req.Category,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{"event_id": e.ID, "user_id": u.ID}).Info("event created")
	}
	response.Success(c, http.StatusCreated, eventJSON(e), "event created", nil)
}

// List GET /api/v1/events?skip=&limit=&is_public=
func (h *EventHandler) List(c *gin.Context) {
	u := middleware.CurrentUser(c)

	in := application.ListEventsInput{}
	if v, err := strconv.Atoi(c.DefaultQuery("skip", "0")); err == nil {
		in.Skip = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "100")); err == nil {
		in.Limit = v
	}
	if raw, ok := c.GetQuery("is_public"); ok {
		if b, err := strconv.ParseBool(raw); err == nil {
			in.IsPublic = &b
		}
	}

	es, err := h.Events.List(c.Request.Context(), u, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, eventsJSON(es), "events", gin.H{"skip": in.Skip, "limit": in.Limit})
}

// Get GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	u := middleware.CurrentUser(c)
	e, err := h.Events.Get(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, eventJSON(e), "event", nil)
}

// Update PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Events.Update(c.Request.Context(), u, c.Param("id"), application.UpdateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsPublic:     req.IsPublic,
		Category:     req.Category,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, eventJSON(e), "event updated", nil)
}

// Delete DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if err := h.Events.Delete(c.Request.Context(), u, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

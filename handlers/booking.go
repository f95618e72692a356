package handlers

import (
	"net/http"

	"whattoday/middleware"
	"whattoday/services/booking"
	"whattoday/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking session endpoints: open a session,
// adjust the selection, submit, and close.
type BookingHandler struct {
	Service booking.SessionService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.SessionService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) respond(c *gin.Context, view *booking.SessionView, err error) {
	if err != nil {
		switch err {
		case booking.ErrSessionNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case booking.ErrSessionForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case booking.ErrActivityNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// OpenBookingSession opens a fresh session for an activity.
func (h *BookingHandler) OpenBookingSession(c *gin.Context) {
	var req struct {
		ActivityID string `json:"activityId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	view, err := h.Service.OpenSession(req.ActivityID, middleware.UserID(c))
	h.respond(c, view, err)
}

// GetBookingSession returns the session's current state and derived views.
func (h *BookingHandler) GetBookingSession(c *gin.Context) {
	view, err := h.Service.GetSession(c.Param("sessionID"), middleware.UserID(c))
	h.respond(c, view, err)
}

// SetBookingDate picks a calendar date; the schedule selection clears.
func (h *BookingHandler) SetBookingDate(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	view, err := h.Service.SetDate(c.Param("sessionID"), middleware.UserID(c), req.Date)
	h.respond(c, view, err)
}

// SetBookingSchedule picks a time slot; an empty ID clears it.
func (h *BookingHandler) SetBookingSchedule(c *gin.Context) {
	var req struct {
		ScheduleID string `json:"scheduleId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	view, err := h.Service.SetScheduleID(c.Param("sessionID"), middleware.UserID(c), req.ScheduleID)
	h.respond(c, view, err)
}

// ChangeBookingHeads adjusts the head count by one in either direction.
func (h *BookingHandler) ChangeBookingHeads(c *gin.Context) {
	var req struct {
		Op string `json:"op" binding:"required,oneof=increase decrease"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	var (
		view *booking.SessionView
		err  error
	)
	if req.Op == "increase" {
		view, err = h.Service.IncreaseHeadCount(c.Param("sessionID"), middleware.UserID(c))
	} else {
		view, err = h.Service.DecreaseHeadCount(c.Param("sessionID"), middleware.UserID(c))
	}
	h.respond(c, view, err)
}

// SubmitBookingSession submits the selection as a reservation. Not-ready
// and already-submitting sessions come back unchanged.
func (h *BookingHandler) SubmitBookingSession(c *gin.Context) {
	view, err := h.Service.Submit(c.Param("sessionID"), middleware.UserID(c))
	h.respond(c, view, err)
}

// CloseBookingSession discards the session.
func (h *BookingHandler) CloseBookingSession(c *gin.Context) {
	err := h.Service.CloseSession(c.Param("sessionID"), middleware.UserID(c))
	if err != nil {
		h.respond(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"whattoday/middleware"
	"whattoday/models"
	"whattoday/services/reservation"
	"whattoday/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler exposes booking-side and host-side reservation
// endpoints.
type ReservationHandler struct {
	Service reservation.ReservationService
}

// NewReservationHandler creates a new ReservationHandler instance.
func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// CreateReservationHandler books a schedule of an activity directly.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var req models.ReservationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	res, err := h.Service.Create(c.Param("id"), middleware.UserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListMyReservationsHandler returns a page of the caller's reservations.
func (h *ReservationHandler) ListMyReservationsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	reservations, total, err := h.Service.ListMine(middleware.UserID(c), c.Query("status"), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations, "totalCount": total})
}

// CancelReservationHandler withdraws one of the caller's pending
// reservations.
func (h *ReservationHandler) CancelReservationHandler(c *gin.Context) {
	res, err := h.Service.Cancel(c.Param("id"), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ReservationDashboardHandler returns per-date reservation counts for
// one month of the caller's activity.
func (h *ReservationHandler) ReservationDashboardHandler(c *gin.Context) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid year", c.Query("year"))
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid month", c.Query("month"))
		return
	}

	days, err := h.Service.Dashboard(c.Param("id"), middleware.UserID(c), year, month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, days)
}

// ReservedScheduleHandler returns per-schedule reservation counts for
// one date of the caller's activity.
func (h *ReservationHandler) ReservedScheduleHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "date is required")
		return
	}

	summaries, err := h.Service.ReservedSchedule(c.Param("id"), middleware.UserID(c), date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// ListOwnerReservations returns one status tab of the caller's
// reservation panel.
func (h *ReservationHandler) ListOwnerReservations(c *gin.Context) {
	reservations, err := h.Service.ListForSchedule(
		c.Param("id"), middleware.UserID(c),
		c.Query("scheduleId"), c.Query("status"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// UpdateReservationStatus approves or declines one pending reservation.
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=confirmed declined"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	res, err := h.Service.UpdateStatus(
		c.Param("id"), middleware.UserID(c),
		c.Param("reservationID"), req.Status,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"whattoday/middleware"
	"whattoday/models"
	"whattoday/services/activity"
	"whattoday/utils"

	"github.com/gin-gonic/gin"
)

// ActivityHandler exposes catalog and host-side activity endpoints.
type ActivityHandler struct {
	Service activity.ActivityService
}

// NewActivityHandler creates a new ActivityHandler instance.
func NewActivityHandler(svc activity.ActivityService) *ActivityHandler {
	return &ActivityHandler{Service: svc}
}

// ListActivitiesHandler returns a page of activity summaries.
func (h *ActivityHandler) ListActivitiesHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	query := models.ActivityQuery{
		Category: c.Query("category"),
		Keyword:  c.Query("keyword"),
		Sort:     c.DefaultQuery("sort", "latest"),
		Page:     page,
		Size:     size,
	}

	activities, total, err := h.Service.List(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities, "totalCount": total})
}

// GetActivityHandler returns the full activity detail.
func (h *ActivityHandler) GetActivityHandler(c *gin.Context) {
	act, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, act)
}

// AvailableScheduleHandler returns the activity's bookable dates and
// times for one month.
func (h *ActivityHandler) AvailableScheduleHandler(c *gin.Context) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid year", c.Query("year"))
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid month", c.Query("month"))
		return
	}

	schedule, err := h.Service.AvailableScheduleForMonth(c.Param("id"), year, month)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// CreateActivityHandler publishes a new activity for the caller.
func (h *ActivityHandler) CreateActivityHandler(c *gin.Context) {
	var req models.ActivityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	act, err := h.Service.Create(middleware.UserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, act)
}

// ListMyActivitiesHandler returns a page of the caller's own activities.
func (h *ActivityHandler) ListMyActivitiesHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	activities, total, err := h.Service.ListMine(middleware.UserID(c), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities, "totalCount": total})
}

// UpdateMyActivityHandler applies a partial update to one of the
// caller's activities.
func (h *ActivityHandler) UpdateMyActivityHandler(c *gin.Context) {
	var req models.ActivityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	act, err := h.Service.Update(c.Param("id"), middleware.UserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, act)
}

// DeleteMyActivityHandler removes one of the caller's activities.
func (h *ActivityHandler) DeleteMyActivityHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id"), middleware.UserID(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity deleted"})
}

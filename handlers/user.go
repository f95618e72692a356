package handlers

import (
	"net/http"

	"whattoday/middleware"
	"whattoday/models"
	"whattoday/services/user"
	"whattoday/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes profile endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// GetMeHandler returns the caller's profile.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	userRec, err := h.Service.GetByID(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userRec)
}

// UpdateMeHandler applies a partial profile update.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	userRec, err := h.Service.Update(middleware.UserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userRec)
}

// DeleteMeHandler removes the caller's account.
func (h *UserHandler) DeleteMeHandler(c *gin.Context) {
	if err := h.Service.Delete(middleware.UserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

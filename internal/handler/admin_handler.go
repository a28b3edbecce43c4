package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vantage/internal/repository"
)

type AdminHandler struct {
	adminRepo *repository.AdminRepository
	userRepo  *repository.UserRepository
}

func NewAdminHandler(adminRepo *repository.AdminRepository, userRepo *repository.UserRepository) *AdminHandler {
	return &AdminHandler{adminRepo: adminRepo, userRepo: userRepo}
}

// Dashboard returns cross-entity counts and wallet aggregates.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminRepo.GetDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard aggregation failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsers returns registered users with optional name/email search.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := pagination(c)
	users, total, err := h.userRepo.List(c.Query("search"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": total, "page": page})
}

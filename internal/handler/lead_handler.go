package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vantage/internal/domain"
	"vantage/internal/middleware"
	"vantage/internal/models"
	"vantage/internal/repository"
)

type LeadHandler struct {
	leadRepo *repository.LeadRepository
}

func NewLeadHandler(leadRepo *repository.LeadRepository) *LeadHandler {
	return &LeadHandler{leadRepo: leadRepo}
}

func (h *LeadHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		Email       string `json:"email"`
		PhoneCode   string `json:"phone_code"`
		PhoneNo     string `json:"phone_no"`
		CompanyName string `json:"company_name"`
		Industry    string `json:"industry"`
		CompanySize string `json:"company_size"`
		Website     string `json:"website"`
		EntryPoint  string `json:"entry_point"`
		Source      string `json:"source"`
		Priority    string `json:"priority"`
		Stage       string `json:"stage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middleware.GetUserID(c)
	lead := &models.Lead{
		Title:       req.Title,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneCode:   req.PhoneCode,
		PhoneNo:     req.PhoneNo,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		Website:     req.Website,
		EntryPoint:  req.EntryPoint,
		Source:      req.Source,
		Priority:    req.Priority,
		Stage:       req.Stage,
		Status:      domain.LeadStatusNew,
	}
	if userID != 0 {
		lead.OwnerID = &userID
	}
	if err := h.leadRepo.Create(lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lead creation failed"})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
		return
	}
	lead, err := h.leadRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	var ownerID uint
	if v, err := strconv.ParseUint(c.Query("owner_id"), 10, 32); err == nil {
		ownerID = uint(v)
	}
	leads, total, err := h.leadRepo.List(c.Query("status"), c.Query("source"), ownerID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lead lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "total": total, "page": page})
}

// Patch applies a whitelisted partial update. Unknown fields are a client error.
func (h *LeadHandler) Patch(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.leadRepo.Patch(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownPatchField):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lead update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
		return
	}
	if err := h.leadRepo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lead delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead moved to trash"})
}

func (h *LeadHandler) Trash(c *gin.Context) {
	page, limit := pagination(c)
	leads, total, err := h.leadRepo.ListTrashed(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "trash lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "total": total, "page": page})
}

func (h *LeadHandler) Restore(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
		return
	}
	if err := h.leadRepo.Restore(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found in trash"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lead restore failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead restored"})
}

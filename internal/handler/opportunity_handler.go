package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vantage/internal/domain"
	"vantage/internal/models"
	"vantage/internal/repository"
)

type OpportunityHandler struct {
	opportunityRepo *repository.OpportunityRepository
}

func NewOpportunityHandler(opportunityRepo *repository.OpportunityRepository) *OpportunityHandler {
	return &OpportunityHandler{opportunityRepo: opportunityRepo}
}

func (h *OpportunityHandler) Create(c *gin.Context) {
	var req struct {
		Name            string          `json:"name" binding:"required"`
		Description     string          `json:"description"`
		Stage           string          `json:"stage"`
		Value           decimal.Decimal `json:"value"`
		Currency        string          `json:"currency"`
		LeadID          *uint           `json:"lead_id"`
		PersonID        *uint           `json:"person_id"`
		ExpectedCloseAt *time.Time      `json:"expected_close_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	opp := &models.Opportunity{
		Name:            req.Name,
		Description:     req.Description,
		Stage:           req.Stage,
		Status:          domain.OpportunityOpen,
		Value:           req.Value,
		Currency:        req.Currency,
		LeadID:          req.LeadID,
		PersonID:        req.PersonID,
		ExpectedCloseAt: req.ExpectedCloseAt,
	}
	if err := h.opportunityRepo.Create(opp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "opportunity creation failed"})
		return
	}
	c.JSON(http.StatusCreated, opp)
}

func (h *OpportunityHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid opportunity id"})
		return
	}
	opp, err := h.opportunityRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
		return
	}
	c.JSON(http.StatusOK, opp)
}

func (h *OpportunityHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	list, total, err := h.opportunityRepo.List(c.Query("status"), c.Query("stage"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "opportunity lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"opportunities": list, "total": total, "page": page})
}

func (h *OpportunityHandler) Patch(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid opportunity id"})
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	opp, err := h.opportunityRepo.Patch(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownPatchField):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "opportunity update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, opp)
}

func (h *OpportunityHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid opportunity id"})
		return
	}
	if err := h.opportunityRepo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "opportunity delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "opportunity deleted"})
}

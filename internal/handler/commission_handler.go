package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vantage/internal/middleware"
	"vantage/internal/repository"
	"vantage/internal/service"
)

type CommissionHandler struct {
	commissionSvc  *service.CommissionService
	commissionRepo *repository.CommissionRepository
	personRepo     *repository.PersonRepository
}

func NewCommissionHandler(
	commissionSvc *service.CommissionService,
	commissionRepo *repository.CommissionRepository,
	personRepo *repository.PersonRepository,
) *CommissionHandler {
	return &CommissionHandler{
		commissionSvc:  commissionSvc,
		commissionRepo: commissionRepo,
		personRepo:     personRepo,
	}
}

// Create opens a pending commission record for a salesperson. Admin only.
func (h *CommissionHandler) Create(c *gin.Context) {
	var req struct {
		SalespersonID uint            `json:"salesperson_id" binding:"required"`
		OpportunityID *uint           `json:"opportunity_id"`
		Amount        decimal.Decimal `json:"amount" binding:"required"`
		Percentage    decimal.Decimal `json:"percentage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := h.commissionSvc.Create(
		middleware.GetUserID(c), req.SalespersonID, req.OpportunityID, req.Amount, req.Percentage)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrPersonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "commission creation failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *CommissionHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid commission id"})
		return
	}
	record, err := h.commissionRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "commission not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// List returns commission records, optionally filtered by status. Admin only.
func (h *CommissionHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	list, total, err := h.commissionRepo.ListByStatus(c.Query("status"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "commission lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commissions": list, "total": total, "page": page})
}

// MyCommissions returns the caller's own commission records.
func (h *CommissionHandler) MyCommissions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	person, err := h.personRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "person profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "commission lookup failed"})
		return
	}
	list, err := h.commissionRepo.ListBySalesperson(person.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "commission lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commissions": list})
}

// MarkPaid settles a pending commission and credits the salesperson's wallet.
func (h *CommissionHandler) MarkPaid(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid commission id"})
		return
	}
	record, err := h.commissionSvc.MarkPaid(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrCommissionNotOpen):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrWalletNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "commission payout failed"})
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// Cancel voids a pending commission.
func (h *CommissionHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid commission id"})
		return
	}
	record, err := h.commissionSvc.Cancel(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrCommissionNotOpen):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "commission cancel failed"})
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

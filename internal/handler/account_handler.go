package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vantage/internal/middleware"
	"vantage/internal/models"
	"vantage/internal/repository"
)

type AccountHandler struct {
	accountRepo *repository.AccountRepository
}

func NewAccountHandler(accountRepo *repository.AccountRepository) *AccountHandler {
	return &AccountHandler{accountRepo: accountRepo}
}

func (h *AccountHandler) Create(c *gin.Context) {
	var req struct {
		ShopDomain    *string `json:"shop_domain"`
		CompanyName   string  `json:"company_name" binding:"required"`
		Industry      string  `json:"industry"`
		CompanySize   string  `json:"company_size"`
		Description   string  `json:"description"`
		AnnualRevenue string  `json:"annual_revenue"`
		Location      string  `json:"location"`
		FullAddress   string  `json:"full_address"`
		Email         string  `json:"email"`
		PhoneCode     string  `json:"phone_code"`
		PhoneNo       string  `json:"phone_no"`
		Website       string  `json:"website"`
		AccountType   string  `json:"account_type" binding:"required"`
		ClientType    string  `json:"client_type" binding:"required"`
		Status        string  `json:"status" binding:"required"`
		Priority      string  `json:"priority"`
		Segment       string  `json:"segment"`
		Territory     string  `json:"territory"`
		Source        string  `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	account := &models.Account{
		ShopDomain:    req.ShopDomain,
		CompanyName:   req.CompanyName,
		Industry:      req.Industry,
		CompanySize:   req.CompanySize,
		Description:   req.Description,
		AnnualRevenue: req.AnnualRevenue,
		Location:      req.Location,
		FullAddress:   req.FullAddress,
		Email:         req.Email,
		PhoneCode:     req.PhoneCode,
		PhoneNo:       req.PhoneNo,
		Website:       req.Website,
		AccountType:   req.AccountType,
		ClientType:    req.ClientType,
		Status:        req.Status,
		Priority:      req.Priority,
		Segment:       req.Segment,
		Territory:     req.Territory,
		Source:        req.Source,
		OwnerID:       middleware.GetUserID(c),
	}
	if err := h.accountRepo.Create(account); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account creation failed"})
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}
	account, err := h.accountRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	accounts, total, err := h.accountRepo.List(c.Query("status"), c.Query("account_type"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts, "total": total, "page": page})
}

func (h *AccountHandler) Patch(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	account, err := h.accountRepo.Patch(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownPatchField):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "account update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}
	if err := h.accountRepo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

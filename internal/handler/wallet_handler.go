package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"vantage/internal/middleware"
	"vantage/internal/repository"
	"vantage/internal/service"
)

type WalletHandler struct {
	walletSvc      *service.WalletService
	withdrawalRepo *repository.WithdrawalRepository
}

func NewWalletHandler(walletSvc *service.WalletService, withdrawalRepo *repository.WithdrawalRepository) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, withdrawalRepo: withdrawalRepo}
}

// GetMyWallet returns the current user's wallet snapshot.
func (h *WalletHandler) GetMyWallet(c *gin.Context) {
	userID := middleware.GetUserID(c)
	wallet, err := h.walletSvc.GetWalletForUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) || errors.Is(err, service.ErrWalletNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet lookup failed"})
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// CreditCommission credits commission into a person's wallet. Admin only.
func (h *WalletHandler) CreditCommission(c *gin.Context) {
	personID, err := strconv.ParseUint(c.Param("person_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person id"})
		return
	}
	var req struct {
		Amount decimal.Decimal `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wallet, err := h.walletSvc.CreditCommission(uint(personID), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrWalletNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "commission credit failed"})
		}
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// RequestWithdrawal reserves funds and opens a withdrawal request.
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Amount       decimal.Decimal `json:"amount" binding:"required"`
		PayoutMethod string          `json:"payout_method" binding:"required"`

		BankAccountHolderName string `json:"bank_account_holder_name"`
		BankAccountNumber     string `json:"bank_account_number"`
		BankName              string `json:"bank_name"`
		BankIFSCCode          string `json:"bank_ifsc_code"`
		PaypalEmail           string `json:"paypal_email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	withdrawal, err := h.walletSvc.RequestWithdrawal(userID, service.WithdrawalInput{
		Amount:                req.Amount,
		PayoutMethod:          req.PayoutMethod,
		BankAccountHolderName: req.BankAccountHolderName,
		BankAccountNumber:     req.BankAccountNumber,
		BankName:              req.BankName,
		BankIFSCCode:          req.BankIFSCCode,
		PaypalEmail:           req.PaypalEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount),
			errors.Is(err, service.ErrInvalidPayout),
			errors.Is(err, service.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrPersonNotFound), errors.Is(err, service.ErrWalletNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "withdrawal request failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, withdrawal)
}

// MyWithdrawals returns the caller's withdrawal history, newest first.
func (h *WalletHandler) MyWithdrawals(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.walletSvc.ListWithdrawalsForUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "withdrawal lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": list})
}

// UpdateWithdrawalStatus applies an admin decision to a withdrawal request.
func (h *WalletHandler) UpdateWithdrawalStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid withdrawal id"})
		return
	}
	var req struct {
		Status        string `json:"status" binding:"required"`
		AdminComments string `json:"admin_comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	withdrawal, err := h.walletSvc.UpdateWithdrawalStatus(uint(id), req.Status, req.AdminComments)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWithdrawalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "status update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, withdrawal)
}

// ListWithdrawals returns the admin review queue, optionally filtered by status.
func (h *WalletHandler) ListWithdrawals(c *gin.Context) {
	page, limit := pagination(c)
	list, total, err := h.withdrawalRepo.ListByStatus(c.Query("status"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "withdrawal lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": list, "total": total, "page": page})
}

// ListTransactions returns the ledger for a person's wallet. Admin only.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	personID, err := strconv.ParseUint(c.Param("person_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person id"})
		return
	}
	txs, err := h.walletSvc.ListTransactionsForPerson(uint(personID))
	if err != nil {
		if errors.Is(err, service.ErrWalletNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transaction lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

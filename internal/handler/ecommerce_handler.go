package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vantage/internal/service"
)

// EcommerceHandler receives webhooks from the external e-commerce platform.
// The sender is untrusted and best-effort: unresolvable references are
// acknowledged, not failed, so the platform never retries a dead reference
// forever.
type EcommerceHandler struct {
	affiliateSvc *service.AffiliateService
}

func NewEcommerceHandler(affiliateSvc *service.AffiliateService) *EcommerceHandler {
	return &EcommerceHandler{affiliateSvc: affiliateSvc}
}

// InstallCallback records an install. Safe to deliver more than once.
func (h *EcommerceHandler) InstallCallback(c *gin.Context) {
	var req struct {
		AffiliateLinkID string `json:"affiliate_link_id" binding:"required"`
		LeadID          *uint  `json:"lead_id"`
		ShopDomain      string `json:"shop_domain"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	install, err := h.affiliateSvc.HandleInstallCallback(req.AffiliateLinkID, req.LeadID, req.ShopDomain)
	if err != nil {
		log.Printf("[ecommerce] install callback failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "install processing failed"})
		return
	}
	if install == nil {
		c.JSON(http.StatusOK, gin.H{
			"type":    "ack",
			"status":  "ok",
			"message": "install ignored",
		})
		return
	}
	c.JSON(http.StatusOK, install)
}

// ConversionCallback marks a shop's referral and install converted.
func (h *EcommerceHandler) ConversionCallback(c *gin.Context) {
	shop := c.Query("shop")
	status, err := h.affiliateSvc.HandleConversionCallback(shop)
	if err != nil {
		if errors.Is(err, service.ErrInvalidShopDomain) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[ecommerce] conversion callback failed | shop=%s: %v", shop, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "conversion processing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

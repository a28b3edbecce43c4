package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vantage/config"
	"vantage/internal/middleware"
	"vantage/internal/service"
)

// IntegrationHandler serves the affiliate-facing surface: tracking link
// generation and the outbound redirect that records clicks.
type IntegrationHandler struct {
	cfg          *config.Config
	affiliateSvc *service.AffiliateService
}

func NewIntegrationHandler(cfg *config.Config, affiliateSvc *service.AffiliateService) *IntegrationHandler {
	return &IntegrationHandler{cfg: cfg, affiliateSvc: affiliateSvc}
}

// GetLink returns (creating on first request) the caller's tracking link.
func (h *IntegrationHandler) GetLink(c *gin.Context) {
	userID := middleware.GetUserID(c)
	link, err := h.affiliateSvc.GetOrCreateLink(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "affiliate link error"})
		return
	}
	trackingURL := fmt.Sprintf("%s/api/v1/integrations/redirect?utm_source=%s",
		h.cfg.Affiliate.PublicBaseURL, link.Token)
	c.JSON(http.StatusOK, gin.H{
		"affiliate_user_id": link.AffiliateUserID,
		"token":             link.Token,
		"tracking_url":      trackingURL,
	})
}

// Redirect records the click (and referral, when a shop is attached) and
// 302-redirects to the shop's app page or the landing page.
func (h *IntegrationHandler) Redirect(c *gin.Context) {
	token := c.Query("utm_source")
	shop := c.Query("shop")

	link, err := h.affiliateSvc.ResolveLinkByToken(token)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "affiliate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "redirect failed"})
		return
	}

	if shop == "" {
		if _, err := h.affiliateSvc.RecordBareClick(link.AffiliateUserID, token); err != nil {
			log.Printf("[integrations] bare click not recorded: %v", err)
		}
		c.Redirect(http.StatusFound, h.cfg.Affiliate.LandingURL)
		return
	}

	click, referral, err := h.affiliateSvc.RecordClick(link.AffiliateUserID, shop, token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidShopDomain) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "redirect failed"})
		return
	}
	log.Printf("[integrations] redirecting | click_id=%d referral_id=%d shop=%s", click.ID, referral.ID, referral.ShopDomain)
	c.Redirect(http.StatusFound, fmt.Sprintf("https://%s/%s", referral.ShopDomain, h.cfg.Affiliate.ShopAppSlug))
}

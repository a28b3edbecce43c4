package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vantage/internal/domain"
	"vantage/internal/models"
	"vantage/internal/repository"
	"vantage/pkg/shopdomain"
)

var (
	ErrInvalidShopDomain = errors.New("invalid e-commerce store domain")
	ErrLinkNotFound      = errors.New("affiliate link not found")
)

// Conversion callback outcomes. The callback degrades gracefully: missing
// attribution data is reported in the summary, never as an error, because the
// platform's webhook delivery is independent of whether prior steps succeeded.
const (
	ConversionRecorded        = "conversion recorded"
	ConversionInstallNotFound = "conversion recorded but install not found"
)

// AffiliateService resolves click, install and conversion events into
// attribution records: click -> referral (pending) -> install -> conversion.
type AffiliateService struct {
	affiliateRepo *repository.AffiliateRepository
	leadRepo      *repository.LeadRepository
}

func NewAffiliateService(affiliateRepo *repository.AffiliateRepository, leadRepo *repository.LeadRepository) *AffiliateService {
	return &AffiliateService{affiliateRepo: affiliateRepo, leadRepo: leadRepo}
}

// GetOrCreateLink returns the user's affiliate link, creating it on first
// request with a fresh UUID token.
func (s *AffiliateService) GetOrCreateLink(userID uint) (*models.AffiliateLink, error) {
	link, err := s.affiliateRepo.GetLinkByUserID(userID)
	if err == nil {
		return link, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	link = &models.AffiliateLink{
		AffiliateUserID: userID,
		Token:           uuid.New().String(),
	}
	if err := s.affiliateRepo.CreateLink(link); err != nil {
		return nil, err
	}
	log.Printf("[affiliate] link created | user_id=%d token=%s", userID, link.Token)
	return link, nil
}

// ResolveLinkByToken maps an outbound tracking token back to its link.
func (s *AffiliateService) ResolveLinkByToken(token string) (*models.AffiliateLink, error) {
	link, err := s.affiliateRepo.GetLinkByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return link, nil
}

// RecordClick appends a click event and upserts the (affiliate, shop)
// referral. Clicks are never deduplicated; the referral keeps last-click
// state and stays a single row per pair.
func (s *AffiliateService) RecordClick(affiliateUserID uint, shopDomain, utmSource string) (*models.AffiliateClick, *models.AffiliateReferral, error) {
	shopDomain = shopdomain.Normalize(shopDomain)
	if !shopdomain.Valid(shopDomain) {
		return nil, nil, ErrInvalidShopDomain
	}

	click := &models.AffiliateClick{
		AffiliateUserID: affiliateUserID,
		ShopDomain:      shopDomain,
		UTMSource:       utmSource,
	}
	if err := s.affiliateRepo.CreateClick(click); err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	ref := &models.AffiliateReferral{
		AffiliateUserID: affiliateUserID,
		ShopDomain:      shopDomain,
		LastClickID:     &click.ID,
		LastClickedAt:   &now,
		Status:          domain.ReferralPending,
	}
	if err := s.affiliateRepo.UpsertReferral(ref); err != nil {
		return nil, nil, err
	}
	// Re-read: on conflict the upsert updated the existing row, not ref.
	referral, err := s.affiliateRepo.GetReferral(affiliateUserID, shopDomain)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("[affiliate] click recorded | click_id=%d referral_id=%d shop=%s", click.ID, referral.ID, shopDomain)
	return click, referral, nil
}

// RecordBareClick appends a click with no shop attribution (landing-page hit).
func (s *AffiliateService) RecordBareClick(affiliateUserID uint, utmSource string) (*models.AffiliateClick, error) {
	click := &models.AffiliateClick{
		AffiliateUserID: affiliateUserID,
		UTMSource:       utmSource,
	}
	if err := s.affiliateRepo.CreateClick(click); err != nil {
		return nil, err
	}
	return click, nil
}

// HandleInstallCallback records that a referred lead activated the
// integration. An unknown link token returns (nil, nil): the sender is an
// untrusted platform and must not be taught to retry a permanently dead
// reference. Delivery may retry, so installs are idempotent on
// (affiliate_link_id, lead_id).
func (s *AffiliateService) HandleInstallCallback(linkToken string, leadID *uint, shopDomain string) (*models.AffiliateInstall, error) {
	link, err := s.affiliateRepo.GetLinkByToken(linkToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[affiliate] install ignored, link not found | token=%s", linkToken)
			return nil, nil
		}
		return nil, err
	}
	shopDomain = shopdomain.Normalize(shopDomain)

	var lead *models.Lead
	if leadID != nil {
		lead, err = s.leadRepo.GetByID(*leadID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if lead == nil {
			log.Printf("[affiliate] provided lead not found, creating fresh | lead_id=%d", *leadID)
		}
	}
	if lead == nil {
		lead = &models.Lead{
			Source:          domain.LeadSourceAffiliate,
			Status:          domain.LeadStatusNew,
			CompanyName:     shopDomain,
			AffiliateLinkID: &link.ID,
		}
		if err := s.leadRepo.Create(lead); err != nil {
			return nil, err
		}
		log.Printf("[affiliate] lead created from install | lead_id=%d", lead.ID)
	}

	// First attribution wins; never overwrite an existing link.
	if lead.AffiliateLinkID == nil {
		if err := s.leadRepo.AttributeToLink(lead.ID, link.ID); err != nil {
			return nil, err
		}
	}

	existing, err := s.affiliateRepo.GetInstall(link.ID, lead.ID)
	if err == nil {
		log.Printf("[affiliate] install already recorded | install_id=%d", existing.ID)
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	install := &models.AffiliateInstall{
		AffiliateUserID: link.AffiliateUserID,
		AffiliateLinkID: link.ID,
		LeadID:          lead.ID,
		ShopDomain:      shopDomain,
		InstalledAt:     time.Now().UTC(),
	}
	if err := s.affiliateRepo.CreateInstall(install); err != nil {
		return nil, err
	}
	log.Printf("[affiliate] install recorded | install_id=%d link_id=%d lead_id=%d shop=%s",
		install.ID, link.ID, lead.ID, shopDomain)
	return install, nil
}

// HandleConversionCallback marks the shop's latest referral converted and
// stamps its latest install. Returns a status summary; missing attribution is
// logged and reported, not failed.
func (s *AffiliateService) HandleConversionCallback(shopDomain string) (string, error) {
	shopDomain = shopdomain.Normalize(shopDomain)
	if !shopdomain.Valid(shopDomain) {
		return "", ErrInvalidShopDomain
	}

	referral, err := s.affiliateRepo.LatestReferralByShop(shopDomain)
	switch {
	case err == nil:
		referral.Status = domain.ReferralConverted
		if err := s.affiliateRepo.SaveReferral(referral); err != nil {
			return "", err
		}
		log.Printf("[affiliate] conversion attributed | affiliate_user_id=%d shop=%s",
			referral.AffiliateUserID, shopDomain)
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Printf("[affiliate] conversion unattributed, no referral | shop=%s", shopDomain)
	default:
		return "", err
	}

	install, err := s.affiliateRepo.LatestInstallByShop(shopDomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[affiliate] conversion without install record | shop=%s", shopDomain)
			return ConversionInstallNotFound, nil
		}
		return "", err
	}
	now := time.Now().UTC()
	install.ConvertedAt = &now
	if err := s.affiliateRepo.SaveInstall(install); err != nil {
		return "", err
	}
	return ConversionRecorded, nil
}

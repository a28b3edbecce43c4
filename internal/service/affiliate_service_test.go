package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vantage/internal/domain"
	"vantage/internal/models"
	"vantage/internal/repository"
)

func newAffiliateService(db *gorm.DB) *AffiliateService {
	return NewAffiliateService(
		repository.NewAffiliateRepository(db),
		repository.NewLeadRepository(db),
	)
}

func TestGetOrCreateLinkIsStable(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)
	user, _, _ := seedPerson(t, db, "link@example.com")

	link, err := svc.GetOrCreateLink(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, link.Token)

	again, err := svc.GetOrCreateLink(user.ID)
	require.NoError(t, err)
	assert.Equal(t, link.ID, again.ID)
	assert.Equal(t, link.Token, again.Token)

	resolved, err := svc.ResolveLinkByToken(link.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.AffiliateUserID)
}

func TestResolveUnknownToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)

	_, err := svc.ResolveLinkByToken("no-such-token")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestRecordClickKeepsSingleReferral(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)
	user, _, _ := seedPerson(t, db, "clicks@example.com")
	link, err := svc.GetOrCreateLink(user.ID)
	require.NoError(t, err)

	var lastClickID uint
	for i := 0; i < 3; i++ {
		click, referral, err := svc.RecordClick(user.ID, "My-Shop.example.com", link.Token)
		require.NoError(t, err)
		assert.Equal(t, "my-shop.example.com", referral.ShopDomain)
		lastClickID = click.ID
	}

	var clickCount int64
	db.Model(&models.AffiliateClick{}).Where("affiliate_user_id = ?", user.ID).Count(&clickCount)
	assert.EqualValues(t, 3, clickCount)

	var referralCount int64
	db.Model(&models.AffiliateReferral{}).Where("affiliate_user_id = ?", user.ID).Count(&referralCount)
	assert.EqualValues(t, 1, referralCount)

	var ref models.AffiliateReferral
	require.NoError(t, db.Where("affiliate_user_id = ?", user.ID).First(&ref).Error)
	require.NotNil(t, ref.LastClickID)
	assert.Equal(t, lastClickID, *ref.LastClickID)
	assert.Equal(t, domain.ReferralPending, ref.Status)
}

func TestRecordClickRejectsBadShop(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)
	user, _, _ := seedPerson(t, db, "badshop@example.com")

	for _, shop := range []string{"", "https://shop.example.com", "noperiod", "a.b"} {
		_, _, err := svc.RecordClick(user.ID, shop, "tok")
		assert.ErrorIs(t, err, ErrInvalidShopDomain, "shop=%q", shop)
	}
}

func TestInstallCallbackIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)
	user, _, _ := seedPerson(t, db, "install@example.com")
	link, err := svc.GetOrCreateLink(user.ID)
	require.NoError(t, err)

	install, err := svc.HandleInstallCallback(link.Token, nil, "shop.example.com")
	require.NoError(t, err)
	require.NotNil(t, install)
	assert.Equal(t, link.ID, install.AffiliateLinkID)
	assert.Nil(t, install.ConvertedAt)

	// The first call created a lead; redelivery with the same lead returns
	// the existing install instead of a second row.
	again, err := svc.HandleInstallCallback(link.Token, &install.LeadID, "shop.example.com")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, install.ID, again.ID)

	var installCount int64
	db.Model(&models.AffiliateInstall{}).Count(&installCount)
	assert.EqualValues(t, 1, installCount)
}

func TestInstallCallbackCreatesLead(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)
	user, _, _ := seedPerson(t, db, "installlead@example.com")
	link, err := svc.GetOrCreateLink(user.ID)
	require.NoError(t, err)

	install, err := svc.HandleInstallCallback(link.Token, nil, "fresh.example.com")
	require.NoError(t, err)
	require.NotNil(t, install)

	var lead models.Lead
	require.NoError(t, db.First(&lead, install.LeadID).Error)
	assert.Equal(t, domain.LeadSourceAffiliate, lead.Source)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Equal(t, "fresh.example.com", lead.CompanyName)
	require.NotNil(t, lead.AffiliateLinkID)
	assert.Equal(t, link.ID, *lead.AffiliateLinkID)
}

func TestInstallCallbackIgnoresUnknownLink(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)

	install, err := svc.HandleInstallCallback("dead-token", nil, "shop.example.com")
	require.NoError(t, err)
	assert.Nil(t, install)
}

func TestInstallKeepsFirstAttribution(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)
	userA, _, _ := seedPerson(t, db, "affa@example.com")
	userB, _, _ := seedPerson(t, db, "affb@example.com")
	linkA, err := svc.GetOrCreateLink(userA.ID)
	require.NoError(t, err)
	linkB, err := svc.GetOrCreateLink(userB.ID)
	require.NoError(t, err)

	first, err := svc.HandleInstallCallback(linkA.Token, nil, "contested.example.com")
	require.NoError(t, err)
	require.NotNil(t, first)

	// A second affiliate's install for the same lead must not steal it.
	_, err = svc.HandleInstallCallback(linkB.Token, &first.LeadID, "contested.example.com")
	require.NoError(t, err)

	var lead models.Lead
	require.NoError(t, db.First(&lead, first.LeadID).Error)
	require.NotNil(t, lead.AffiliateLinkID)
	assert.Equal(t, linkA.ID, *lead.AffiliateLinkID)
}

func TestConversionCallback(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)
	user, _, _ := seedPerson(t, db, "convert@example.com")
	link, err := svc.GetOrCreateLink(user.ID)
	require.NoError(t, err)

	_, _, err = svc.RecordClick(user.ID, "conv.example.com", link.Token)
	require.NoError(t, err)
	install, err := svc.HandleInstallCallback(link.Token, nil, "conv.example.com")
	require.NoError(t, err)
	require.NotNil(t, install)

	status, err := svc.HandleConversionCallback("conv.example.com")
	require.NoError(t, err)
	assert.Equal(t, ConversionRecorded, status)

	var ref models.AffiliateReferral
	require.NoError(t, db.Where("shop_domain = ?", "conv.example.com").First(&ref).Error)
	assert.Equal(t, domain.ReferralConverted, ref.Status)

	var got models.AffiliateInstall
	require.NoError(t, db.First(&got, install.ID).Error)
	assert.NotNil(t, got.ConvertedAt)
}

func TestConversionWithoutInstall(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)
	user, _, _ := seedPerson(t, db, "noinstall@example.com")
	link, err := svc.GetOrCreateLink(user.ID)
	require.NoError(t, err)

	_, _, err = svc.RecordClick(user.ID, "clickonly.example.com", link.Token)
	require.NoError(t, err)

	status, err := svc.HandleConversionCallback("clickonly.example.com")
	require.NoError(t, err)
	assert.Equal(t, ConversionInstallNotFound, status)

	var ref models.AffiliateReferral
	require.NoError(t, db.Where("shop_domain = ?", "clickonly.example.com").First(&ref).Error)
	assert.Equal(t, domain.ReferralConverted, ref.Status)
}

func TestConversionRejectsBadShop(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)

	_, err := svc.HandleConversionCallback("http://bad.example.com")
	assert.ErrorIs(t, err, ErrInvalidShopDomain)
}

func TestClickDoesNotResetConvertedReferral(t *testing.T) {
	db := newTestDB(t)
	svc := newAffiliateService(db)
	user, _, _ := seedPerson(t, db, "sticky@example.com")
	link, err := svc.GetOrCreateLink(user.ID)
	require.NoError(t, err)

	_, _, err = svc.RecordClick(user.ID, "sticky.example.com", link.Token)
	require.NoError(t, err)
	_, err = svc.HandleInstallCallback(link.Token, nil, "sticky.example.com")
	require.NoError(t, err)
	_, err = svc.HandleConversionCallback("sticky.example.com")
	require.NoError(t, err)

	// A later click refreshes last-click state but must not demote the status.
	_, referral, err := svc.RecordClick(user.ID, "sticky.example.com", link.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ReferralConverted, referral.Status)
}

package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vantage/internal/domain"
	"vantage/internal/models"
)

type DashboardStats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalLeads         int64 `json:"total_leads"`
	TotalAccounts      int64 `json:"total_accounts"`
	OpenOpportunities  int64 `json:"open_opportunities"`
	WonOpportunities   int64 `json:"won_opportunities"`
	TotalClicks        int64 `json:"total_clicks"`
	TotalReferrals     int64 `json:"total_referrals"`
	TotalInstalls      int64 `json:"total_installs"`
	ConvertedReferrals int64 `json:"converted_referrals"`

	PendingWithdrawals int64           `json:"pending_withdrawals"`
	TotalEarnings      decimal.Decimal `json:"total_earnings"`
	TotalWithdrawn     decimal.Decimal `json:"total_withdrawn"`
	PendingPayouts     decimal.Decimal `json:"pending_payouts"`
}

// AdminRepository aggregates cross-entity stats for the admin dashboard.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetDashboardStats() (*DashboardStats, error) {
	var s DashboardStats
	r.db.Model(&models.User{}).Count(&s.TotalUsers)
	r.db.Model(&models.Lead{}).Count(&s.TotalLeads)
	r.db.Model(&models.Account{}).Count(&s.TotalAccounts)
	r.db.Model(&models.Opportunity{}).Where("status = ?", domain.OpportunityOpen).Count(&s.OpenOpportunities)
	r.db.Model(&models.Opportunity{}).Where("status = ?", domain.OpportunityWon).Count(&s.WonOpportunities)

	r.db.Model(&models.AffiliateClick{}).Count(&s.TotalClicks)
	r.db.Model(&models.AffiliateReferral{}).Count(&s.TotalReferrals)
	r.db.Model(&models.AffiliateInstall{}).Count(&s.TotalInstalls)
	r.db.Model(&models.AffiliateReferral{}).Where("status = ?", domain.ReferralConverted).Count(&s.ConvertedReferrals)

	r.db.Model(&models.WithdrawalRequest{}).
		Where("status IN ?", []string{domain.WithdrawalRequested, domain.WithdrawalApproved, domain.WithdrawalProcessing}).
		Count(&s.PendingWithdrawals)

	var sums struct {
		Earnings  decimal.Decimal
		Withdrawn decimal.Decimal
		Pending   decimal.Decimal
	}
	r.db.Model(&models.Wallet{}).
		Select("COALESCE(SUM(lifetime_earnings), 0) AS earnings, " +
			"COALESCE(SUM(lifetime_withdrawals), 0) AS withdrawn, " +
			"COALESCE(SUM(pending_payout_amount), 0) AS pending").
		Scan(&sums)
	s.TotalEarnings = sums.Earnings
	s.TotalWithdrawn = sums.Withdrawn
	s.PendingPayouts = sums.Pending

	return &s, nil
}

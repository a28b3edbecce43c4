package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vantage/internal/domain"
	"vantage/internal/models"
	"vantage/internal/repository"
)

var (
	ErrCommissionNotFound = errors.New("commission record not found")
	ErrCommissionNotOpen  = errors.New("commission is not pending")
)

// CommissionService links closed opportunities to wallet credits: a pending
// record is created by an admin and, once marked paid, the amount lands in
// the salesperson's wallet through the ledger.
type CommissionService struct {
	db             *gorm.DB
	commissionRepo *repository.CommissionRepository
	personRepo     *repository.PersonRepository
	walletSvc      *WalletService
}

func NewCommissionService(
	db *gorm.DB,
	commissionRepo *repository.CommissionRepository,
	personRepo *repository.PersonRepository,
	walletSvc *WalletService,
) *CommissionService {
	return &CommissionService{
		db:             db,
		commissionRepo: commissionRepo,
		personRepo:     personRepo,
		walletSvc:      walletSvc,
	}
}

func (s *CommissionService) Create(createdByID, salespersonID uint, opportunityID *uint, amount, percentage decimal.Decimal) (*models.CommissionRecord, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, err := s.personRepo.GetByID(salespersonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	c := &models.CommissionRecord{
		CreatedByID:   createdByID,
		SalespersonID: salespersonID,
		OpportunityID: opportunityID,
		Amount:        amount,
		Percentage:    percentage,
		Status:        domain.CommissionPending,
	}
	if err := s.commissionRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// MarkPaid flips a pending commission to paid and credits the salesperson's
// wallet in the same transaction.
func (s *CommissionService) MarkPaid(id uint) (*models.CommissionRecord, error) {
	var record *models.CommissionRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Locked read: redelivered pay requests serialize on the record row
		// before the pending check, so only one can credit the wallet.
		c, err := s.commissionRepo.GetByIDForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommissionNotFound
			}
			return err
		}
		if c.Status != domain.CommissionPending {
			return ErrCommissionNotOpen
		}
		now := time.Now().UTC()
		c.Status = domain.CommissionPaid
		c.PaidAt = &now
		if err := tx.Save(c).Error; err != nil {
			return err
		}
		desc := fmt.Sprintf("Commission record #%d paid", c.ID)
		if _, err := s.walletSvc.CreditCommissionTx(tx, c.SalespersonID, c.Amount, desc); err != nil {
			return err
		}
		record = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Cancel voids a pending commission. Paid commissions cannot be canceled.
func (s *CommissionService) Cancel(id uint) (*models.CommissionRecord, error) {
	c, err := s.commissionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommissionNotFound
		}
		return nil, err
	}
	if c.Status != domain.CommissionPending {
		return nil, ErrCommissionNotOpen
	}
	c.Status = domain.CommissionCanceled
	if err := s.db.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

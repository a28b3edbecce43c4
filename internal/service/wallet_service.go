package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vantage/internal/domain"
	"vantage/internal/models"
	"vantage/internal/repository"
)

var (
	ErrPersonNotFound     = errors.New("person record not found for user")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
	ErrInvalidAmount      = errors.New("amount must be greater than 0")
	ErrInsufficientFunds  = errors.New("insufficient available balance")
	ErrInvalidPayout      = errors.New("invalid payout method")
	ErrInvalidTransition  = errors.New("invalid withdrawal status transition")
)

// WalletService owns every balance mutation. Each mutating operation runs in
// a single transaction with the wallet row locked FOR UPDATE, so the ledger
// append and the balance change commit together and concurrent requests
// against the same wallet serialize instead of double-spending.
type WalletService struct {
	db             *gorm.DB
	personRepo     *repository.PersonRepository
	walletRepo     *repository.WalletRepository
	withdrawalRepo *repository.WithdrawalRepository
}

func NewWalletService(
	db *gorm.DB,
	personRepo *repository.PersonRepository,
	walletRepo *repository.WalletRepository,
	withdrawalRepo *repository.WithdrawalRepository,
) *WalletService {
	return &WalletService{
		db:             db,
		personRepo:     personRepo,
		walletRepo:     walletRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// WithdrawalInput carries a withdrawal request's amount and payout details.
type WithdrawalInput struct {
	Amount       decimal.Decimal
	PayoutMethod string

	BankAccountHolderName string
	BankAccountNumber     string
	BankName              string
	BankIFSCCode          string
	PaypalEmail           string
}

// GetWalletForUser resolves user -> person -> wallet. Wallets are created at
// registration, never here.
func (s *WalletService) GetWalletForUser(userID uint) (*models.Wallet, error) {
	person, err := s.personRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	wallet, err := s.walletRepo.GetByPersonID(person.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return wallet, nil
}

// CreditCommission adds earned commission to a person's wallet and appends a
// commission_credit ledger entry.
func (s *WalletService) CreditCommission(personID uint, amount decimal.Decimal) (*models.Wallet, error) {
	var wallet *models.Wallet
	err := s.db.Transaction(func(tx *gorm.DB) error {
		w, err := s.CreditCommissionTx(tx, personID, amount, fmt.Sprintf("Commission credited: %s", amount.StringFixed(2)))
		if err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// CreditCommissionTx is the credit step for callers that already hold a
// transaction, so a commission payout and its wallet credit commit together.
func (s *WalletService) CreditCommissionTx(tx *gorm.DB, personID uint, amount decimal.Decimal, description string) (*models.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	w, err := s.walletRepo.GetByPersonIDForUpdate(tx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	w.AvailableBalance = w.AvailableBalance.Add(amount)
	w.LifetimeEarnings = w.LifetimeEarnings.Add(amount)
	if err := tx.Save(w).Error; err != nil {
		return nil, err
	}
	entry := &models.WalletTransaction{
		WalletID:     w.ID,
		Type:         domain.TxCommissionCredit,
		Amount:       amount,
		BalanceAfter: w.AvailableBalance,
		Description:  description,
	}
	if err := tx.Create(entry).Error; err != nil {
		return nil, err
	}
	return w, nil
}

// RequestWithdrawal reserves funds for payout: the amount leaves
// available_balance and enters pending_payout_amount before any admin action,
// so two requests cannot spend the same balance.
func (s *WalletService) RequestWithdrawal(userID uint, in WithdrawalInput) (*models.WithdrawalRequest, error) {
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if in.PayoutMethod != domain.PayoutMethodPaypal && in.PayoutMethod != domain.PayoutMethodBankTransfer {
		return nil, ErrInvalidPayout
	}
	person, err := s.personRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}

	var withdrawal *models.WithdrawalRequest
	err = s.db.Transaction(func(tx *gorm.DB) error {
		w, err := s.walletRepo.GetByPersonIDForUpdate(tx, person.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWalletNotFound
			}
			return err
		}
		if w.AvailableBalance.LessThan(in.Amount) {
			return ErrInsufficientFunds
		}
		w.AvailableBalance = w.AvailableBalance.Sub(in.Amount)
		w.PendingPayoutAmount = w.PendingPayoutAmount.Add(in.Amount)
		if err := tx.Save(w).Error; err != nil {
			return err
		}
		wd := &models.WithdrawalRequest{
			WalletID:              w.ID,
			RequestedByID:         person.ID,
			Amount:                in.Amount,
			Currency:              w.Currency,
			Status:                domain.WithdrawalRequested,
			PayoutMethod:          in.PayoutMethod,
			BankAccountHolderName: in.BankAccountHolderName,
			BankAccountNumber:     in.BankAccountNumber,
			BankName:              in.BankName,
			BankIFSCCode:          in.BankIFSCCode,
			PaypalEmail:           in.PaypalEmail,
			ReferenceID:           fmt.Sprintf("wd-%s", uuid.New().String()),
			RequestedAt:           time.Now().UTC(),
		}
		if err := tx.Create(wd).Error; err != nil {
			return err
		}
		entry := &models.WalletTransaction{
			WalletID:            w.ID,
			Type:                domain.TxWithdrawalRequested,
			Amount:              in.Amount,
			BalanceAfter:        w.AvailableBalance,
			RelatedWithdrawalID: &wd.ID,
			Description:         "Withdrawal requested",
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		withdrawal = wd
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

// UpdateWithdrawalStatus applies an admin decision. Only approved, completed
// and rejected are accepted from the API; the transition table rejects moves
// out of terminal states, so a rejected withdrawal can never be completed and
// double-count lifetime_withdrawals.
func (s *WalletService) UpdateWithdrawalStatus(withdrawalID uint, newStatus, adminComments string) (*models.WithdrawalRequest, error) {
	switch newStatus {
	case domain.WithdrawalApproved, domain.WithdrawalCompleted, domain.WithdrawalRejected:
	default:
		return nil, ErrInvalidTransition
	}

	var withdrawal *models.WithdrawalRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the withdrawal before the transition check: two concurrent
		// decisions must serialize here, or both would read the same prior
		// status and both apply their balance effects.
		wd, err := s.withdrawalRepo.GetByIDForUpdate(tx, withdrawalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWithdrawalNotFound
			}
			return err
		}
		if !domain.CanTransitionWithdrawal(wd.Status, newStatus) {
			return ErrInvalidTransition
		}
		w, err := s.walletRepo.GetByIDForUpdate(tx, wd.WalletID)
		if err != nil {
			return err
		}

		wd.Status = newStatus
		if adminComments != "" {
			wd.AdminComments = adminComments
		}

		switch newStatus {
		case domain.WithdrawalApproved:
			// Status flip only; funds stay reserved in pending.

		case domain.WithdrawalCompleted:
			now := time.Now().UTC()
			wd.CompletedAt = &now
			w.PendingPayoutAmount = w.PendingPayoutAmount.Sub(wd.Amount)
			w.LifetimeWithdrawals = w.LifetimeWithdrawals.Add(wd.Amount)
			if err := tx.Save(w).Error; err != nil {
				return err
			}
			entry := &models.WalletTransaction{
				WalletID:            w.ID,
				Type:                domain.TxWithdrawalCompleted,
				Amount:              wd.Amount,
				BalanceAfter:        w.AvailableBalance, // unchanged; funds left available at request time
				RelatedWithdrawalID: &wd.ID,
				Description:         "Withdrawal completed",
			}
			if err := tx.Create(entry).Error; err != nil {
				return err
			}

		case domain.WithdrawalRejected:
			w.AvailableBalance = w.AvailableBalance.Add(wd.Amount)
			w.PendingPayoutAmount = w.PendingPayoutAmount.Sub(wd.Amount)
			if err := tx.Save(w).Error; err != nil {
				return err
			}
			entry := &models.WalletTransaction{
				WalletID:            w.ID,
				Type:                domain.TxWithdrawalRejected,
				Amount:              wd.Amount,
				BalanceAfter:        w.AvailableBalance,
				RelatedWithdrawalID: &wd.ID,
				Description:         "Withdrawal rejected",
			}
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}

		if err := tx.Save(wd).Error; err != nil {
			return err
		}
		withdrawal = wd
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

// ListWithdrawalsForUser returns the caller's withdrawal history.
func (s *WalletService) ListWithdrawalsForUser(userID uint) ([]models.WithdrawalRequest, error) {
	person, err := s.personRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return s.withdrawalRepo.ListByPersonID(person.ID)
}

// ListTransactionsForPerson returns the ledger for a person's wallet.
func (s *WalletService) ListTransactionsForPerson(personID uint) ([]models.WalletTransaction, error) {
	wallet, err := s.walletRepo.GetByPersonID(personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return s.walletRepo.ListTransactions(wallet.ID)
}

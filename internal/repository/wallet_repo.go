package repository

import (
	"vantage/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) Create(w *models.Wallet) error {
	return r.db.Create(w).Error
}

func (r *WalletRepository) GetByPersonID(personID uint) (*models.Wallet, error) {
	var w models.Wallet
	if err := r.db.Where("person_id = ?", personID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// lockForUpdate adds SELECT ... FOR UPDATE on dialects that support it.
// SQLite has no row locks; its transactions take a whole-database write
// lock, which serializes the same check-then-write sequences.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// GetByPersonIDForUpdate loads the wallet row with a row-level lock. Must be
// called inside a transaction; every balance mutation goes through this so
// concurrent check-then-write sequences serialize on the wallet row.
func (r *WalletRepository) GetByPersonIDForUpdate(tx *gorm.DB, personID uint) (*models.Wallet, error) {
	var w models.Wallet
	err := lockForUpdate(tx).Where("person_id = ?", personID).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepository) GetByIDForUpdate(tx *gorm.DB, id uint) (*models.Wallet, error) {
	var w models.Wallet
	err := lockForUpdate(tx).First(&w, id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListTransactions returns the ledger for a wallet, newest first.
func (r *WalletRepository) ListTransactions(walletID uint) ([]models.WalletTransaction, error) {
	var txs []models.WalletTransaction
	err := r.db.Where("wallet_id = ?", walletID).
		Order("created_at DESC, id DESC").Find(&txs).Error
	return txs, err
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vantage/internal/domain"
	"vantage/internal/repository"
)

func newCommissionService(db *gorm.DB) *CommissionService {
	return NewCommissionService(
		db,
		repository.NewCommissionRepository(db),
		repository.NewPersonRepository(db),
		newWalletService(db),
	)
}

func TestCommissionMarkPaidCreditsWallet(t *testing.T) {
	db := newTestDB(t)
	svc := newCommissionService(db)
	walletSvc := newWalletService(db)
	_, person, _ := seedPerson(t, db, "salesperson@example.com")

	record, err := svc.Create(1, person.ID, nil, d("120.00"), d("10.00"))
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionPending, record.Status)

	paid, err := svc.MarkPaid(record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	wallet, err := walletSvc.GetWalletForUser(person.UserID)
	require.NoError(t, err)
	assert.True(t, wallet.AvailableBalance.Equal(d("120.00")))
	assert.True(t, wallet.LifetimeEarnings.Equal(d("120.00")))

	txs, err := walletSvc.ListTransactionsForPerson(person.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.TxCommissionCredit, txs[0].Type)
}

func TestCommissionMarkPaidNotRepeatable(t *testing.T) {
	db := newTestDB(t)
	svc := newCommissionService(db)
	walletSvc := newWalletService(db)
	_, person, _ := seedPerson(t, db, "repeat@example.com")

	record, err := svc.Create(1, person.ID, nil, d("80.00"), d("5.00"))
	require.NoError(t, err)
	_, err = svc.MarkPaid(record.ID)
	require.NoError(t, err)

	_, err = svc.MarkPaid(record.ID)
	assert.ErrorIs(t, err, ErrCommissionNotOpen)

	wallet, err := walletSvc.GetWalletForUser(person.UserID)
	require.NoError(t, err)
	assert.True(t, wallet.AvailableBalance.Equal(d("80.00")))
}

func TestCommissionCancel(t *testing.T) {
	db := newTestDB(t)
	svc := newCommissionService(db)
	_, person, _ := seedPerson(t, db, "cancel@example.com")

	record, err := svc.Create(1, person.ID, nil, d("40.00"), d("5.00"))
	require.NoError(t, err)

	canceled, err := svc.Cancel(record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionCanceled, canceled.Status)

	_, err = svc.MarkPaid(record.ID)
	assert.ErrorIs(t, err, ErrCommissionNotOpen)
	_, err = svc.Cancel(record.ID)
	assert.ErrorIs(t, err, ErrCommissionNotOpen)
}

func TestCommissionCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCommissionService(db)
	_, person, _ := seedPerson(t, db, "createval@example.com")

	_, err := svc.Create(1, person.ID, nil, d("0"), d("0"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Create(1, 9999, nil, d("10.00"), d("0"))
	assert.ErrorIs(t, err, ErrPersonNotFound)

	_, err = svc.MarkPaid(12345)
	assert.ErrorIs(t, err, ErrCommissionNotFound)
}

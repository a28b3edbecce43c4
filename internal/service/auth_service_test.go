package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vantage/config"
	"vantage/internal/auth"
	"vantage/internal/domain"
	"vantage/internal/models"
	"vantage/internal/repository"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access",
			RefreshSecret: "test-refresh",
			AccessExpiry:  time.Hour,
			RefreshExpiry: 24 * time.Hour,
			Issuer:        "vantage-test",
		},
		Admin:  config.AdminConfig{ID: "root-admin", PasswordHash: string(hash)},
		Wallet: config.WalletConfig{Currency: "USD"},
	}
}

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	return NewAuthService(testConfig(t), db, repository.NewUserRepository(db))
}

func TestRegisterCreatesPersonAndWallet(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	user, access, refresh, err := svc.Register("Grace", "Hopper", "grace@example.com", "s3cret-pass", "+1", "5551234")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	var person models.Person
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&person).Error)
	var wallet models.Wallet
	require.NoError(t, db.Where("person_id = ?", person.ID).First(&wallet).Error)
	assert.Equal(t, "USD", wallet.Currency)
	assert.True(t, wallet.AvailableBalance.IsZero())
	assert.True(t, wallet.LifetimeEarnings.IsZero())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, _, _, err := svc.Register("A", "B", "dup@example.com", "password1", "", "")
	require.NoError(t, err)
	_, _, _, err = svc.Register("C", "D", "dup@example.com", "password2", "", "")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, _, _, err := svc.Register("L", "U", "login@example.com", "correct-horse", "", "")
	require.NoError(t, err)

	user, access, _, err := svc.Login("login@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", user.Email)
	assert.NotEmpty(t, access)

	_, _, _, err = svc.Login("login@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCreds)
	_, _, _, err = svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestAdminLogin(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig(t)
	svc := NewAuthService(cfg, db, repository.NewUserRepository(db))

	token, err := svc.AdminLogin("root-admin", "admin-secret")
	require.NoError(t, err)

	claims, err := auth.ParseAccessToken(&cfg.JWT, token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.EqualValues(t, 0, claims.UserID)

	_, err = svc.AdminLogin("root-admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCreds)
	_, err = svc.AdminLogin("other-admin", "admin-secret")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

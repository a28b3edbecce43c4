package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vantage/internal/database"
	"vantage/internal/domain"
	"vantage/internal/models"
)

// newTestDB opens a named in-memory SQLite database shared across the pool's
// connections, so queries outside a transaction see the migrated schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// seedPerson creates a user with its person and empty wallet, mirroring what
// registration does.
func seedPerson(t *testing.T, db *gorm.DB, email string) (*models.User, *models.Person, *models.Wallet) {
	t.Helper()
	u := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "x",
		Role:         domain.RoleUser,
	}
	require.NoError(t, db.Create(u).Error)
	p := &models.Person{UserID: u.ID}
	require.NoError(t, db.Create(p).Error)
	w := &models.Wallet{PersonID: p.ID, Currency: "USD"}
	require.NoError(t, db.Create(w).Error)
	return u, p, w
}

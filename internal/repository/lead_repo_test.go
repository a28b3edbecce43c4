package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vantage/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Lead{}, &models.AffiliateLink{}))
	return db
}

func TestLeadPatchWhitelist(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeadRepository(db)

	lead := &models.Lead{FirstName: "Ada", Status: "New"}
	require.NoError(t, repo.Create(lead))

	got, err := repo.Patch(lead.ID, map[string]interface{}{"status": "Qualified", "priority": "high"})
	require.NoError(t, err)
	assert.Equal(t, "Qualified", got.Status)
	assert.Equal(t, "high", got.Priority)

	_, err = repo.Patch(lead.ID, map[string]interface{}{"password_hash": "oops"})
	assert.ErrorIs(t, err, ErrUnknownPatchField)

	// A rejected patch must not partially apply.
	_, err = repo.Patch(lead.ID, map[string]interface{}{"status": "Lost", "affiliate_link_id": 3})
	assert.ErrorIs(t, err, ErrUnknownPatchField)
	got, err = repo.GetByID(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Qualified", got.Status)

	_, err = repo.Patch(99999, map[string]interface{}{"status": "Lost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLeadAttributeToLinkFirstWins(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeadRepository(db)

	lead := &models.Lead{CompanyName: "shop.example.com"}
	require.NoError(t, repo.Create(lead))

	require.NoError(t, repo.AttributeToLink(lead.ID, 10))
	require.NoError(t, repo.AttributeToLink(lead.ID, 20))

	got, err := repo.GetByID(lead.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AffiliateLinkID)
	assert.EqualValues(t, 10, *got.AffiliateLinkID)
}

func TestLeadTrashAndRestore(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeadRepository(db)

	lead := &models.Lead{FirstName: "Bin"}
	require.NoError(t, repo.Create(lead))
	require.NoError(t, repo.SoftDelete(lead.ID))

	_, err := repo.GetByID(lead.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	trashed, total, err := repo.ListTrashed(1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, trashed, 1)
	assert.Equal(t, lead.ID, trashed[0].ID)

	require.NoError(t, repo.Restore(lead.ID))
	got, err := repo.GetByID(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bin", got.FirstName)

	// Restoring a live lead is a no-op error.
	assert.ErrorIs(t, repo.Restore(lead.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.SoftDelete(99999), gorm.ErrRecordNotFound)
}

func TestLeadListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeadRepository(db)

	owner := uint(7)
	require.NoError(t, repo.Create(&models.Lead{FirstName: "A", Status: "New", Source: "affiliate"}))
	require.NoError(t, repo.Create(&models.Lead{FirstName: "B", Status: "Qualified", Source: "web", OwnerID: &owner}))
	require.NoError(t, repo.Create(&models.Lead{FirstName: "C", Status: "New", Source: "web", OwnerID: &owner}))

	_, total, err := repo.List("New", "", 0, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	_, total, err = repo.List("", "web", 7, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	_, total, err = repo.List("New", "web", 7, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

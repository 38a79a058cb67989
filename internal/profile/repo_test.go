package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/minhtridev/edustore-backend/pkg/db/models"
)

func setupProfileTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS profiles (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  full_name TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  avatar_url TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`

	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestCreateAndFind(t *testing.T) {
	db := setupProfileTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, &models.Profile{
		ID:       userID,
		Email:    "an@example.com",
		FullName: "Nguyễn Văn An",
	}))

	row, err := repo.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "an@example.com", row.Email)
	assert.Equal(t, "Nguyễn Văn An", row.FullName)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateFields(t *testing.T) {
	db := setupProfileTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, &models.Profile{
		ID:    userID,
		Email: "an@example.com",
		Phone: "0901111111",
	}))

	require.NoError(t, repo.UpdateFields(ctx, userID, map[string]any{
		"phone":   "0902222222",
		"address": "Đà Nẵng",
	}))

	row, err := repo.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "0902222222", row.Phone)
	assert.Equal(t, "Đà Nẵng", row.Address)

	err = repo.UpdateFields(ctx, uuid.New(), map[string]any{"phone": "0903333333"})
	assert.ErrorIs(t, err, ErrNotFound)
}

package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Joaobosco1993/sales-api/internal/models"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.RefreshToken{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func TestRotateToken(t *testing.T) {
	db := initTestDB(t)
	svc := &TokenService{
		DB:            db,
		JWTSecret:     []byte("access_secret"),
		RefreshSecret: []byte("refresh_secret"),
	}

	raw, err := SignRefreshToken(1, "user", svc.RefreshSecret)
	require.NoError(t, err)
	require.NoError(t, SaveRefreshToken(db, raw, 1))

	newAccess, newRefresh, err := svc.RotateToken(raw)
	require.NoError(t, err)
	require.NotEmpty(t, newAccess)
	require.NotEmpty(t, newRefresh)
	require.NotEqual(t, raw, newRefresh)

	// the old refresh token is revoked and cannot rotate again
	var old models.RefreshToken
	require.NoError(t, db.Where("token = ?", raw).First(&old).Error)
	require.True(t, old.Revoked)

	_, _, err = svc.RotateToken(raw)
	require.Error(t, err)

	// the new one can
	_, _, err = svc.RotateToken(newRefresh)
	require.NoError(t, err)
}

func TestRotateTokenRejectsAccessToken(t *testing.T) {
	db := initTestDB(t)
	svc := &TokenService{
		DB:            db,
		JWTSecret:     []byte("access_secret"),
		RefreshSecret: []byte("refresh_secret"),
	}

	// an access token signed with the refresh secret still lacks typ=refresh
	raw, err := SignAccessToken(1, "user", svc.RefreshSecret)
	require.NoError(t, err)

	_, _, err = svc.RotateToken(raw)
	require.Error(t, err)
}

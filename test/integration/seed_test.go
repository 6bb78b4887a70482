package integration_test

import (
	"testing"

	"encore_backend/internal/app"
	"encore_backend/internal/config"
	"encore_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFirstAdminOncePerDatabase(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	cfg := *config.GetConfig()
	cfg.Admin.Email = "seed-admin@test.local"
	cfg.Admin.Password = "seed-password"
	cfg.Admin.FullName = "Seeded Admin"

	require.NoError(t, app.SeedFirstAdmin(ts.DB, &cfg))
	require.NoError(t, app.SeedFirstAdmin(ts.DB, &cfg))

	var admins int64
	require.NoError(t, ts.DB.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&admins).Error)
	assert.Equal(t, int64(1), admins)
}

func TestSeedFirstAdminSkipsWhenAdminExists(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	cfg := *config.GetConfig()
	cfg.Admin.Email = "late-seed@test.local"
	cfg.Admin.Password = "seed-password"

	existing := &models.User{
		Email:        "earlier-admin@test.local",
		PasswordHash: "x",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, ts.DB.Create(existing).Error)

	require.NoError(t, app.SeedFirstAdmin(ts.DB, &cfg))

	var count int64
	require.NoError(t, ts.DB.Model(&models.User{}).Where("email = ?", cfg.Admin.Email).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"encore_backend/internal/models"
	"encore_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterArtistSetsRoleFlags(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("flags_%d@test.local", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"role":       "artist",
		"stage_name": "DJ Flags",
		"genres":     []string{"afrobeat", "jazz"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		IsArtist     bool   `json:"is_artist"`
		IsAdmin      bool   `json:"is_admin"`
		IsCustomer   bool   `json:"is_customer"`
		User         struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.True(t, resp.IsArtist)
	assert.False(t, resp.IsAdmin)
	assert.False(t, resp.IsCustomer)
	assert.Equal(t, "artist", resp.User.Role)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("dup_%d@test.local", time.Now().UnixNano())
	body := map[string]interface{}{
		"email":     email,
		"password":  "password123",
		"role":      "customer",
		"full_name": "First User",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, respBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode, respBody)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "sneaky@test.local",
		"password": "password123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("login_%d@test.local", time.Now().UnixNano())
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":     email,
		"password":  "password123",
		"role":      "customer",
		"full_name": "Login Tester",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestRefreshTokenRotation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("refresh_%d@test.local", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":     email,
		"password":  "password123",
		"role":      "customer",
		"full_name": "Refresh Tester",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var first struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &first))

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": first.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var second struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &second))
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// the consumed token must no longer work
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": first.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("logout_%d@test.local", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":     email,
		"password":  "password123",
		"role":      "customer",
		"full_name": "Logout Tester",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var resp struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "", map[string]interface{}{
		"refresh_token": resp.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": resp.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestLogoutAllDevicesRevokesEverySession(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("logoutall_%d@test.local", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":     email,
		"password":  "password123",
		"role":      "customer",
		"full_name": "Session Tester",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var first struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &first))

	// a second login opens a second session
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var second struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &second))

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "", map[string]interface{}{
		"refresh_token": first.RefreshToken,
		"all_devices":   true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": second.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestUserRepositoryMapsDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	repo := repositories.NewUserRepository()
	email := fmt.Sprintf("unique_%d@test.local", time.Now().UnixNano())

	first := &models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         models.UserRoleCustomer,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, repo.Create(ts.DB, first))

	// same email again goes straight to the unique index
	dup := &models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         models.UserRoleCustomer,
		Status:       models.UserStatusActive,
	}
	err := repo.Create(ts.DB, dup)
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)
}

func TestRefreshTokenRepositoryPurgesExpired(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("purge_%d@test.local", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":     email,
		"password":  "password123",
		"role":      "customer",
		"full_name": "Purge Tester",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	expired := &models.RefreshToken{
		UserID:    resp.User.ID,
		Token:     fmt.Sprintf("expired_%d", time.Now().UnixNano()),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, ts.DB.Create(expired).Error)

	repo := repositories.NewRefreshTokenRepository()
	require.NoError(t, repo.DeleteExpired(ts.DB))

	var remaining int64
	require.NoError(t, ts.DB.Model(&models.RefreshToken{}).Where("user_id = ?", resp.User.ID).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}

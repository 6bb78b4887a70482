package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"encore_backend/internal/auth"
	"encore_backend/internal/models"

	"github.com/stretchr/testify/require"
)

// RegisteredUser is the result of registering through the API.
type RegisteredUser struct {
	ID       string
	Email    string
	Password string
	Token    string
	Refresh  string
}

type loginEnvelope struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	IsArtist   bool `json:"is_artist"`
	IsAdmin    bool `json:"is_admin"`
	IsCustomer bool `json:"is_customer"`
}

// RegisterArtist registers an artist through the public endpoint and
// returns the logged-in identity.
func RegisterArtist(t *testing.T, ts *TestServer, stageName string) *RegisteredUser {
	email := fmt.Sprintf("artist_%d@test.local", time.Now().UnixNano())
	body := map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"role":       "artist",
		"stage_name": stageName,
		"genres":     []string{"afrobeat"},
		"city":       "Lagos",
	}
	return register(t, ts, email, body)
}

// RegisterCustomer registers a customer through the public endpoint.
func RegisterCustomer(t *testing.T, ts *TestServer, fullName string) *RegisteredUser {
	email := fmt.Sprintf("customer_%d@test.local", time.Now().UnixNano())
	body := map[string]interface{}{
		"email":     email,
		"password":  "password123",
		"role":      "customer",
		"full_name": fullName,
		"city":      "Lagos",
	}
	return register(t, ts, email, body)
}

func register(t *testing.T, ts *TestServer, email string, body map[string]interface{}) *RegisteredUser {
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed: "+resBody)

	var envelope loginEnvelope
	require.NoError(t, json.Unmarshal([]byte(resBody), &envelope))
	require.NotEmpty(t, envelope.AccessToken)

	return &RegisteredUser{
		ID:       envelope.User.ID,
		Email:    email,
		Password: "password123",
		Token:    envelope.AccessToken,
		Refresh:  envelope.RefreshToken,
	}
}

// SeedAdmin inserts an admin user directly and logs in through the API.
func SeedAdmin(t *testing.T, ts *TestServer) *RegisteredUser {
	email := fmt.Sprintf("admin_%d@test.local", time.Now().UnixNano())
	password := "adminpass123"

	hash := mustHash(t, password)
	admin := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	require.NoError(t, ts.DB.Create(admin).Error)
	require.NoError(t, ts.DB.Create(&models.AdminProfile{
		UserID:   admin.ID,
		FullName: "Test Admin",
	}).Error)

	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "admin login should succeed: "+resBody)

	var envelope loginEnvelope
	require.NoError(t, json.Unmarshal([]byte(resBody), &envelope))

	return &RegisteredUser{
		ID:       admin.ID,
		Email:    email,
		Password: password,
		Token:    envelope.AccessToken,
		Refresh:  envelope.RefreshToken,
	}
}

func mustHash(t *testing.T, password string) string {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

// ArtistProfileID looks up the profile ID belonging to an artist user.
func ArtistProfileID(t *testing.T, ts *TestServer, userID string) string {
	var profile models.ArtistProfile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", userID).Error)
	return profile.ID
}

package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"encore_backend/internal/models"
	"encore_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminInvitationFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	admin := helpers.SeedAdmin(t, ts)
	inviteeEmail := fmt.Sprintf("invitee_%d@test.local", time.Now().UnixNano())

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/invitations", admin.Token, map[string]interface{}{
		"email": inviteeEmail,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// the token goes out by email, read it from the database
	var inv models.AdminInvitation
	require.NoError(t, ts.DB.First(&inv, "email = ?", inviteeEmail).Error)
	require.NotEmpty(t, inv.Token)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/invitations/accept", "", map[string]interface{}{
		"token":     inv.Token,
		"password":  "newadminpass1",
		"full_name": "Second Admin",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		IsAdmin bool `json:"is_admin"`
		User    struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, resp.IsAdmin)
	assert.Equal(t, "admin", resp.User.Role)

	// token is single-use
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/invitations/accept", "", map[string]interface{}{
		"token":     inv.Token,
		"password":  "anotherpass1",
		"full_name": "Third Admin",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestInvitationRequiresAdmin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customer := helpers.RegisterCustomer(t, ts, "Wannabe Admin")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/invitations", customer.Token, map[string]interface{}{
		"email": "target@test.local",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestExpiredInvitationRejected(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	admin := helpers.SeedAdmin(t, ts)
	inv := &models.AdminInvitation{
		Email:     "late@test.local",
		Token:     fmt.Sprintf("expired-token-%d", time.Now().UnixNano()),
		InvitedBy: admin.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, ts.DB.Create(inv).Error)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/invitations/accept", "", map[string]interface{}{
		"token":     inv.Token,
		"password":  "latecomerpass",
		"full_name": "Late Admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestInvitationList(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	admin := helpers.SeedAdmin(t, ts)
	for i := 0; i < 2; i++ {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/invitations", admin.Token, map[string]interface{}{
			"email": fmt.Sprintf("listed_%d_%d@test.local", i, time.Now().UnixNano()),
		})
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/invitations", admin.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list struct {
		Invitations []struct {
			Email    string `json:"email"`
			Accepted bool   `json:"accepted"`
		} `json:"invitations"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Equal(t, int64(2), list.Total)
}

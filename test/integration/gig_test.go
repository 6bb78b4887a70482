package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"encore_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookGig(t *testing.T, ts *helpers.TestServer, customerToken, artistProfileID string) string {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/gigs", customerToken, map[string]interface{}{
		"artist_id":   artistProfileID,
		"description": "Wedding reception set",
		"date":        time.Now().Add(14 * 24 * time.Hour).Format(time.RFC3339),
		"price":       500.0,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Equal(t, "pending", resp.Status)
	return resp.ID
}

func TestCustomerBooksArtist(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Booked Artist")
	customer := helpers.RegisterCustomer(t, ts, "Booking Customer")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)

	gigID := bookGig(t, ts, customer.Token, profileID)
	assert.NotEmpty(t, gigID)
}

func TestArtistCannotBook(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Self Booker")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/gigs", artist.Token, map[string]interface{}{
		"artist_id":   profileID,
		"description": "own booking",
		"date":        time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"price":       100.0,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestGigLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Lifecycle Artist")
	customer := helpers.RegisterCustomer(t, ts, "Lifecycle Customer")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)
	gigID := bookGig(t, ts, customer.Token, profileID)

	// customer cannot confirm
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/gigs/"+gigID+"/status", customer.Token, map[string]interface{}{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	// artist confirms
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/gigs/"+gigID+"/status", artist.Token, map[string]interface{}{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// artist completes
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/gigs/"+gigID+"/status", artist.Token, map[string]interface{}{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// nothing leaves a terminal state
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/gigs/"+gigID+"/status", customer.Token, map[string]interface{}{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestCustomerCancelsPendingGig(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Cancelled Artist")
	customer := helpers.RegisterCustomer(t, ts, "Cancelling Customer")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)
	gigID := bookGig(t, ts, customer.Token, profileID)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/gigs/"+gigID+"/status", customer.Token, map[string]interface{}{
		"status": "cancelled",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestGigVisibilityRestrictedToParticipants(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Private Artist")
	customer := helpers.RegisterCustomer(t, ts, "Private Customer")
	outsider := helpers.RegisterCustomer(t, ts, "Outsider")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)
	gigID := bookGig(t, ts, customer.Token, profileID)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/gigs/"+gigID, outsider.Token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/gigs/"+gigID, artist.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/gigs/"+gigID, customer.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestGigListPerRole(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Listing Artist")
	customer := helpers.RegisterCustomer(t, ts, "Listing Customer")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)
	bookGig(t, ts, customer.Token, profileID)
	bookGig(t, ts, customer.Token, profileID)

	for _, token := range []string{artist.Token, customer.Token} {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/gigs", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var list struct {
			Total int64 `json:"total"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &list))
		assert.Equal(t, int64(2), list.Total)
	}
}

package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"encore_backend/internal/models"
	"encore_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postReview(t *testing.T, ts *helpers.TestServer, token, artistProfileID string, rating int) {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/artists/"+artistProfileID+"/reviews", token, map[string]interface{}{
		"rating":      rating,
		"review_text": "great show",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
}

func TestRankingIsMeanOfAllReviews(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Ranked Artist")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)

	first := helpers.RegisterCustomer(t, ts, "Reviewer One")
	second := helpers.RegisterCustomer(t, ts, "Reviewer Two")

	postReview(t, ts, first.Token, profileID, 5)
	postReview(t, ts, second.Token, profileID, 3)

	var profile models.ArtistProfile
	require.NoError(t, ts.DB.First(&profile, "id = ?", profileID).Error)
	assert.InDelta(t, 4.0, profile.Ranking, 0.001)
	assert.Equal(t, int64(2), profile.RatingCount)
}

func TestRankingRecomputedNotIncremental(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Recompute Artist")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)

	ratings := []int{5, 1, 3, 4, 2}
	var sum int
	for _, rating := range ratings {
		customer := helpers.RegisterCustomer(t, ts, "Serial Reviewer")
		postReview(t, ts, customer.Token, profileID, rating)
		sum += rating
	}

	var profile models.ArtistProfile
	require.NoError(t, ts.DB.First(&profile, "id = ?", profileID).Error)
	assert.InDelta(t, float64(sum)/float64(len(ratings)), profile.Ranking, 0.001)
	assert.Equal(t, int64(len(ratings)), profile.RatingCount)
}

func TestReviewRatingBounds(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Bounds Artist")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)
	customer := helpers.RegisterCustomer(t, ts, "Bounds Reviewer")

	for _, rating := range []int{0, 6} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/artists/"+profileID+"/reviews", customer.Token, map[string]interface{}{
			"rating": rating,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	}
}

func TestOnlyCustomersReview(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Target Artist")
	other := helpers.RegisterArtist(t, ts, "Rival Artist")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/artists/"+profileID+"/reviews", other.Token, map[string]interface{}{
		"rating": 1,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestReviewListIsPublic(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Public Artist")
	profileID := helpers.ArtistProfileID(t, ts, artist.ID)
	customer := helpers.RegisterCustomer(t, ts, "Public Reviewer")
	postReview(t, ts, customer.Token, profileID, 4)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/artists/"+profileID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list struct {
		Reviews []struct {
			Rating int `json:"rating"`
		} `json:"reviews"`
		Ranking float64 `json:"ranking"`
		Total   int64   `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, 4, list.Reviews[0].Rating)
	assert.InDelta(t, 4.0, list.Ranking, 0.001)
}

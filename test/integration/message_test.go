package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"encore_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendMessage(t *testing.T, ts *helpers.TestServer, token, receiverID, content string) string {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/messages", token, map[string]interface{}{
		"receiver_id": receiverID,
		"content":     content,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp.ID
}

func TestSendAndReceiveMessage(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Msg Artist")
	customer := helpers.RegisterCustomer(t, ts, "Msg Customer")

	sendMessage(t, ts, customer.Token, artist.ID, "Are you free on Saturday?")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/messages/inbox", artist.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var inbox struct {
		Messages []struct {
			Content string `json:"content"`
			IsRead  bool   `json:"is_read"`
		} `json:"messages"`
		Total  int64 `json:"total"`
		Unread int64 `json:"unread"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &inbox))
	assert.Equal(t, int64(1), inbox.Total)
	assert.Equal(t, int64(1), inbox.Unread)
	assert.Equal(t, "Are you free on Saturday?", inbox.Messages[0].Content)
	assert.False(t, inbox.Messages[0].IsRead)
}

func TestSelfMessageRejected(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customer := helpers.RegisterCustomer(t, ts, "Lonely Customer")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/messages", customer.Token, map[string]interface{}{
		"receiver_id": customer.ID,
		"content":     "hello me",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestMarkReadReceiverOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Read Artist")
	customer := helpers.RegisterCustomer(t, ts, "Read Customer")

	messageID := sendMessage(t, ts, customer.Token, artist.ID, "ping")

	// sender cannot mark their own message read
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/messages/"+messageID+"/read", customer.Token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/messages/"+messageID+"/read", artist.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/messages/inbox", artist.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var inbox struct {
		Unread int64 `json:"unread"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &inbox))
	assert.Equal(t, int64(0), inbox.Unread)
}

func TestConversationContainsBothDirections(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Conv Artist")
	customer := helpers.RegisterCustomer(t, ts, "Conv Customer")
	bystander := helpers.RegisterCustomer(t, ts, "Conv Bystander")

	sendMessage(t, ts, customer.Token, artist.ID, "first")
	sendMessage(t, ts, artist.Token, customer.ID, "second")
	sendMessage(t, ts, bystander.Token, artist.ID, "unrelated")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/messages/conversation/"+artist.ID, customer.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var conv struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &conv))
	assert.Equal(t, int64(2), conv.Total)
}

func TestMessageToUnknownUser(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customer := helpers.RegisterCustomer(t, ts, "Ghost Writer")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/messages", customer.Token, map[string]interface{}{
		"receiver_id": "11111111-1111-4111-8111-111111111111",
		"content":     "anyone there?",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

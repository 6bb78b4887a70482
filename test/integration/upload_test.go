package integration_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"encore_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadArtistDocument(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Document Artist")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/users/me/artist-profile/document", artist.Token,
		nil, "document", "license.pdf", "application/pdf", []byte("%PDF-1.4 test document"))
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var profile struct {
		DocumentPath string `json:"document_path"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Contains(t, profile.DocumentPath, "artists/documents/")
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Binary Artist")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/users/me/artist-profile/document", artist.Token,
		nil, "document", "tool.exe", "application/x-msdownload", []byte("MZ"))
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode, body)
	assert.Contains(t, body, "UNSUPPORTED_FILE_TYPE")
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customer := helpers.RegisterCustomer(t, ts, "Oversize Customer")

	// one byte over the 10MB default limit
	oversized := bytes.Repeat([]byte("a"), 10*1024*1024+1)
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/users/me/customer-profile/photo", customer.Token,
		nil, "photo", "huge.png", "image/png", oversized)
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode, body)
	assert.Contains(t, body, "FILE_TOO_LARGE")
}

func TestSubmitApplicationRejectsBadSampleType(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	fields := map[string]string{
		"name":      "Sampled Applicant",
		"email":     "sampled@test.local",
		"genre":     "highlife",
		"biography": "Band leader for a decade.",
	}
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/applications", "",
		fields, "sample_song", "song.bin", "application/octet-stream", []byte{0x00, 0x01})
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode, body)
}

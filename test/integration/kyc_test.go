package integration_test

import (
	"encoding/base64"
	"net/http"
	"os"
	"testing"

	"encore_backend/internal/crypto"
	"encore_backend/internal/models"
	"encore_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKYCStoresCiphertextOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "KYC Artist")

	const bvn = "12345678901"
	const nin = "98765432109"

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users/"+artist.ID+"/kyc", artist.Token, map[string]interface{}{
		"bvn":           bvn,
		"nin":           nin,
		"full_name":     "Ada Obi",
		"date_of_birth": "1990-04-12T00:00:00Z",
		"address":       "12 Marina Road",
		"phone":         "+2348012345678",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var record models.VerificationRequest
	require.NoError(t, ts.DB.First(&record, "user_id = ?", artist.ID).Error)

	// stored values are ciphertext
	assert.NotEqual(t, bvn, record.BVN)
	assert.NotEqual(t, nin, record.NIN)
	assert.Equal(t, "Ada Obi", record.FullName)

	// ciphertext is base64 and decrypts back with the configured key
	_, err := base64.StdEncoding.DecodeString(record.BVN)
	assert.NoError(t, err)

	encryptor, err := crypto.NewFieldEncryptor(os.Getenv("ENCRYPTION_KEY"))
	require.NoError(t, err)

	plainBVN, err := encryptor.Decrypt(record.BVN)
	require.NoError(t, err)
	assert.Equal(t, bvn, plainBVN)

	plainNIN, err := encryptor.Decrypt(record.NIN)
	require.NoError(t, err)
	assert.Equal(t, nin, plainNIN)
}

func TestKYCValidatesIdentifiers(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Invalid KYC Artist")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users/"+artist.ID+"/kyc", artist.Token, map[string]interface{}{
		"bvn":           "123",
		"nin":           "not-digits!!",
		"full_name":     "Bad Data",
		"date_of_birth": "1990-04-12T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestKYCOwnAccountOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	artist := helpers.RegisterArtist(t, ts, "Owner Artist")
	other := helpers.RegisterCustomer(t, ts, "Other User")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users/"+artist.ID+"/kyc", other.Token, map[string]interface{}{
		"bvn":           "12345678901",
		"nin":           "98765432109",
		"full_name":     "Impostor",
		"date_of_birth": "1990-04-12T00:00:00Z",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

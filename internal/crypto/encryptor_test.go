package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) string {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(key)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := NewFieldEncryptor(testKey(t))
	require.NoError(t, err)

	for _, plaintext := range []string{"12345678901", "", "short", "a longer value with spaces"} {
		ciphertext, err := enc.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)

		decrypted, err := enc.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	enc, err := NewFieldEncryptor(testKey(t))
	require.NoError(t, err)

	first, err := enc.Encrypt("12345678901")
	require.NoError(t, err)
	second, err := enc.Encrypt("12345678901")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	enc1, err := NewFieldEncryptor(testKey(t))
	require.NoError(t, err)
	enc2, err := NewFieldEncryptor(testKey(t))
	require.NoError(t, err)

	ciphertext, err := enc1.Encrypt("secret")
	require.NoError(t, err)

	_, err = enc2.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestNewFieldEncryptorRejectsBadKeys(t *testing.T) {
	cases := []string{
		"",
		"not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("too short")),
		base64.StdEncoding.EncodeToString(make([]byte, 16)),
	}
	for _, key := range cases {
		_, err := NewFieldEncryptor(key)
		assert.ErrorIs(t, err, ErrInvalidKey)
	}
}

func TestDecryptRejectsGarbage(t *testing.T) {
	enc, err := NewFieldEncryptor(testKey(t))
	require.NoError(t, err)

	_, err = enc.Decrypt("not base64 at all !!!")
	assert.Error(t, err)

	_, err = enc.Decrypt(base64.StdEncoding.EncodeToString([]byte("xx")))
	assert.Error(t, err)
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kycFixture struct {
	BVN string `json:"bvn" validate:"required,bvn"`
	NIN string `json:"nin" validate:"required,nin"`
}

func TestIdentityNumberRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&kycFixture{BVN: "12345678901", NIN: "98765432109"}))

	cases := []kycFixture{
		{BVN: "123", NIN: "98765432109"},          // too short
		{BVN: "123456789012", NIN: "98765432109"}, // too long
		{BVN: "1234567890a", NIN: "98765432109"},  // non-digit
		{BVN: "12345678901", NIN: ""},             // missing
	}
	for _, c := range cases {
		assert.Error(t, v.Validate(&c))
	}
}

func TestValidationErrorUsesJSONNames(t *testing.T) {
	v := New()

	type payload struct {
		EmailAddress string `json:"email" validate:"required,email"`
	}

	err := v.Validate(&payload{EmailAddress: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "EmailAddress")
}

func TestRequiredIfRoleFields(t *testing.T) {
	v := New()

	type registration struct {
		Role      string `json:"role" validate:"required,oneof=artist customer"`
		StageName string `json:"stage_name" validate:"required_if=Role artist"`
		FullName  string `json:"full_name" validate:"required_if=Role customer"`
	}

	assert.NoError(t, v.Validate(&registration{Role: "artist", StageName: "DJ Test"}))
	assert.NoError(t, v.Validate(&registration{Role: "customer", FullName: "Jane Doe"}))
	assert.Error(t, v.Validate(&registration{Role: "artist"}))
	assert.Error(t, v.Validate(&registration{Role: "customer"}))
	assert.Error(t, v.Validate(&registration{Role: "admin"}))
}

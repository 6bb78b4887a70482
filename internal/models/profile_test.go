package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFlagsFromEnum(t *testing.T) {
	artist := &User{Role: UserRoleArtist}
	assert.True(t, artist.IsArtist())
	assert.False(t, artist.IsCustomer())
	assert.False(t, artist.IsAdmin())

	customer := &User{Role: UserRoleCustomer}
	assert.True(t, customer.IsCustomer())
	assert.False(t, customer.IsArtist())

	admin := &User{Role: UserRoleAdmin}
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsCustomer())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(UserRoleArtist))
	assert.True(t, ValidRole(UserRoleCustomer))
	assert.True(t, ValidRole(UserRoleAdmin))
	assert.False(t, ValidRole(UserRole("moderator")))
	assert.False(t, ValidRole(UserRole("")))
}

func TestGenresRoundTrip(t *testing.T) {
	profile := &ArtistProfile{}
	profile.SetGenres([]string{"afrobeat", "jazz"})

	assert.Equal(t, []string{"afrobeat", "jazz"}, profile.GetGenres())
}

func TestGenresEmpty(t *testing.T) {
	profile := &ArtistProfile{}
	assert.Empty(t, profile.GetGenres())

	profile.SetGenres(nil)
	assert.Empty(t, profile.GetGenres())
}

package dto

// Partial updates use pointer fields; nil means "leave unchanged".

type UpdateArtistProfileRequest struct {
	StageName   *string  `json:"stage_name,omitempty" validate:"omitempty,min=1,max=100"`
	Genres      []string `json:"genres,omitempty" validate:"omitempty,max=10,dive,max=50"`
	Biography   *string  `json:"biography,omitempty" validate:"omitempty,max=5000"`
	City        *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Phone       *string  `json:"phone,omitempty" validate:"omitempty,max=20"`
	HourlyRate  *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

type UpdateCustomerProfileRequest struct {
	FullName        *string  `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone           *string  `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address         *string  `json:"address,omitempty" validate:"omitempty,max=255"`
	City            *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	PreferredGenres []string `json:"preferred_genres,omitempty" validate:"omitempty,max=10,dive,max=50"`
}

type UpdateAdminProfileRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	Title    *string `json:"title,omitempty" validate:"omitempty,max=100"`
}

// UserDetailResponse is the account view: the user plus its resolved
// role profile.
type UserDetailResponse struct {
	User    *UserResponse `json:"user"`
	Profile interface{}   `json:"profile"`
}

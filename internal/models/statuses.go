package models

type UserRole string
type UserStatus string
type ApplicationStatus string
type GigStatus string

const (
	// Exactly one role per user; the role fixes which profile record
	// exists for the account.
	UserRoleArtist   UserRole = "artist"
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"

	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	GigStatusPending   GigStatus = "pending"
	GigStatusConfirmed GigStatus = "confirmed"
	GigStatusCompleted GigStatus = "completed"
	GigStatusCancelled GigStatus = "cancelled"
)

// ValidRole reports whether a role value is one of the closed set.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleArtist, UserRoleCustomer, UserRoleAdmin:
		return true
	}
	return false
}

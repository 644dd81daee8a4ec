package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the stored representation of a registered account.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role,omitempty"`
	Company       string    `json:"company"`
	TaxID         string    `json:"taxId"`
	CreatedAt     time.Time `json:"createdAt"`
	EmailVerified bool      `json:"emailVerified"`
}

// EffectiveRole returns the user's role, treating an absent role as RoleUser.
func (u User) EffectiveRole() string {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}

// IsKnownRole reports whether role belongs to the closed set of role tags.
func IsKnownRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

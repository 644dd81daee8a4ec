package domain

// Credential is the caller identity resolved from a request by an identity
// provider. It is read-only for this service.
type Credential struct {
	Subject string `json:"sub"`
	Role    string `json:"role,omitempty"`
}

// IsAdmin reports whether the credential carries exactly the admin role.
func (c *Credential) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

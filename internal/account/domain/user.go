// Package domain defines account value types, registration validation, and
// the credential verification capability.
package domain

import "time"

// Role values assigned to accounts. Every self-registered account is a
// customer; there is no role management surface.
const (
	RoleCustomer = "customer"
)

// User is a registered account. The JSON field names match the persisted
// users blob, so records written by earlier builds keep loading.
//
// Password holds whatever representation the active CredentialVerifier
// produced, plaintext by default.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Session identifies the currently authenticated user. It is derived from a
// User at login time and stored in exactly one scope, durable or ephemeral.
type Session struct {
	UserID   string    `json:"userId"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	Role     string    `json:"role"`
	LoginAt  time.Time `json:"loginAt"`
}

// SessionFor builds a session record for the given user at the given time.
func SessionFor(user User, loginAt time.Time) Session {
	role := user.Role
	if role == "" {
		role = RoleCustomer
	}
	return Session{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     role,
		LoginAt:  loginAt,
	}
}

// ProfileUpdate carries the fields a user may change on their own account.
// Empty fields are left untouched by the merge.
type ProfileUpdate struct {
	FullName string
	Phone    string
}

// Apply merges the update into the user, stamping UpdatedAt.
func (p ProfileUpdate) Apply(user User, now time.Time) User {
	if p.FullName != "" {
		user.FullName = p.FullName
	}
	if p.Phone != "" {
		user.Phone = p.Phone
	}
	user.UpdatedAt = now
	return user
}

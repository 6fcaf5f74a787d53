package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database and never changes.
	UserID int64 `json:"id"`

	// Username is the unique user login identifier.
	// It cannot be changed after signup.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// The plaintext password is never persisted and this value is never
	// serialized.
	PasswordHash string `json:"-"`

	// Email is the contact address of the user.
	Email string `json:"email,omitempty"`

	// PhoneNumber is stored verbatim as provided at signup.
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the profile view of a user returned to its owner.
// The password hash is deliberately absent.
type PublicUser struct {
	UserID      int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Public strips credential data from u.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:      u.UserID,
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

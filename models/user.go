package models

import "time"

// User represents an account entity used for authentication and ownership
// of albums and photos. Credential fields must never leave trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized and is used only for credential verification.
	PasswordHash string `json:"-"`

	// FirstName and LastName are optional display attributes.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Bio is a free-form profile text, limited to 500 characters.
	Bio string `json:"bio"`

	// ProfileImage is the media-relative path of the user's profile image.
	// Empty when no image has been uploaded.
	ProfileImage string `json:"profile_image,omitempty"`

	// DateJoined is the timestamp when the account was created.
	DateJoined time.Time `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

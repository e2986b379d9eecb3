package models

import "time"

// Album groups photos under a single owner. Albums are strictly
// owner-scoped: every read and mutation is filtered by OwnerID.
type Album struct {
	// AlbumID is the internal unique identifier of the album.
	AlbumID int64 `json:"id"`

	// Title is a short display name, limited to 200 characters.
	Title string `json:"title"`

	// Description is optional free-form text.
	Description string `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// OwnerID references the user that created the album.
	OwnerID int64 `json:"-"`

	// Owner is the owning user's public profile, populated on reads.
	Owner *User `json:"owner,omitempty"`

	// Photos holds the album's photos, populated on reads.
	// Serialized as an empty list rather than null when no photos exist.
	Photos []Photo `json:"photos"`
}

// TableName returns the name of the database table
// associated with the Album model.
func (a Album) TableName() string {
	return "albums"
}

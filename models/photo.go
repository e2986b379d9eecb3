package models

import "time"

// Photo is an uploaded image together with its descriptive metadata.
// The image bytes themselves live in the media file store; the database
// row holds only the media-relative path.
type Photo struct {
	// PhotoID is the internal unique identifier of the photo.
	PhotoID int64 `json:"id"`

	// Title is a short display name, limited to 200 characters.
	Title string `json:"title"`

	// Description is optional free-form text.
	Description string `json:"description"`

	// ImagePath is the media-relative path of the stored image file.
	ImagePath string `json:"image"`

	UploadedAt time.Time `json:"uploaded_at"`

	// AlbumID references the album the photo belongs to.
	AlbumID int64 `json:"album"`

	// OwnerID references the user that uploaded the photo.
	OwnerID int64 `json:"-"`

	// Owner is the owning user's public profile, populated on reads.
	Owner *User `json:"owner,omitempty"`

	// Tags holds the photo's tags, populated on reads.
	// Serialized as an empty list rather than null when no tags are set.
	Tags []Tag `json:"tags"`
}

// TableName returns the name of the database table
// associated with the Photo model.
func (p Photo) TableName() string {
	return "photos"
}

package models

// RegisterRequest carries the credentials and profile attributes of a new
// account. Validation tags are enforced at the service layer.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Bio       string `json:"bio" validate:"max=500"`
}

// LoginRequest carries the credentials for the token obtain-pair endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token to be exchanged for a new access
// token.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// UpdateProfileRequest is a partial update of the caller's profile.
// Nil fields are left untouched.
type UpdateProfileRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// AlbumRequest carries the mutable attributes of an album for create and
// update operations. The owner is always taken from the authenticated caller.
type AlbumRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

// PhotoUpload carries the metadata fields of a multipart photo upload.
// The image bytes travel separately as the "image" file part.
type PhotoUpload struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	AlbumID     int64   `json:"album_id" validate:"required,gt=0"`
	TagIDs      []int64 `json:"tag_ids" validate:"dive,gt=0"`
}

// PhotoUpdate is a partial update of a photo's metadata. Nil fields are left
// untouched; a non-nil TagIDs replaces the photo's tag set wholesale.
type PhotoUpdate struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string  `json:"description,omitempty"`
	AlbumID     *int64   `json:"album_id,omitempty" validate:"omitempty,gt=0"`
	TagIDs      *[]int64 `json:"tag_ids,omitempty" validate:"omitempty,dive,gt=0"`
}

// TagRequest carries the single mutable attribute of a tag.
type TagRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

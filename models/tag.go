package models

// Tag is a globally unique label that can be attached to any number of
// photos. Tag names are unique case-sensitively at the database level.
type Tag struct {
	// TagID is the internal unique identifier of the tag.
	TagID int64 `json:"id"`

	// Name is the unique tag label, limited to 50 characters.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}

package models

// PhotoFilter represents search criteria for querying photos. Zero-valued
// fields are ignored; non-zero fields are combined with AND.
type PhotoFilter struct {
	// OwnerID filters photos by owner. Required for all owner-scoped reads;
	// left zero only by the cross-user tag search.
	OwnerID int64

	// PhotoIDs filters by specific photo identifiers.
	PhotoIDs []int64

	// AlbumIDs filters by the albums the photos belong to. Used to nest
	// photos under album listings.
	AlbumIDs []int64

	// TagNames filters photos carrying at least one of the named tags.
	TagNames []string
}

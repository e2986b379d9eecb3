package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/avolkhin/phototeka/models"
)

// Column sets shared between the query builders and the row scanners. Order
// matters: every scanner reads columns in exactly this order.
var (
	userColumns = []string{
		"user_id", "username", "email", "password_hash",
		"first_name", "last_name", "bio", "profile_image", "date_joined",
	}

	albumColumns = []string{
		"album_id", "title", "description", "created_at", "updated_at", "owner_id",
	}

	photoColumns = []string{
		"photos.photo_id", "photos.title", "photos.description",
		"photos.image_path", "photos.uploaded_at", "photos.album_id", "photos.owner_id",
	}
)

func returning(columns ...string) string {
	suffix := "RETURNING " + columns[0]
	for _, c := range columns[1:] {
		suffix += ", " + c
	}
	return suffix
}

// ───────────────────────── users ─────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "email", "password_hash", "first_name", "last_name", "bio", "profile_image").
		Values(user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Bio, user.ProfileImage).
		Suffix(returning("user_id", "date_joined")).
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).From("users").OrderBy("user_id")
}

func buildUpdateUserProfileQuery(b sq.StatementBuilderType, userID int64, upd models.UpdateProfileRequest) (string, []any, error) {
	q := b.Update("users")

	if upd.Email != nil {
		q = q.Set("email", *upd.Email)
	}
	if upd.FirstName != nil {
		q = q.Set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		q = q.Set("last_name", *upd.LastName)
	}
	if upd.Bio != nil {
		q = q.Set("bio", *upd.Bio)
	}

	return q.Where(sq.Eq{"user_id": userID}).
		Suffix(returning(userColumns...)).
		ToSql()
}

func buildSetProfileImageQuery(b sq.StatementBuilderType, userID int64, imagePath string) (string, []any, error) {
	return b.Update("users").
		Set("profile_image", imagePath).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// ───────────────────────── albums ─────────────────────────

func buildInsertAlbumQuery(b sq.StatementBuilderType, album models.Album) (string, []any, error) {
	return b.Insert(album.TableName()).
		Columns("title", "description", "owner_id").
		Values(album.Title, album.Description, album.OwnerID).
		Suffix(returning("album_id", "created_at", "updated_at")).
		ToSql()
}

func buildSelectAlbumsQuery(b sq.StatementBuilderType, ownerID int64) sq.SelectBuilder {
	return b.Select(albumColumns...).
		From("albums").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("album_id")
}

func buildUpdateAlbumQuery(b sq.StatementBuilderType, albumID, ownerID int64, req models.AlbumRequest) (string, []any, error) {
	return b.Update("albums").
		Set("title", req.Title).
		Set("description", req.Description).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"album_id": albumID, "owner_id": ownerID}).
		Suffix(returning(albumColumns...)).
		ToSql()
}

func buildDeleteAlbumQuery(b sq.StatementBuilderType, albumID, ownerID int64) (string, []any, error) {
	return b.Delete("albums").
		Where(sq.Eq{"album_id": albumID, "owner_id": ownerID}).
		ToSql()
}

// ───────────────────────── tags ─────────────────────────

func buildInsertTagQuery(b sq.StatementBuilderType, tag models.Tag) (string, []any, error) {
	return b.Insert(tag.TableName()).
		Columns("name").
		Values(tag.Name).
		Suffix(returning("tag_id")).
		ToSql()
}

func buildSelectTagsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select("tag_id", "name").From("tags").OrderBy("tag_id")
}

func buildUpdateTagQuery(b sq.StatementBuilderType, tagID int64, name string) (string, []any, error) {
	return b.Update("tags").
		Set("name", name).
		Where(sq.Eq{"tag_id": tagID}).
		ToSql()
}

func buildDeleteTagQuery(b sq.StatementBuilderType, tagID int64) (string, []any, error) {
	return b.Delete("tags").
		Where(sq.Eq{"tag_id": tagID}).
		ToSql()
}

// ───────────────────────── photos ─────────────────────────

func buildInsertPhotoQuery(b sq.StatementBuilderType, photo models.Photo) (string, []any, error) {
	return b.Insert(photo.TableName()).
		Columns("title", "description", "image_path", "album_id", "owner_id").
		Values(photo.Title, photo.Description, photo.ImagePath, photo.AlbumID, photo.OwnerID).
		Suffix(returning("photo_id", "uploaded_at")).
		ToSql()
}

// buildSelectPhotosQuery assembles the photo SELECT for the given filter.
// Tag-name filtering joins through photo_tags and deduplicates with DISTINCT
// because a photo may carry several of the requested tags.
func buildSelectPhotosQuery(b sq.StatementBuilderType, filter models.PhotoFilter) (string, []any, error) {
	q := b.Select(photoColumns...).From("photos").OrderBy("photos.photo_id")

	if filter.OwnerID != 0 {
		q = q.Where(sq.Eq{"photos.owner_id": filter.OwnerID})
	}
	if len(filter.PhotoIDs) > 0 {
		q = q.Where(sq.Eq{"photos.photo_id": filter.PhotoIDs})
	}
	if len(filter.AlbumIDs) > 0 {
		q = q.Where(sq.Eq{"photos.album_id": filter.AlbumIDs})
	}
	if len(filter.TagNames) > 0 {
		q = q.Distinct().
			Join("photo_tags ON photo_tags.photo_id = photos.photo_id").
			Join("tags ON tags.tag_id = photo_tags.tag_id").
			Where(sq.Eq{"tags.name": filter.TagNames})
	}

	return q.ToSql()
}

func buildUpdatePhotoQuery(b sq.StatementBuilderType, photoID, ownerID int64, upd models.PhotoUpdate) (string, []any, error) {
	q := b.Update("photos")

	if upd.Title != nil {
		q = q.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		q = q.Set("description", *upd.Description)
	}
	if upd.AlbumID != nil {
		q = q.Set("album_id", *upd.AlbumID)
	}

	return q.Where(sq.Eq{"photo_id": photoID, "owner_id": ownerID}).
		Suffix(returning(
			"photo_id", "title", "description", "image_path",
			"uploaded_at", "album_id", "owner_id",
		)).
		ToSql()
}

func buildDeletePhotoQuery(b sq.StatementBuilderType, photoID, ownerID int64) (string, []any, error) {
	return b.Delete("photos").
		Where(sq.Eq{"photo_id": photoID, "owner_id": ownerID}).
		ToSql()
}

// ───────────────────────── photo_tags ─────────────────────────

func buildInsertPhotoTagsQuery(b sq.StatementBuilderType, photoID int64, tagIDs []int64) (string, []any, error) {
	q := b.Insert("photo_tags").Columns("photo_id", "tag_id")
	for _, tagID := range tagIDs {
		q = q.Values(photoID, tagID)
	}
	return q.ToSql()
}

func buildDeletePhotoTagsQuery(b sq.StatementBuilderType, photoID int64) (string, []any, error) {
	return b.Delete("photo_tags").
		Where(sq.Eq{"photo_id": photoID}).
		ToSql()
}

// buildSelectPhotoTagsQuery fetches the tags of every photo in photoIDs in
// one round-trip, keyed by photo_id so callers can fan the rows back out.
func buildSelectPhotoTagsQuery(b sq.StatementBuilderType, photoIDs []int64) (string, []any, error) {
	return b.Select("photo_tags.photo_id", "tags.tag_id", "tags.name").
		From("photo_tags").
		Join("tags ON tags.tag_id = photo_tags.tag_id").
		Where(sq.Eq{"photo_tags.photo_id": photoIDs}).
		OrderBy("photo_tags.photo_id", "tags.tag_id").
		ToSql()
}

func buildSelectTagsByIDsQuery(b sq.StatementBuilderType, tagIDs []int64) (string, []any, error) {
	return b.Select("tag_id", "name").
		From("tags").
		Where(sq.Eq{"tag_id": tagIDs}).
		OrderBy("tag_id").
		ToSql()
}

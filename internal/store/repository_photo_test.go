package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avolkhin/phototeka/models"
	"github.com/jackc/pgerrcode"
)

func newTestPhotoRepo(t *testing.T) (*photoRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return &photoRepository{db: db, logger: db.logger}, mock
}

func photoRows(photos ...models.Photo) *sqlmock.Rows {
	rows := sqlmock.NewRows(
		[]string{"photo_id", "title", "description", "image_path", "uploaded_at", "album_id", "owner_id"})
	for _, p := range photos {
		rows.AddRow(p.PhotoID, p.Title, p.Description, p.ImagePath, p.UploadedAt, p.AlbumID, p.OwnerID)
	}
	return rows
}

func photoTagRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"photo_id", "tag_id", "name"})
}

func TestCreatePhoto_WithTags(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()
	photo := models.Photo{
		Title:     "Sunset",
		ImagePath: "photos/abc.jpg",
		AlbumID:   2,
		OwnerID:   7,
	}

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO photos").
		WithArgs(photo.Title, photo.Description, photo.ImagePath, photo.AlbumID, photo.OwnerID).
		WillReturnRows(sqlmock.NewRows([]string{"photo_id", "uploaded_at"}).AddRow(10, now))
	mock.ExpectExec("INSERT INTO photo_tags").
		WithArgs(int64(10), int64(1), int64(10), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT photo_tags.photo_id").
		WithArgs(int64(10)).
		WillReturnRows(photoTagRows().
			AddRow(10, 1, "nature").
			AddRow(10, 3, "travel"))

	created, err := repo.CreatePhoto(ctx, photo, []int64{1, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PhotoID != 10 {
		t.Errorf("expected PhotoID=10, got %d", created.PhotoID)
	}
	if len(created.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(created.Tags))
	}
	if created.Tags[0].Name != "nature" {
		t.Errorf("expected first tag nature, got %s", created.Tags[0].Name)
	}
}

func TestCreatePhoto_WithoutTags(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO photos").
		WillReturnRows(sqlmock.NewRows([]string{"photo_id", "uploaded_at"}).AddRow(11, now))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT photo_tags.photo_id").
		WithArgs(int64(11)).
		WillReturnRows(photoTagRows())

	created, err := repo.CreatePhoto(ctx, models.Photo{Title: "Plain", OwnerID: 7}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Tags == nil || len(created.Tags) != 0 {
		t.Fatalf("expected empty non-nil Tags, got %#v", created.Tags)
	}
}

func TestCreatePhoto_UnknownTag(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO photos").
		WillReturnRows(sqlmock.NewRows([]string{"photo_id", "uploaded_at"}).AddRow(12, now))
	mock.ExpectExec("INSERT INTO photo_tags").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.CreatePhoto(ctx, models.Photo{Title: "Sunset", OwnerID: 7}, []int64{999})
	if !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}

func TestCreatePhoto_UnknownAlbum(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO photos").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.CreatePhoto(ctx, models.Photo{Title: "Sunset", AlbumID: 999, OwnerID: 7}, nil)
	if !errors.Is(err, ErrAlbumNotFound) {
		t.Fatalf("expected ErrAlbumNotFound, got %v", err)
	}
}

func TestGetPhotos_PopulatesTags(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT photos.photo_id").
		WithArgs(int64(7)).
		WillReturnRows(photoRows(
			models.Photo{PhotoID: 1, Title: "One", UploadedAt: now, AlbumID: 2, OwnerID: 7},
			models.Photo{PhotoID: 2, Title: "Two", UploadedAt: now, AlbumID: 2, OwnerID: 7},
		))
	mock.ExpectQuery("SELECT photo_tags.photo_id").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(photoTagRows().
			AddRow(1, 5, "nature").
			AddRow(2, 5, "nature").
			AddRow(2, 6, "travel"))

	photos, err := repo.GetPhotos(ctx, models.PhotoFilter{OwnerID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(photos))
	}
	if len(photos[0].Tags) != 1 || photos[0].Tags[0].Name != "nature" {
		t.Errorf("unexpected tags on first photo: %#v", photos[0].Tags)
	}
	if len(photos[1].Tags) != 2 {
		t.Errorf("expected 2 tags on second photo, got %d", len(photos[1].Tags))
	}
}

func TestGetPhotos_Empty(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("SELECT photos.photo_id").
		WillReturnRows(photoRows())

	photos, err := repo.GetPhotos(ctx, models.PhotoFilter{OwnerID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("expected no photos, got %d", len(photos))
	}
}

func TestGetPhoto_NotFound(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("SELECT photos.photo_id").
		WillReturnRows(photoRows())

	_, err := repo.GetPhoto(ctx, 42, 7)
	if !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound, got %v", err)
	}
}

func TestUpdatePhoto_ReplacesTags(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()
	now := time.Now()
	title := "Renamed"
	tagIDs := []int64{4}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE photos").
		WillReturnRows(photoRows(
			models.Photo{PhotoID: 10, Title: title, UploadedAt: now, AlbumID: 2, OwnerID: 7},
		))
	mock.ExpectExec("DELETE FROM photo_tags").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO photo_tags").
		WithArgs(int64(10), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT photo_tags.photo_id").
		WithArgs(int64(10)).
		WillReturnRows(photoTagRows().AddRow(10, 4, "city"))

	updated, err := repo.UpdatePhoto(ctx, 10, 7, models.PhotoUpdate{Title: &title, TagIDs: &tagIDs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != title {
		t.Errorf("expected title %s, got %s", title, updated.Title)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].Name != "city" {
		t.Errorf("unexpected tags: %#v", updated.Tags)
	}
}

func TestUpdatePhoto_ClearsTags(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()
	now := time.Now()
	empty := []int64{}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE photos").
		WillReturnRows(photoRows(
			models.Photo{PhotoID: 10, Title: "Sunset", UploadedAt: now, AlbumID: 2, OwnerID: 7},
		))
	mock.ExpectExec("DELETE FROM photo_tags").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT photo_tags.photo_id").
		WithArgs(int64(10)).
		WillReturnRows(photoTagRows())

	updated, err := repo.UpdatePhoto(ctx, 10, 7, models.PhotoUpdate{TagIDs: &empty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Tags) != 0 {
		t.Errorf("expected no tags, got %#v", updated.Tags)
	}
}

func TestUpdatePhoto_NotFound(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()
	title := "Renamed"

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE photos").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.UpdatePhoto(ctx, 42, 7, models.PhotoUpdate{Title: &title})
	if !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound, got %v", err)
	}
}

func TestDeletePhoto_Success(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM photos").
		WithArgs(int64(7), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeletePhoto(ctx, 10, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeletePhoto_NotFound(t *testing.T) {
	repo, mock := newTestPhotoRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM photos").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePhoto(ctx, 42, 7)
	if !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound, got %v", err)
	}
}

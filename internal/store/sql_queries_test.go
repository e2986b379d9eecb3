// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Volkhin

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/avolkhin/phototeka/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pgBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: "hash",
		FirstName:    "John",
		LastName:     "Doe",
	}

	query, args, err := buildInsertUserQuery(pgBuilder(), user)
	require.NoError(t, err)
	require.Len(t, args, 7)

	q := strings.ToUpper(query)
	require.Contains(t, q, "INSERT INTO USERS")
	require.Contains(t, q, "RETURNING")
	require.Contains(t, query, "user_id")
	require.Contains(t, query, "date_joined")
	require.Contains(t, query, "$1")

	assert.Equal(t, "john", args[0])
	assert.Equal(t, "john@example.com", args[1])
	assert.Equal(t, "hash", args[2])
}

func Test_buildUpdateUserProfileQuery_PartialFields(t *testing.T) {
	bio := "photographer"

	query, args, err := buildUpdateUserProfileQuery(pgBuilder(), 42, models.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)

	// only the provided field plus the user_id predicate
	require.Len(t, args, 2)
	assert.Equal(t, bio, args[0])
	assert.Equal(t, int64(42), args[1])

	assert.Contains(t, query, "bio")
	assert.NotContains(t, query, "email =")
	assert.Contains(t, strings.ToUpper(query), "RETURNING")
}

func Test_buildUpdateUserProfileQuery_NoFields(t *testing.T) {
	// an update with no SET clauses cannot be built; callers reject empty
	// updates before reaching the store
	_, _, err := buildUpdateUserProfileQuery(pgBuilder(), 42, models.UpdateProfileRequest{})
	require.Error(t, err)
}

func Test_buildInsertAlbumQuery(t *testing.T) {
	album := models.Album{Title: "Vacation", Description: "Summer", OwnerID: 7}

	query, args, err := buildInsertAlbumQuery(pgBuilder(), album)
	require.NoError(t, err)
	require.Len(t, args, 3)

	q := strings.ToUpper(query)
	require.Contains(t, q, "INSERT INTO ALBUMS")
	require.Contains(t, q, "RETURNING")
	require.Contains(t, query, "album_id")
	require.Contains(t, query, "created_at")
	require.Contains(t, query, "updated_at")
}

func Test_buildSelectAlbumsQuery_OwnerScoped(t *testing.T) {
	query, args, err := buildSelectAlbumsQuery(pgBuilder(), 7).ToSql()
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, int64(7), args[0])
	assert.Contains(t, query, "owner_id")
	assert.Contains(t, strings.ToUpper(query), "ORDER BY")
}

func Test_buildSelectPhotosQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.PhotoFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "owner scope only",
			filter: models.PhotoFilter{OwnerID: 7},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 1)
				assert.Equal(t, int64(7), args[0])
				assert.Contains(t, query, "photos.owner_id")
				assert.NotContains(t, query, "JOIN")
				assert.NotContains(t, strings.ToUpper(query), "DISTINCT")
			},
		},
		{
			name:   "album filter",
			filter: models.PhotoFilter{OwnerID: 7, AlbumIDs: []int64{2}},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 2)
				assert.Contains(t, query, "photos.album_id")
			},
		},
		{
			name:   "tag search without owner scope",
			filter: models.PhotoFilter{TagNames: []string{"nature", "travel"}},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 2)
				assert.Equal(t, "nature", args[0])
				assert.Equal(t, "travel", args[1])
				assert.NotContains(t, query, "owner_id")
				assert.Contains(t, query, "JOIN photo_tags")
				assert.Contains(t, query, "JOIN tags")
				assert.Contains(t, query, "tags.name")
				assert.Contains(t, strings.ToUpper(query), "DISTINCT")
			},
		},
		{
			name:   "single photo lookup",
			filter: models.PhotoFilter{OwnerID: 7, PhotoIDs: []int64{10}},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 2)
				assert.Contains(t, query, "photos.photo_id")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectPhotosQuery(pgBuilder(), tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildUpdatePhotoQuery_PartialFields(t *testing.T) {
	title := "Renamed"
	albumID := int64(3)

	query, args, err := buildUpdatePhotoQuery(pgBuilder(), 10, 7, models.PhotoUpdate{
		Title:   &title,
		AlbumID: &albumID,
	})
	require.NoError(t, err)

	// two SET values plus the two WHERE predicates
	require.Len(t, args, 4)
	assert.Contains(t, query, "title")
	assert.Contains(t, query, "album_id")
	assert.NotContains(t, query, "description =")
	assert.Contains(t, query, "owner_id")
	assert.Contains(t, strings.ToUpper(query), "RETURNING")
}

func Test_buildInsertPhotoTagsQuery_MultipleRows(t *testing.T) {
	query, args, err := buildInsertPhotoTagsQuery(pgBuilder(), 10, []int64{1, 2, 3})
	require.NoError(t, err)

	require.Len(t, args, 6)
	assert.Contains(t, strings.ToUpper(query), "INSERT INTO PHOTO_TAGS")
	assert.Equal(t, 4, strings.Count(query, "("), "expected one value tuple per tag plus the column list")
}

func Test_buildSelectPhotoTagsQuery(t *testing.T) {
	query, args, err := buildSelectPhotoTagsQuery(pgBuilder(), []int64{1, 2})
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Contains(t, query, "photo_tags.photo_id")
	assert.Contains(t, query, "JOIN tags")
	assert.Contains(t, strings.ToUpper(query), "ORDER BY")
}

func Test_builder_PlaceholderFormatFollowsDialect(t *testing.T) {
	pg := &DB{dialect: "postgres"}
	lite := &DB{dialect: "sqlite3"}

	pgQuery, _, err := buildDeleteTagQuery(pg.builder(), 1)
	require.NoError(t, err)
	assert.Contains(t, pgQuery, "$1")

	liteQuery, _, err := buildDeleteTagQuery(lite.builder(), 1)
	require.NoError(t, err)
	assert.Contains(t, liteQuery, "?")
	assert.NotContains(t, liteQuery, "$1")
}

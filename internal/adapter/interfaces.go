// Package adapter provides transport-layer abstractions for communicating
// with the phototeka server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI client
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/avolkhin/phototeka/models"
)

// ServerAdapter defines transport-agnostic communication with the phototeka
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and stores the returned access token
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login authenticates with username and password and stores the returned
	// access token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error)

	// Refresh exchanges a refresh token for a new access token and stores it
	// via SetToken.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// ListAlbums returns the caller's albums with their photos embedded.
	ListAlbums(ctx context.Context) ([]models.Album, error)

	// CreateAlbum creates an album owned by the caller.
	CreateAlbum(ctx context.Context, req models.AlbumRequest) (models.Album, error)

	// ListTags returns the shared tag catalog.
	ListTags(ctx context.Context) ([]models.Tag, error)

	// CreateTag adds a tag to the shared catalog.
	CreateTag(ctx context.Context, req models.TagRequest) (models.Tag, error)

	// ListPhotos returns the caller's photos, optionally narrowed to the
	// given album IDs.
	ListPhotos(ctx context.Context, albumIDs []int64) ([]models.Photo, error)

	// UploadPhoto uploads image bytes together with their metadata as a
	// multipart request and returns the created photo.
	UploadPhoto(ctx context.Context, meta models.PhotoUpload, fileName string, image io.Reader) (models.Photo, error)

	// SearchPhotos finds photos across the whole catalog carrying any of the
	// given tag names.
	SearchPhotos(ctx context.Context, tagNames []string) ([]models.Photo, error)

	// ServerVersion returns the server's application version string.
	ServerVersion(ctx context.Context) (string, error)
}

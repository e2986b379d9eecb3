package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/avolkhin/phototeka/internal/config"
	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerAddress and configures the underlying client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg *config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the account details to
// POST /api/auth/register and stores the issued access token via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var created models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	h.SetToken(created.Tokens.Access)
	return created, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the issued access token via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error) {
	var pair models.TokenPair

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&pair).
		Post("/api/auth/login")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	h.SetToken(pair.Access)
	return pair, nil
}

// Refresh implements [ServerAdapter]. It POSTs the refresh token to
// POST /api/auth/refresh and stores the new access token via SetToken.
func (h *httpServerAdapter) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var ar models.AccessResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{Refresh: refreshToken}).
		SetResult(&ar).
		Post("/api/auth/refresh")
	if err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(ar.Access)
	return ar.Access, nil
}

// ListAlbums implements [ServerAdapter]. It GETs /api/albums/ and decodes the
// caller's albums. Requires a valid bearer token.
func (h *httpServerAdapter) ListAlbums(ctx context.Context) ([]models.Album, error) {
	resp, err := h.authedRequest(ctx).Get("/api/albums/")
	if err != nil {
		return nil, fmt.Errorf("list albums request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var albums []models.Album
	if err = json.Unmarshal(resp.Body(), &albums); err != nil {
		return nil, fmt.Errorf("decode albums response: %w", err)
	}

	return albums, nil
}

// CreateAlbum implements [ServerAdapter]. It POSTs the album attributes to
// POST /api/albums/. Requires a valid bearer token.
func (h *httpServerAdapter) CreateAlbum(ctx context.Context, req models.AlbumRequest) (models.Album, error) {
	var album models.Album

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&album).
		Post("/api/albums/")
	if err != nil {
		return models.Album{}, fmt.Errorf("create album request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Album{}, err
	}

	return album, nil
}

// ListTags implements [ServerAdapter]. It GETs /api/tags/ and decodes the
// shared tag catalog. Requires a valid bearer token.
func (h *httpServerAdapter) ListTags(ctx context.Context) ([]models.Tag, error) {
	resp, err := h.authedRequest(ctx).Get("/api/tags/")
	if err != nil {
		return nil, fmt.Errorf("list tags request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tags []models.Tag
	if err = json.Unmarshal(resp.Body(), &tags); err != nil {
		return nil, fmt.Errorf("decode tags response: %w", err)
	}

	return tags, nil
}

// CreateTag implements [ServerAdapter]. It POSTs the tag name to
// POST /api/tags/. Returns [ErrConflict] (wrapped) when the name is already
// taken. Requires a valid bearer token.
func (h *httpServerAdapter) CreateTag(ctx context.Context, req models.TagRequest) (models.Tag, error) {
	var tag models.Tag

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&tag).
		Post("/api/tags/")
	if err != nil {
		return models.Tag{}, fmt.Errorf("create tag request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tag{}, err
	}

	return tag, nil
}

// ListPhotos implements [ServerAdapter]. It GETs /api/photos/ with an
// optional repeated "album" query parameter. Requires a valid bearer token.
func (h *httpServerAdapter) ListPhotos(ctx context.Context, albumIDs []int64) ([]models.Photo, error) {
	params := url.Values{}
	for _, id := range albumIDs {
		params.Add("album", strconv.FormatInt(id, 10))
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(params).
		Get("/api/photos/")
	if err != nil {
		return nil, fmt.Errorf("list photos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var photos []models.Photo
	if err = json.Unmarshal(resp.Body(), &photos); err != nil {
		return nil, fmt.Errorf("decode photos response: %w", err)
	}

	return photos, nil
}

// UploadPhoto implements [ServerAdapter]. It POSTs a multipart form to
// POST /api/photos/: metadata in regular form fields and the image bytes in
// the "image" file part. Requires a valid bearer token.
func (h *httpServerAdapter) UploadPhoto(ctx context.Context, meta models.PhotoUpload, fileName string, image io.Reader) (models.Photo, error) {
	var photo models.Photo

	fields := map[string]string{
		"title":    meta.Title,
		"album_id": strconv.FormatInt(meta.AlbumID, 10),
	}
	if meta.Description != "" {
		fields["description"] = meta.Description
	}
	if len(meta.TagIDs) > 0 {
		fields["tag_ids"] = joinIDs(meta.TagIDs)
	}

	resp, err := h.authedRequest(ctx).
		SetMultipartFormData(fields).
		SetMultipartField("image", fileName, "application/octet-stream", image).
		SetResult(&photo).
		Post("/api/photos/")
	if err != nil {
		return models.Photo{}, fmt.Errorf("upload photo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Photo{}, err
	}

	return photo, nil
}

// SearchPhotos implements [ServerAdapter]. It GETs /api/photos/search with
// the tag names joined into the "tags" query parameter. The search spans the
// whole catalog, not just the caller's photos. Requires a valid bearer token.
func (h *httpServerAdapter) SearchPhotos(ctx context.Context, tagNames []string) ([]models.Photo, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("tags", strings.Join(tagNames, ",")).
		Get("/api/photos/search")
	if err != nil {
		return nil, fmt.Errorf("search photos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var photos []models.Photo
	if err = json.Unmarshal(resp.Body(), &photos); err != nil {
		return nil, fmt.Errorf("decode photos response: %w", err)
	}

	return photos, nil
}

// ServerVersion implements [ServerAdapter]. It GETs the public
// GET /api/version endpoint.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the REST API router.
//
// Every request gets a trace id, request logging, panic recovery, and gzip
// compression. Authentication splits the surface in two: the auth endpoints
// and the version endpoint are public, everything else requires a valid
// access token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Get("/me", h.getCurrentUser)
			r.Put("/me", h.updateProfile)
			r.Put("/me/image", h.uploadProfileImage)
			r.Get("/{id}", h.getUser)
		})

		r.Route("/api/albums", func(r chi.Router) {
			r.Get("/", h.listAlbums)
			r.Post("/", h.createAlbum)
			r.Get("/{id}", h.getAlbum)
			r.Put("/{id}", h.updateAlbum)
			r.Delete("/{id}", h.deleteAlbum)
		})

		r.Route("/api/photos", func(r chi.Router) {
			r.Get("/", h.listPhotos)
			r.Post("/", h.uploadPhoto)
			r.Get("/search", h.searchPhotosByTags)
			r.Get("/{id}", h.getPhoto)
			r.Get("/{id}/image", h.getPhotoImage)
			r.Put("/{id}", h.updatePhoto)
			r.Delete("/{id}", h.deletePhoto)
		})

		r.Route("/api/tags", func(r chi.Router) {
			r.Get("/", h.listTags)
			r.Post("/", h.createTag)
			r.Get("/{id}", h.getTag)
			r.Put("/{id}", h.updateTag)
			r.Delete("/{id}", h.deleteTag)
		})
	})

	return router
}

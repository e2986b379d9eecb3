package store

import (
	"context"
	"fmt"

	"github.com/avolkhin/phototeka/internal/config"
	"github.com/avolkhin/phototeka/internal/logger"
)

// Storages bundles every persistence backend the services depend on: the
// four SQL repositories sharing one database handle plus the filesystem
// media store.
type Storages struct {
	Users  UserRepository
	Albums AlbumRepository
	Tags   TagRepository
	Photos PhotoRepository
	Media  MediaStore

	db *DB
}

// NewStorages opens the database selected by the DSN (PostgreSQL when the
// DSN looks like one, SQLite otherwise), applies pending migrations, and
// wires all repositories plus the media store.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating storages")

	var (
		db  *DB
		err error
	)
	if IsPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	media, err := NewFileMediaStore(cfg.Files, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating media store: %w", err)
	}

	return &Storages{
		Users:  NewUserRepository(db, logger),
		Albums: NewAlbumRepository(db, logger),
		Tags:   NewTagRepository(db, logger),
		Photos: NewPhotoRepository(db, logger),
		Media:  media,
		db:     db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	s.db.logger.Debug().Msg("closing storages")
	return s.db.Close()
}

package migrator

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ErrMigrate возвращается, если схему не удалось привести к последней версии
var ErrMigrate = errors.New("migrator: migration failed")

type Logger interface {
	Info(format string, v ...interface{})
}

// Up применяет все миграции из files к базе db
func Up(db *sql.DB, files fs.FS, log Logger) error {
	src, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("%w: open source: %v", ErrMigrate, err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("%w: open driver: %v", ErrMigrate, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("%w: init: %v", ErrMigrate, err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Migrations: schema is up to date")
			return nil
		}
		return fmt.Errorf("%w: up: %v", ErrMigrate, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("%w: version: %v", ErrMigrate, err)
	}
	log.Info("Migrations: applied, version=%d, dirty=%t", version, dirty)
	return nil
}

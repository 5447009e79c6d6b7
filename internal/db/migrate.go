package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"mesa-campaigns/db/migrations"
)

// Migrate brings the event journal schema at addr up to
// migrations.Version and returns the version the database ends up at.
func Migrate(addr string) (uint, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, err
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		current = 0
	case err != nil:
		return 0, err
	case dirty:
		return current, errors.New("journal schema is in dirty state")
	}

	if current == migrations.Version {
		return current, nil
	}
	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return current, err
	}
	return migrations.Version, nil
}

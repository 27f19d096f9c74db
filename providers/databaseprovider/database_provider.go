package databaseprovider

import (
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type PostgresProvider struct {
	db *sqlx.DB
}

func NewDBProvider(connectionStr string) *PostgresProvider {
	db, err := sqlx.Connect("postgres", connectionStr)
	if err != nil {
		logrus.Fatalf("failed to connect to Postgres: %+v", err)
	}
	logrus.Info("Connected to PostgreSQL...")

	if err := migrateUp(db); err != nil {
		logrus.Fatalf("migration failed: %+v", err)
	}
	return &PostgresProvider{db: db}
}

func (p *PostgresProvider) DB() *sqlx.DB {
	return p.db
}

func (p *PostgresProvider) Close() error {
	return p.db.Close()
}

func migrateUp(db *sqlx.DB) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://database/migrations", "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	logrus.Info("Migration complete.")
	return nil
}

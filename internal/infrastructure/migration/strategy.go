package migration

import (
	"embed"
	"fmt"
	"path"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/synerjet/bendesk/internal/shared/logger"
)

//go:embed scripts/mysql/*.sql scripts/sqlite/*.sql
var scriptsFS embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// GooseStrategy applies the embedded versioned SQL scripts for one dialect.
type GooseStrategy struct {
	dialect goose.Dialect
	dir     string
	logger  logger.Interface
}

// NewGooseStrategy accepts the database driver name ("mysql" or "sqlite").
func NewGooseStrategy(driver string, log logger.Interface) (*GooseStrategy, error) {
	var dialect goose.Dialect
	switch driver {
	case "mysql":
		dialect = goose.DialectMySQL
	case "sqlite", "sqlite3":
		dialect = goose.DialectSQLite3
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported migration driver: %s", driver)
	}

	return &GooseStrategy{
		dialect: dialect,
		dir:     path.Join("scripts", driver),
		logger:  log.With("component", "migration.goose"),
	}, nil
}

func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(scriptsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(string(s.dialect)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting goose migration", "dir", s.dir)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, s.dir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.dir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// Status logs the applied state of every script.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	migrations, err := goose.CollectMigrations(s.dir, 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	current, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}
	for _, m := range migrations {
		s.logger.Infow("migration", "version", m.Version, "source", path.Base(m.Source), "applied", m.Version <= current)
	}
	return nil
}

// Create writes a new timestamped SQL script for this dialect under
// scriptsRoot, the on-disk copy of the embedded scripts directory.
func (s *GooseStrategy) Create(scriptsRoot, name string) error {
	goose.SetBaseFS(nil)
	defer goose.SetBaseFS(scriptsFS)

	dir := filepath.Join(scriptsRoot, filepath.Base(s.dir))
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration %s: %w", name, err)
	}
	s.logger.Infow("migration script created", "dir", dir, "name", name)
	return nil
}

package cmd

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/fir-lang/tree-sitter-fir/store"
)

// DatabaseConfig names one configured snapshot-store backend.
type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	Connection string `yaml:"connection"`
}

func (dbcfg DatabaseConfig) Open(_ context.Context, logger logrus.FieldLogger) (*sql.DB, error) {
	switch dbcfg.Driver {
	case "postgres":
		return sql.Open("pgx", dbcfg.Connection)
	case "sqlserver":
		return sql.Open("sqlserver", dbcfg.Connection)
	default:
		return nil, errors.New("config: database driver must be \"postgres\" or \"sqlserver\"")
	}
}

// Config is firscan.yaml: the set of snapshot-store backends a session can
// be pointed at.
type Config struct {
	Databases map[string]DatabaseConfig `yaml:"databases"`
	Default   string                    `yaml:"default"`
}

// LoadConfig reads firscan.yaml from the current directory. Its absence is
// not an error: callers fall back to an in-memory store.
func LoadConfig() (Config, error) {
	var result Config

	configFilename := path.Join(".", "firscan.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, nil
	}

	yamlFile, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(yamlFile, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}

// OpenStore opens the configured default database as a store.SnapshotStore,
// or an in-memory store when no configuration is present.
func OpenStore(ctx context.Context, logger logrus.FieldLogger) (store.SnapshotStore, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Default == "" {
		logger.Debug("no firscan.yaml default database; using in-memory snapshot store")
		return store.NewMemory(), nil
	}

	dbcfg, ok := cfg.Databases[cfg.Default]
	if !ok {
		return nil, errors.New("config: default database not present in firscan.yaml")
	}
	db, err := dbcfg.Open(ctx, logger)
	if err != nil {
		return nil, err
	}
	return store.NewSQL(store.Wrap(db)), nil
}

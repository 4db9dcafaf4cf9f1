// Package config loads the farmtwin runtime configuration from FARMTWIN_*
// environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"farmtwin/internal/blob"
	"farmtwin/internal/core"
	"farmtwin/pkg/domain"
)

// Metrics backends.
const (
	MetricsNone       = "none"
	MetricsExpvar     = "expvar"
	MetricsPrometheus = "prometheus"
)

// S3 holds the blob ledger's bucket settings. Credentials fall back to the
// default AWS chain when the access key is empty.
type S3 struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION" envDefault:"us-east-1"`
	Endpoint        string `env:"ENDPOINT"`
	PathStyle       bool   `env:"PATH_STYLE" envDefault:"false"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// Config is the full runtime configuration.
type Config struct {
	LedgerDriver string `env:"LEDGER_DRIVER" envDefault:"sqlite"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"farmtwin-ledger.db"`
	PostgresDSN  string `env:"POSTGRES_DSN"`

	BlobDriver string `env:"BLOB_DRIVER" envDefault:"fs"`
	BlobFSRoot string `env:"BLOB_FS_ROOT" envDefault:"./ledgerdata"`
	S3         S3     `envPrefix:"BLOB_S3_"`

	MetricsBackend string `env:"METRICS_BACKEND" envDefault:"none"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	ActiveSpecies string              `env:"ACTIVE_SPECIES" envDefault:"Poultry"`
	Sliders       domain.SliderInputs `envPrefix:"SLIDER_"`
}

// Load reads FARMTWIN_* variables and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "FARMTWIN_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and the slider ranges.
func (c Config) Validate() error {
	switch core.LedgerDriver(c.LedgerDriver) {
	case core.LedgerMemory, core.LedgerSQLite, core.LedgerPostgres, core.LedgerBlob:
	default:
		return domain.ValidationError{Field: "ledger_driver", Reason: fmt.Sprintf("unknown driver %q", c.LedgerDriver)}
	}
	switch blob.Driver(c.BlobDriver) {
	case blob.DriverFilesystem, blob.DriverMemory, blob.DriverS3:
	default:
		return domain.ValidationError{Field: "blob_driver", Reason: fmt.Sprintf("unknown driver %q", c.BlobDriver)}
	}
	if core.LedgerDriver(c.LedgerDriver) == core.LedgerBlob && blob.Driver(c.BlobDriver) == blob.DriverS3 && c.S3.Bucket == "" {
		return domain.ValidationError{Field: "blob_s3_bucket", Reason: "required for the s3 blob driver"}
	}
	switch c.MetricsBackend {
	case MetricsNone, MetricsExpvar, MetricsPrometheus:
	default:
		return domain.ValidationError{Field: "metrics_backend", Reason: fmt.Sprintf("unknown backend %q", c.MetricsBackend)}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if _, err := c.Species(); err != nil {
		return err
	}
	return c.Sliders.Validate()
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, domain.ValidationError{Field: "log_level", Reason: err.Error()}
	}
	return level, nil
}

// Species returns the configured active species.
func (c Config) Species() (domain.Species, error) {
	return domain.ParseSpecies(c.ActiveSpecies)
}

// Ledger translates the configuration into core.LedgerConfig.
func (c Config) Ledger() core.LedgerConfig {
	return core.LedgerConfig{
		Driver:      core.LedgerDriver(c.LedgerDriver),
		SQLitePath:  c.SQLitePath,
		PostgresDSN: c.PostgresDSN,
		Blob: blob.Config{
			Driver: blob.Driver(c.BlobDriver),
			FSRoot: c.BlobFSRoot,
			S3: blob.S3Config{
				Bucket:          c.S3.Bucket,
				Region:          c.S3.Region,
				Endpoint:        c.S3.Endpoint,
				PathStyle:       c.S3.PathStyle,
				AccessKeyID:     c.S3.AccessKeyID,
				SecretAccessKey: c.S3.SecretAccessKey,
			},
		},
	}
}

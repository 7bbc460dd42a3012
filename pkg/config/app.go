package config

import (
	"errors"
	"time"
)

// Config holds the recordcheck settings read from the environment.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `env:"LOG_FORMAT" validate:"omitempty,oneof=text json"`

	Input        string `env:"RECORDS_INPUT" envDefault:"data.json" validate:"required"`
	Storage      string `env:"RECORDS_STORAGE" envDefault:"local" validate:"oneof=local s3"`
	Dir          string `env:"RECORDS_DIR"`
	ReportFormat string `env:"REPORT_FORMAT" envDefault:"text" validate:"oneof=text txt json yaml yml"`

	S3Bucket         string        `env:"S3_BUCKET" validate:"required_if=Storage s3"`
	S3Region         string        `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKeyID    string        `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey      string        `env:"S3_SECRET_KEY"`
	S3Endpoint       string        `env:"S3_ENDPOINT" validate:"omitempty,url"`
	S3ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE"`
	S3ReadTimeout    time.Duration `env:"S3_READ_TIMEOUT" envDefault:"30s"`
}

// Validate checks c against its validate tags. Call it again after changing
// fields, e.g. from command-line flags.
func (c Config) Validate() error {
	return Validate(&c)
}

// Validate checks the validate tags of a struct pointer.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

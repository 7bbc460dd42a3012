package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/recordcheck/pkg/config"
	"github.com/dmitrymomot/recordcheck/pkg/logger"
	"github.com/dmitrymomot/recordcheck/pkg/record"
	"github.com/dmitrymomot/recordcheck/pkg/report"
	"github.com/dmitrymomot/recordcheck/pkg/storage"
)

type validateFlags struct {
	storage       string
	format        string
	dir           string
	failOnInvalid bool
}

func newValidateCmd(envFile *string) *cobra.Command {
	var flags validateFlags

	c := &cobra.Command{
		Use:   "validate [path]",
		Short: "Load records and report which are valid",
		Long: `Load a JSON array of user records and validate every field.

The path defaults to RECORDS_INPUT. With --storage s3 it is an object key
in S3_BUCKET. The report goes to stdout, logs go to stderr.

Exit status is 1 when the records cannot be loaded, and 2 with
--fail-on-invalid when at least one record is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			applyFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("flags: %w", err)
			}

			path := cfg.Input
			if len(args) == 1 {
				path = args[0]
			}

			log := newLogger(cfg, cmd.ErrOrStderr())
			logger.SetAsDefault(log)
			rep, err := runValidate(cmd.Context(), cfg, path, cmd.OutOrStdout(), log)
			if err != nil {
				return err
			}
			if flags.failOnInvalid && rep.Invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidRecords, rep.Invalid, rep.Total)
			}
			return nil
		},
	}

	c.Flags().StringVar(&flags.storage, "storage", "", "records storage: local or s3 (default from RECORDS_STORAGE)")
	c.Flags().StringVarP(&flags.format, "format", "f", "", "report format: text, json or yaml (default from REPORT_FORMAT)")
	c.Flags().StringVar(&flags.dir, "dir", "", "base directory for local storage (default from RECORDS_DIR)")
	c.Flags().BoolVar(&flags.failOnInvalid, "fail-on-invalid", false, "exit with status 2 if any record is invalid")
	return c
}

func applyFlags(cmd *cobra.Command, cfg *config.Config, flags validateFlags) {
	if cmd.Flags().Changed("storage") {
		cfg.Storage = flags.storage
	}
	if cmd.Flags().Changed("format") {
		cfg.ReportFormat = flags.format
	}
	if cmd.Flags().Changed("dir") {
		cfg.Dir = flags.dir
	}
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "recordcheck"),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(out),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}

func runValidate(ctx context.Context, cfg config.Config, path string, out io.Writer, log *slog.Logger) (*report.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := report.ParseFormat(cfg.ReportFormat)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	ctx = logger.WithRunID(ctx, runID.String())
	log = log.With(logger.Source(path), logger.Storage(cfg.Storage))

	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.ErrorContext(ctx, "storage unavailable", logger.Error(err))
		return nil, err
	}

	// Load below returns the classified error.
	if !store.Exists(ctx, path) {
		log.WarnContext(ctx, "source not found")
	}

	start := time.Now()
	users, err := record.Load(ctx, store, path)
	if err != nil {
		log.ErrorContext(ctx, "failed to load records", logger.Error(err))
		return nil, err
	}
	log.InfoContext(ctx, "records loaded", slog.Int("count", len(users)), logger.Duration(time.Since(start)))

	rep := report.Build(path, users, report.WithRunID(runID))
	for _, r := range rep.Failed() {
		log.DebugContext(ctx, "invalid record",
			logger.RecordIndex(r.Index),
			logger.InvalidFields(r.InvalidFields),
		)
	}

	if err := report.Write(out, rep, format); err != nil {
		log.ErrorContext(ctx, "failed to write report", logger.Error(err))
		return nil, err
	}
	log.InfoContext(ctx, "validation finished",
		slog.Int("valid", rep.Valid),
		slog.Int("invalid", rep.Invalid),
	)
	return rep, nil
}

func openStorage(ctx context.Context, cfg config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case "s3":
		s3, err := storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			ForcePathStyle: cfg.S3ForcePathStyle,
		}, storage.WithReadTimeout(cfg.S3ReadTimeout))
		if err != nil {
			return nil, err
		}
		return s3, nil
	case "local", "":
		return storage.NewLocalStorage(cfg.Dir), nil
	default:
		return nil, fmt.Errorf("%w: unknown storage %q", storage.ErrInvalidConfig, cfg.Storage)
	}
}

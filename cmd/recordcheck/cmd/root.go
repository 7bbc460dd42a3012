package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// ErrInvalidRecords is returned by validate --fail-on-invalid when at least
// one record failed validation.
var ErrInvalidRecords = errors.New("invalid records found")

// NewRootCmd builds the recordcheck command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "recordcheck",
		Short: "Validate personal records",
		Long: `recordcheck loads a JSON array of user records with their addresses,
checks every field against its rule and reports which records are valid.

Records are read from the local filesystem or from an S3 bucket.
Configuration comes from the environment (RECORDS_*, S3_*, LOG_*, APP_ENV)
and can be overridden with flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var envFile string
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "load configuration from this .env file")

	root.AddCommand(newValidateCmd(&envFile), newVersionCmd())
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

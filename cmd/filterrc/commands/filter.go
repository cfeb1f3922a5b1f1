package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/filterrc/cmd/filterrc/opts"
	"github.com/walteh/filterrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewFilterCmd creates a new filter command
func NewFilterCmd(provide opts.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Run the substitution pass over the configured resource files",
		Long: `Filter reads each configured (source, destination) pair, substitutes
${...} variable references in files matching the filtered extensions, and
writes the result to the destination. Values come from environment variables
(env. prefix), system properties (sys. prefix), and project settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "filter").Logger().WithContext(ctx)

			o, err := provide(ctx)
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}

			o.ConsoleLog.Header(fmt.Sprintf("filtering resources from %s", o.ConfigPath))

			op, err := operation.NewFilterOperation(operation.Options{
				Config:     o.Config,
				Properties: o.Properties,
				Reporter:   o.Reporter,
				DryRun:     o.DryRun,
			})
			if err != nil {
				return errors.Errorf("creating filter operation: %w", err)
			}

			logger := zerolog.Ctx(ctx)
			runner := operation.NewRunner(logger, o.Async)
			if err := runner.Run(ctx, op); err != nil {
				return errors.Errorf("filtering resource files: %w", err)
			}

			result := op.Result()
			if len(result.Filtered) == 0 {
				o.ConsoleLog.Warning("no resource files matched the configured extensions")
				return nil
			}
			o.ConsoleLog.Successf("filtered %d of %d files (%d substitutions)",
				len(result.Filtered), len(o.Config.Files), result.Substitutions)
			return nil
		},
	}

	return cmd
}

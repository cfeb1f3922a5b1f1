package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/filterrc/cmd/filterrc/commands"
	"github.com/walteh/filterrc/cmd/filterrc/opts"
	"github.com/walteh/filterrc/pkg/config"
	"github.com/walteh/filterrc/pkg/log"
	"github.com/walteh/filterrc/pkg/properties"
	"github.com/walteh/filterrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile     string
	debug          bool
	quiet          bool
	defines        []string
	propertiesFile string
	dryRun         bool
	async          bool
)

// NewRootCmd builds the filterrc command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "filterrc",
		Short:         "Substitute variables in resource files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(commands.NewFilterCmd(newRootOpts))
	cmd.AddCommand(commands.NewVersionCmd())
	return cmd
}

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// System properties: the optional properties file first, -D defines on top.
	sys := map[string]string{}
	if propertiesFile != "" {
		fileProps, err := config.LoadProperties(propertiesFile)
		if err != nil {
			return nil, errors.Errorf("loading system properties: %w", err)
		}
		sys = fileProps
	}
	defined, err := config.ParseDefines(defines)
	if err != nil {
		return nil, errors.Errorf("parsing defines: %w", err)
	}
	for k, v := range defined {
		sys[k] = v
	}

	env := properties.SplitEnviron(os.Environ())
	table := properties.Resolve(ctx, env, sys, cfg.Settings)

	reporter := status.NewUserLogger(ctx)
	if quiet {
		reporter = status.NewQuietLogger(ctx)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &opts.RootOpts{
		Config:     cfg,
		ConfigPath: configFile,
		Properties: table,
		Reporter:   reporter,
		ConsoleLog: log.New(os.Stdout, level),
		DryRun:     dryRun,
		Async:      async,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".filterrc.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-file console output")
	cmd.PersistentFlags().StringArrayVarP(&defines, "define", "D", nil, "system property as key=value (repeatable)")
	cmd.PersistentFlags().StringVar(&propertiesFile, "properties", "", "java-style properties file with system properties")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "run the substitution pass without writing destinations")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "run operations asynchronously")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

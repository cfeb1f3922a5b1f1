package opts

import (
	"context"

	"github.com/walteh/filterrc/pkg/config"
	"github.com/walteh/filterrc/pkg/log"
	"github.com/walteh/filterrc/pkg/properties"
	"github.com/walteh/filterrc/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	ConfigPath string
	Properties *properties.Table
	Reporter   *status.UserLogger
	ConsoleLog *log.Logger
	DryRun     bool
	Async      bool
}

// Provider builds RootOpts once flags have been parsed
type Provider func(ctx context.Context) (*RootOpts, error)

// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package operation runs the resource filtering pass over the configured
// file tasks.
package operation

import (
	"context"

	"github.com/walteh/filterrc/pkg/config"
	"github.com/walteh/filterrc/pkg/properties"
	"github.com/walteh/filterrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a runnable unit of work
type Operation interface {
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains the collaborators for an operation
type Options struct {
	// Config supplies the filter settings, file tasks, and project settings
	Config *config.Config
	// Properties is the resolved property table
	Properties *properties.Table
	// Reporter produces the user-facing per-file and summary lines
	Reporter *status.UserLogger
	// DryRun suppresses all destination writes
	DryRun bool
}

// 🏗️ BaseOperation holds the shared dependencies
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a base operation after checking required options
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Properties == nil {
		return BaseOperation{}, errors.Errorf("property table is required")
	}
	if opts.Reporter == nil {
		return BaseOperation{}, errors.Errorf("reporter is required")
	}
	return BaseOperation{Options: opts}, nil
}

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

package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/filterrc/pkg/config"
	"github.com/walteh/filterrc/pkg/status"
	"github.com/walteh/filterrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📋 FilterResult reports the subset of tasks that were actually filtered,
// for the caller to chain into further build steps.
type FilterResult struct {
	Filtered      []config.FileTask // Tasks whose destinations were written
	Substitutions int               // Total resolved references across all files
}

// 📦 FilterOperation implements the substitution pass
type FilterOperation struct {
	BaseOperation

	engine *text.Engine
	result *FilterResult
}

// 🏭 NewFilterOperation creates a new filter operation
func NewFilterOperation(opts Options) (*FilterOperation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, errors.Errorf("creating filter operation: %w", err)
	}
	return &FilterOperation{
		BaseOperation: base,
		engine:        text.NewEngine(),
	}, nil
}

// 🏃 Execute runs the filtering pass: compile the pattern, select matching
// tasks, emit the summary, then substitute and write each file in order.
// Files written before a failure stay written; a destination is only
// written once its whole content transformed.
func (op *FilterOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	pattern, err := text.Compile(op.Config.Filter.VariablePattern, op.Config.Filter.EscapeFormat)
	if err != nil {
		return errors.Errorf("compiling filter pattern: %w", err)
	}

	candidates := op.selectTasks(ctx)

	if len(candidates) > 0 {
		destinations := make([]string, len(candidates))
		for i, task := range candidates {
			destinations[i] = task.Destination
		}
		commonDir, _ := status.CommonPrefix(destinations)
		op.Reporter.LogSummary(len(candidates), commonDir)
	}

	result := &FilterResult{}
	for _, task := range candidates {
		substitutions, err := op.processTask(ctx, task, pattern)
		if err != nil {
			op.Reporter.LogFileChange(status.FileChange{
				State:  status.StateError,
				Source: task.Source,
				Error:  err,
			})
			return errors.Errorf("filtering %s: %w", task.Source, err)
		}
		result.Filtered = append(result.Filtered, task)
		result.Substitutions += substitutions
	}
	op.result = result

	logger.Debug().Int("filtered", len(result.Filtered)).Int("substitutions", result.Substitutions).Msg("filter pass complete")
	return nil
}

// Result returns the outcome of the last Execute call, nil before that.
func (op *FilterOperation) Result() *FilterResult {
	return op.result
}

// 🔎 selectTasks applies ignore patterns and the extension matcher
func (op *FilterOperation) selectTasks(ctx context.Context) []config.FileTask {
	var candidates []config.FileTask
	for _, task := range op.Config.Files {
		if op.shouldIgnore(ctx, task.Source) {
			op.Reporter.LogFileChange(status.FileChange{
				State:  status.StateIgnored,
				Source: task.Source,
			})
			continue
		}
		if !MatchesExtension(filepath.Base(task.Source), op.Config.Filter.Extensions) {
			op.Reporter.LogFileChange(status.FileChange{
				State:  status.StateSkipped,
				Source: task.Source,
			})
			continue
		}
		candidates = append(candidates, task)
	}
	return candidates
}

// 📄 processTask reads, substitutes, and writes one resource file
func (op *FilterOperation) processTask(ctx context.Context, task config.FileTask, pattern *text.CompiledPattern) (int, error) {
	content, err := os.ReadFile(task.Source)
	if err != nil {
		return 0, errors.Errorf("reading source: %w", err)
	}

	res, err := op.engine.Substitute(ctx, string(content), pattern, op.Properties)
	if err != nil {
		return 0, err
	}

	if !op.DryRun {
		if err := os.MkdirAll(filepath.Dir(task.Destination), 0755); err != nil {
			return 0, errors.Errorf("creating destination directory: %w", err)
		}
		if err := os.WriteFile(task.Destination, []byte(res.FilteredContent), 0644); err != nil {
			return 0, errors.Errorf("writing destination: %w", err)
		}
	}

	op.Reporter.LogFileChange(status.FileChange{
		State:         status.StateFiltered,
		Source:        task.Source,
		Destination:   task.Destination,
		Substitutions: res.Substitutions,
	})

	return res.Substitutions, nil
}

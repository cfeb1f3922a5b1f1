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

package status

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about the filtering pass
type UserLogger struct {
	log   zerolog.Logger // for debug/error logging
	quiet bool
}

// 🖼️ FileChange describes what happened to one candidate file
type FileChange struct {
	State         FileState
	Source        string
	Destination   string
	Substitutions int
	Error         error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 🔇 NewQuietLogger creates a logger that only writes structured output
func NewQuietLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log:   *zerolog.Ctx(ctx),
		quiet: true,
	}
}

// 📝 LogSummary logs the batch summary line before any file is processed
func (u *UserLogger) LogSummary(count int, commonDir string) {
	msg := FormatSummary(count, commonDir)
	if !u.quiet {
		pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	}
	u.log.Info().Int("count", count).Str("common_dir", commonDir).Msg(msg)
}

// 📝 LogFileChange logs a per-file outcome with appropriate formatting
func (u *UserLogger) LogFileChange(change FileChange) {
	var printer *pterm.PrefixPrinter
	switch change.State {
	case StateFiltered:
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	case StateSkipped:
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"})
	case StateIgnored:
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "🙈"})
	case StateError:
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	default:
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "ℹ️"})
	}

	msg := FormatFileOperation(change.Source, change.State, change.Substitutions)
	if !u.quiet {
		printer.Println(msg)
		if change.Error != nil {
			pterm.Error.Println(change.Error)
		}
	}

	if change.Error != nil {
		u.log.Error().Err(change.Error).Str("source", change.Source).Msg("file filtering failed")
		return
	}
	u.log.Debug().
		Str("source", change.Source).
		Str("destination", change.Destination).
		Str("state", change.State.String()).
		Int("substitutions", change.Substitutions).
		Msg("writing filtered file")
}

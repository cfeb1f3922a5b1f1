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
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 12 // Width for status text
)

// 📊 FileState represents the outcome for one candidate file
type FileState int

const (
	StateUnknown  FileState = iota
	StateFiltered           // File matched and was substituted
	StateSkipped            // File did not match the configured extensions
	StateIgnored            // File matched an ignore pattern
	StateError              // Substitution or I/O failed
)

// String returns a string representation of FileState
func (s FileState) String() string {
	switch s {
	case StateFiltered:
		return "filtered"
	case StateSkipped:
		return "skipped"
	case StateIgnored:
		return "ignored"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// 🎯 FormatSummary formats the one-line batch summary: the pluralized count
// of resource files and, when the destinations share a directory, that
// directory.
func FormatSummary(count int, commonDir string) string {
	noun := "resource files"
	if count == 1 {
		noun = "resource file"
	}
	if commonDir == "" {
		return fmt.Sprintf("filtering %d %s", count, noun)
	}
	return fmt.Sprintf("filtering %d %s into %s", count, noun, commonDir)
}

// 🎯 FormatFileOperation formats a per-file line for display
func FormatFileOperation(path string, state FileState, substitutions int) string {
	var prefix string
	switch state {
	case StateFiltered:
		prefix = color.GreenString("✓")
	case StateSkipped, StateIgnored:
		prefix = color.HiBlackString("-")
	case StateError:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("?")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, state.String())

	detail := ""
	if state == StateFiltered {
		detail = fmt.Sprintf("%d substitutions", substitutions)
		if substitutions == 1 {
			detail = "1 substitution"
		}
	}

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
		detail,
	)
}

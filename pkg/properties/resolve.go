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

// Package properties builds the unified property table consulted during
// substitution. Environment variables and system properties are inserted
// under the "env." and "sys." prefixes, project settings under their bare
// keys, so the three sources can never collide on a key by construction.
package properties

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// EnvPrefix is prepended to environment variable names.
	EnvPrefix = "env."

	// SysPrefix is prepended to system property names.
	SysPrefix = "sys."
)

// 🧭 Scope qualifies a project setting by configuration, task, and project
// axes. The empty string is the default (global) axis value.
type Scope struct {
	Configuration string
	Task          string
	Project       string
}

// Eligible reports whether the setting may participate in substitution at
// all: only settings at the default configuration and task axes qualify.
func (s Scope) Eligible() bool {
	return s.Configuration == "" && s.Task == ""
}

// ProjectSpecific reports whether the setting is pinned to a project, which
// lets it override a default-project setting with the same key.
func (s Scope) ProjectSpecific() bool {
	return s.Project != ""
}

// 📦 Setting is one project-level key/value entry with its scope
type Setting struct {
	Key   string
	Value Value
	Scope Scope
}

// 🗃️ Table maps variable names to substitution values. It is built once per
// invocation and never mutated afterwards, so it is safe to share read-only.
type Table struct {
	values map[string]string
}

// Get implements the lookup used by the substitution engine.
func (t *Table) Get(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.values)
}

// Names returns all keys in sorted order, for logging and tests.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.values))
	for k := range t.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// 🧮 Resolve builds the unified property table from the three sources, in
// insertion order environment, system, project. Project settings are folded
// with an explicit tie-break: a project-specific scope overrides a default
// one on key collision, otherwise the first-seen entry wins. Settings scoped
// to a specific configuration or task, and non-scalar values, are excluded.
func Resolve(ctx context.Context, env map[string]string, sys map[string]string, settings []Setting) *Table {
	logger := zerolog.Ctx(ctx)

	values := make(map[string]string, len(env)+len(sys)+len(settings))
	for k, v := range env {
		values[EnvPrefix+k] = v
	}
	for k, v := range sys {
		values[SysPrefix+k] = v
	}

	project := make(map[string]string, len(settings))
	specific := make(map[string]bool, len(settings))
	for _, s := range settings {
		if !s.Scope.Eligible() {
			logger.Debug().Str("key", s.Key).Str("configuration", s.Scope.Configuration).Str("task", s.Scope.Task).
				Msg("excluding setting scoped to a specific configuration or task")
			continue
		}
		if !s.Value.IsScalar() {
			logger.Debug().Str("key", s.Key).Msg("excluding non-scalar setting")
			continue
		}

		if _, seen := project[s.Key]; seen {
			if s.Scope.ProjectSpecific() && !specific[s.Key] {
				project[s.Key] = s.Value.Render()
				specific[s.Key] = true
			}
			continue
		}
		project[s.Key] = s.Value.Render()
		specific[s.Key] = s.Scope.ProjectSpecific()
	}
	for k, v := range project {
		values[k] = v
	}

	logger.Debug().
		Int("env", len(env)).
		Int("sys", len(sys)).
		Int("project", len(project)).
		Msg("resolved property table")

	return &Table{values: values}
}

// 🧩 SplitEnviron converts os.Environ-style "key=value" pairs into a map, so
// the resolver stays a pure function of explicit inputs.
func SplitEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

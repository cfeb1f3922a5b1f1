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

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_filtered_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Source:        "app.properties",
					Destination:   "out/app.properties",
					Status:        "filtered",
					IsFiltered:    true,
					Substitutions: 2,
				})
			},
			wantLogs: []string{
				"✓ app.properties",
				"filtered",
				"2",
			},
		},
		{
			name: "log_skipped_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Source:    "logo.png",
					Status:    "skipped",
					IsSkipped: true,
				})
			},
			wantLogs: []string{
				"- logo.png",
				"skipped",
			},
		},
		{
			name: "start_batch",
			op: func(t *testing.T, logger *Logger) {
				logger.StartBatch(context.Background(), BatchOperation{
					ConfigPath: ".filterrc.yaml",
					Count:      3,
					CommonDir:  "/build/resources",
				})
			},
			wantLogs: []string{
				"[filtering .filterrc.yaml]",
				"/build/resources",
			},
		},
		{
			name: "header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("substituting resource variables")
			},
			wantLogs: []string{
				"filterrc",
				"substituting resource variables",
			},
		},
		{
			name: "success",
			op: func(t *testing.T, logger *Logger) {
				logger.Successf("filtered %d files", 2)
			},
			wantLogs: []string{
				"filtered 2 files",
			},
		},
		{
			name: "warning",
			op: func(t *testing.T, logger *Logger) {
				logger.Warning("no candidate files")
			},
			wantLogs: []string{
				"no candidate files",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, zerolog.InfoLevel)

			tt.op(t, logger)

			out := buf.String()
			for _, want := range tt.wantLogs {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.InfoLevel)

	ctx := NewContext(context.Background(), logger)
	require.Equal(t, logger, FromContext(ctx))

	assert.Panics(t, func() {
		FromContext(context.Background())
	})
}

func TestLoggerEndBatchResetsOperations(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.InfoLevel)
	ctx := context.Background()

	logger.StartBatch(ctx, BatchOperation{ConfigPath: ".filterrc.yaml", Count: 1})
	logger.LogFileOperation(ctx, FileOperation{Source: "a.xml", Status: "filtered", IsFiltered: true})
	logger.EndBatch(ctx)

	assert.Empty(t, logger.operations)
	assert.True(t, strings.Contains(buf.String(), "a.xml"))
}

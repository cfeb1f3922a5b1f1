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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/walteh/filterrc/pkg/properties"
	"github.com/walteh/filterrc/pkg/text"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📄 FileTask is one candidate resource file: where to read it and where the
// filtered content goes. Tasks are supplied by the caller, never discovered.
type FileTask struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
}

// 🔧 FilterArgs holds the three user-configurable filter settings plus
// optional ignore globs
type FilterArgs struct {
	Extensions      []string `json:"extensions" yaml:"extensions"`
	VariablePattern string   `json:"variable_pattern" yaml:"variable_pattern"`
	EscapeFormat    string   `json:"escape_format" yaml:"escape_format"`
	IgnorePatterns  []string `json:"ignore_patterns" yaml:"ignore_patterns"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Filter   FilterArgs
	Files    []FileTask
	Settings []properties.Setting
}

// DefaultExtensions are the filtered extensions when none are configured.
func DefaultExtensions() []string {
	return []string{".xml", ".properties"}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if len(cfg.Filter.Extensions) == 0 {
		cfg.Filter.Extensions = DefaultExtensions()
	}
	if cfg.Filter.VariablePattern == "" {
		cfg.Filter.VariablePattern = text.DefaultVariablePattern
	}
	if cfg.Filter.EscapeFormat == "" {
		cfg.Filter.EscapeFormat = text.DefaultEscapeFormat
	}

	for i, task := range cfg.Files {
		if task.Source == "" {
			return errors.Errorf("file %d: source is required", i)
		}
		if task.Destination == "" {
			return errors.Errorf("file %d: destination is required", i)
		}
		cfg.Files[i].Source = filepath.Clean(task.Source)
		cfg.Files[i].Destination = filepath.Clean(task.Destination)
	}

	for i, s := range cfg.Settings {
		if s.Key == "" {
			return errors.Errorf("setting %d: key is required", i)
		}
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%d files, %d settings, extensions %v",
		len(cfg.Files), len(cfg.Settings), cfg.Filter.Extensions)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

// yamlSetting carries an arbitrary-typed value before classification.
type yamlSetting struct {
	Key           string      `yaml:"key"`
	Value         interface{} `yaml:"value"`
	Configuration string      `yaml:"configuration"`
	Task          string      `yaml:"task"`
	Project       string      `yaml:"project"`
}

type yamlConfig struct {
	Filter   FilterArgs    `yaml:"filter"`
	Files    []FileTask    `yaml:"files"`
	Settings []yamlSetting `yaml:"settings"`
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var raw yamlConfig
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	cfg := &Config{
		Filter: raw.Filter,
		Files:  raw.Files,
	}
	for _, s := range raw.Settings {
		cfg.Settings = append(cfg.Settings, properties.Setting{
			Key:   s.Key,
			Value: properties.FromGo(s.Value),
			Scope: properties.Scope{
				Configuration: s.Configuration,
				Task:          s.Task,
				Project:       s.Project,
			},
		})
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

type hclFilter struct {
	Extensions      []string `hcl:"extensions,optional"`
	VariablePattern string   `hcl:"variable_pattern,optional"`
	EscapeFormat    string   `hcl:"escape_format,optional"`
	IgnorePatterns  []string `hcl:"ignore_patterns,optional"`
}

type hclFileTask struct {
	Source      string `hcl:"source"`
	Destination string `hcl:"destination"`
}

type hclSetting struct {
	Key           string    `hcl:"key,label"`
	Value         cty.Value `hcl:"value"`
	Configuration string    `hcl:"configuration,optional"`
	Task          string    `hcl:"task,optional"`
	Project       string    `hcl:"project,optional"`
}

type hclConfig struct {
	Filter   *hclFilter    `hcl:"filter,block"`
	Files    []hclFileTask `hcl:"file,block"`
	Settings []hclSetting  `hcl:"setting,block"`
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var raw hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{}
	if raw.Filter != nil {
		cfg.Filter = FilterArgs{
			Extensions:      raw.Filter.Extensions,
			VariablePattern: raw.Filter.VariablePattern,
			EscapeFormat:    raw.Filter.EscapeFormat,
			IgnorePatterns:  raw.Filter.IgnorePatterns,
		}
	}
	for _, f := range raw.Files {
		cfg.Files = append(cfg.Files, FileTask{Source: f.Source, Destination: f.Destination})
	}
	for _, s := range raw.Settings {
		cfg.Settings = append(cfg.Settings, properties.Setting{
			Key:   s.Key,
			Value: properties.FromCty(s.Value),
			Scope: properties.Scope{
				Configuration: s.Configuration,
				Task:          s.Task,
				Project:       s.Project,
			},
		})
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

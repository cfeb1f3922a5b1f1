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
	"bufio"
	"io"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📖 ParseProperties reads java-style "key=value" lines into a map. Blank
// lines and lines starting with '#' or '!' are skipped; whitespace around
// keys and values is trimmed. Later lines win on duplicate keys.
func ParseProperties(r io.Reader) (map[string]string, error) {
	props := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		if key == "" {
			continue
		}
		props[key] = strings.TrimSpace(line[eq+1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("reading properties: %w", err)
	}
	return props, nil
}

// 📂 LoadProperties reads a properties file from disk
func LoadProperties(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening properties file: %w", err)
	}
	defer f.Close()

	props, err := ParseProperties(f)
	if err != nil {
		return nil, errors.Errorf("parsing properties file %s: %w", path, err)
	}
	return props, nil
}

// 🏷️ ParseDefines converts repeated "key=value" flag values (the -D flags)
// into a map. A define without '=' gets the empty string as its value.
func ParseDefines(defines []string) (map[string]string, error) {
	props := make(map[string]string, len(defines))
	for _, d := range defines {
		eq := strings.Index(d, "=")
		if eq == 0 {
			return nil, errors.Errorf("invalid define %q: missing key", d)
		}
		if eq < 0 {
			props[d] = ""
			continue
		}
		props[d[:eq]] = d[eq+1:]
	}
	return props, nil
}

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
	"os"
	"strings"
)

// 🧭 CommonPrefix returns the longest common directory prefix of paths. The
// boolean is false when fewer than two paths are given. The reduction is
// left-associative and only accepts prefixes ending on a directory boundary,
// so "/a/bc" and "/a/bd" share "/a", not "/a/b".
func CommonPrefix(paths []string) (string, bool) {
	if len(paths) < 2 {
		return "", false
	}

	common := paths[0]
	for _, p := range paths[1:] {
		common = commonDir(common, p)
	}
	return common, true
}

// commonDir returns the longest prefix of a that is also a prefix of b and
// is immediately followed by a path separator in b.
func commonDir(a, b string) string {
	for n := len(a); n > 0; n-- {
		if n < len(b) && os.IsPathSeparator(b[n]) && strings.HasPrefix(b, a[:n]) {
			return a[:n]
		}
	}
	return ""
}

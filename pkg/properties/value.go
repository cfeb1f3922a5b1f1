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

package properties

import (
	"fmt"
	"unicode/utf8"

	"github.com/zclconf/go-cty/cty"
)

// 🏷️ Kind classifies a project-setting value
type Kind int

const (
	KindOther Kind = iota // Lists, maps, nulls, anything non-scalar
	KindText              // Multi-character string
	KindNumber            // Integer or float
	KindBool              // Boolean
	KindChar              // Single-character string
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	default:
		return "other"
	}
}

// 💎 Value is a typed project-setting value. Only the four scalar kinds are
// eligible for substitution; everything else is silently excluded by the
// resolver.
type Value struct {
	kind Kind
	raw  cty.Value
}

// 🏭 FromCty wraps an HCL-decoded value
func FromCty(v cty.Value) Value {
	if v.IsNull() || !v.IsKnown() {
		return Value{kind: KindOther, raw: v}
	}
	switch v.Type() {
	case cty.String:
		return Value{kind: classifyString(v.AsString()), raw: v}
	case cty.Number:
		return Value{kind: KindNumber, raw: v}
	case cty.Bool:
		return Value{kind: KindBool, raw: v}
	default:
		return Value{kind: KindOther, raw: v}
	}
}

// 🏭 FromGo wraps a YAML-decoded value
func FromGo(v interface{}) Value {
	switch tv := v.(type) {
	case string:
		return Value{kind: classifyString(tv), raw: cty.StringVal(tv)}
	case bool:
		return Value{kind: KindBool, raw: cty.BoolVal(tv)}
	case int:
		return Value{kind: KindNumber, raw: cty.NumberIntVal(int64(tv))}
	case int64:
		return Value{kind: KindNumber, raw: cty.NumberIntVal(tv)}
	case uint64:
		return Value{kind: KindNumber, raw: cty.NumberUIntVal(tv)}
	case float64:
		return Value{kind: KindNumber, raw: cty.NumberFloatVal(tv)}
	default:
		return Value{kind: KindOther, raw: cty.NilVal}
	}
}

// 🏭 CharVal wraps a single character
func CharVal(r rune) Value {
	return Value{kind: KindChar, raw: cty.StringVal(string(r))}
}

func classifyString(s string) Kind {
	if utf8.RuneCountInString(s) == 1 {
		return KindChar
	}
	return KindText
}

// Kind returns the classification of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsScalar reports whether the value is eligible for substitution.
func (v Value) IsScalar() bool {
	return v.kind != KindOther
}

// 📝 Render returns the substitution text for a scalar value
func (v Value) Render() string {
	switch v.kind {
	case KindText, KindChar:
		return v.raw.AsString()
	case KindNumber:
		return v.raw.AsBigFloat().Text('f', -1)
	case KindBool:
		if v.raw.True() {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// 📝 GoString makes test failures readable
func (v Value) GoString() string {
	return fmt.Sprintf("properties.Value{%s: %s}", v.kind, v.Render())
}

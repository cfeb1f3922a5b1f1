package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestFromGo(t *testing.T) {
	tests := []struct {
		name       string
		value      interface{}
		wantKind   Kind
		wantScalar bool
		wantRender string
	}{
		{
			name:       "text",
			value:      "hello",
			wantKind:   KindText,
			wantScalar: true,
			wantRender: "hello",
		},
		{
			name:       "single_character",
			value:      "x",
			wantKind:   KindChar,
			wantScalar: true,
			wantRender: "x",
		},
		{
			name:       "int",
			value:      8080,
			wantKind:   KindNumber,
			wantScalar: true,
			wantRender: "8080",
		},
		{
			name:       "float",
			value:      3.5,
			wantKind:   KindNumber,
			wantScalar: true,
			wantRender: "3.5",
		},
		{
			name:       "bool",
			value:      true,
			wantKind:   KindBool,
			wantScalar: true,
			wantRender: "true",
		},
		{
			name:       "list_excluded",
			value:      []interface{}{"a", "b"},
			wantKind:   KindOther,
			wantScalar: false,
		},
		{
			name:       "map_excluded",
			value:      map[string]interface{}{"k": "v"},
			wantKind:   KindOther,
			wantScalar: false,
		},
		{
			name:       "nil_excluded",
			value:      nil,
			wantKind:   KindOther,
			wantScalar: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromGo(tt.value)
			assert.Equal(t, tt.wantKind, v.Kind())
			assert.Equal(t, tt.wantScalar, v.IsScalar())
			if tt.wantScalar {
				assert.Equal(t, tt.wantRender, v.Render())
			}
		})
	}
}

func TestFromCty(t *testing.T) {
	tests := []struct {
		name       string
		value      cty.Value
		wantKind   Kind
		wantRender string
	}{
		{name: "string", value: cty.StringVal("demo"), wantKind: KindText, wantRender: "demo"},
		{name: "char", value: cty.StringVal("y"), wantKind: KindChar, wantRender: "y"},
		{name: "number", value: cty.NumberIntVal(42), wantKind: KindNumber, wantRender: "42"},
		{name: "bool", value: cty.False, wantKind: KindBool, wantRender: "false"},
		{name: "list", value: cty.ListVal([]cty.Value{cty.StringVal("a")}), wantKind: KindOther},
		{name: "null", value: cty.NullVal(cty.String), wantKind: KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromCty(tt.value)
			assert.Equal(t, tt.wantKind, v.Kind())
			if v.IsScalar() {
				assert.Equal(t, tt.wantRender, v.Render())
			}
		})
	}
}

func TestCharVal(t *testing.T) {
	v := CharVal('§')
	assert.Equal(t, KindChar, v.Kind())
	assert.True(t, v.IsScalar())
	assert.Equal(t, "§", v.Render())
}

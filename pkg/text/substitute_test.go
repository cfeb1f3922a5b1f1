package text

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

type mapSource map[string]string

func (m mapSource) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func TestEngine_Substitute(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		props           mapSource
		want            string
		wantSubs        int
		wantEscaped     int
		wantModified    bool
		wantUnknownName string
	}{
		{
			name:         "round_trip",
			content:      "Hello ${name}!",
			props:        mapSource{"name": "World"},
			want:         "Hello World!",
			wantSubs:     1,
			wantModified: true,
		},
		{
			name:         "escaped_reference_untouched",
			content:      `Value: \${name}`,
			props:        mapSource{"name": "World"},
			want:         "Value: ${name}",
			wantEscaped:  1,
			wantModified: true,
		},
		{
			name:         "escaped_reference_without_property",
			content:      `Value: \${name}`,
			props:        mapSource{},
			want:         "Value: ${name}",
			wantEscaped:  1,
			wantModified: true,
		},
		{
			name:            "unknown_variable",
			content:         "${missing}",
			props:           mapSource{},
			wantUnknownName: "missing",
		},
		{
			name:    "no_placeholders",
			content: "plain text, nothing to do",
			props:   mapSource{"name": "World"},
			want:    "plain text, nothing to do",
		},
		{
			name:    "empty_content",
			content: "",
			props:   mapSource{},
			want:    "",
		},
		{
			name:         "multiple_tokens",
			content:      "${greeting} ${name}${punct}",
			props:        mapSource{"greeting": "Hello", "name": "World", "punct": "!"},
			want:         "Hello World!",
			wantSubs:     3,
			wantModified: true,
		},
		{
			name:         "mixed_escaped_and_resolved",
			content:      `${env.HOME} and \${env.HOME}`,
			props:        mapSource{"env.HOME": "/home/u"},
			want:         "/home/u and ${env.HOME}",
			wantSubs:     1,
			wantEscaped:  1,
			wantModified: true,
		},
		{
			name:         "replacement_is_literal",
			content:      "${v}",
			props:        mapSource{"v": `$1 \${x} ${y}`},
			want:         `$1 \${x} ${y}`,
			wantSubs:     1,
			wantModified: true,
		},
		{
			name:            "fails_at_first_unknown",
			content:         "${known} ${absent} ${known}",
			props:           mapSource{"known": "k"},
			wantUnknownName: "absent",
		},
		{
			name:         "prefixed_property_keys",
			content:      "port=${sys.port} user=${env.USER} app=${app.name}",
			props:        mapSource{"sys.port": "8080", "env.USER": "alice", "app.name": "demo"},
			want:         "port=8080 user=alice app=demo",
			wantSubs:     3,
			wantModified: true,
		},
	}

	pattern, err := Compile(DefaultVariablePattern, DefaultEscapeFormat)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine()
			result, err := engine.Substitute(context.Background(), tt.content, pattern, tt.props)

			if tt.wantUnknownName != "" {
				require.Error(t, err)
				var unknownErr *UnknownVariableError
				require.True(t, errors.As(err, &unknownErr), "error should be an UnknownVariableError")
				assert.Equal(t, tt.wantUnknownName, unknownErr.Name)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, result.OriginalContent)
			assert.Equal(t, tt.want, result.FilteredContent)
			assert.Equal(t, tt.wantSubs, result.Substitutions)
			assert.Equal(t, tt.wantEscaped, result.Escaped)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestEngine_Substitute_IdempotentWithoutPlaceholders(t *testing.T) {
	pattern, err := Compile(DefaultVariablePattern, DefaultEscapeFormat)
	require.NoError(t, err)

	engine := NewEngine()
	content := "<project>\n  <name>demo</name>\n</project>\n"

	first, err := engine.Substitute(context.Background(), content, pattern, mapSource{})
	require.NoError(t, err)
	second, err := engine.Substitute(context.Background(), first.FilteredContent, pattern, mapSource{})
	require.NoError(t, err)

	assert.Equal(t, content, first.FilteredContent)
	assert.Equal(t, content, second.FilteredContent)
	assert.False(t, first.WasModified)
}

func TestEngine_Substitute_CustomPattern(t *testing.T) {
	pattern, err := Compile(`@(\w+)@`, `\\?%s`)
	require.NoError(t, err)

	engine := NewEngine()
	result, err := engine.Substitute(context.Background(), "name=@name@", pattern, mapSource{"name": "demo"})
	require.NoError(t, err)

	assert.Equal(t, "name=demo", result.FilteredContent)
}

package text

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// PropertySource resolves variable names to substitution values.
type PropertySource interface {
	Get(name string) (string, bool)
}

// Result describes one substitution pass over a piece of content.
type Result struct {
	OriginalContent string // Content as read
	FilteredContent string // Content after substitution
	WasModified     bool   // Whether any token changed the content
	Substitutions   int    // Number of resolved variable references
	Escaped         int    // Number of escaped references passed through
}

// Engine applies a compiled pattern to resource-file content.
type Engine struct{}

// NewEngine creates a new substitution engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Substitute scans content left to right for non-overlapping matches of
// pattern. A match consisting only of the escape-eligible span (group 1) is
// resolved against props and replaced with the value, inserted literally. A
// match carrying a leading escape marker is emitted with the marker stripped
// and the reference untouched. The marker is assumed to be exactly one
// character, per the default escape format.
func (e *Engine) Substitute(ctx context.Context, content string, pattern *CompiledPattern, props PropertySource) (*Result, error) {
	result := &Result{
		OriginalContent: content,
		FilteredContent: content,
	}

	matches := pattern.re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return result, nil
	}

	var out strings.Builder
	out.Grow(len(content))

	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		out.WriteString(content[last:start])
		full := content[start:end]

		// m[2:4] is the escape-eligible span, m[4:6] the variable name.
		escapeSpan := m[2] >= 0 && m[3]-m[2] == end-start
		if escapeSpan {
			name := ""
			if m[4] >= 0 {
				name = content[m[4]:m[5]]
			}
			value, ok := props.Get(name)
			if !ok {
				return nil, errors.WithStack(&UnknownVariableError{Name: name})
			}
			out.WriteString(value)
			result.Substitutions++
		} else {
			_, markerLen := utf8.DecodeRuneInString(full)
			out.WriteString(full[markerLen:])
			result.Escaped++
		}
		last = end
	}
	out.WriteString(content[last:])

	result.FilteredContent = out.String()
	result.WasModified = result.FilteredContent != content

	zerolog.Ctx(ctx).Debug().
		Int("substitutions", result.Substitutions).
		Int("escaped", result.Escaped).
		Bool("modified", result.WasModified).
		Msg("substitution pass complete")

	return result, nil
}

package text

import (
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultVariablePattern matches ${name} tokens, capturing the name.
	DefaultVariablePattern = `\$\{(.+?)\}`

	// DefaultEscapeFormat marks a token as escaped by an optional leading
	// backslash.
	DefaultEscapeFormat = `\\?%s`
)

// CompiledPattern is the combined matching expression built from a variable
// pattern and an escape format. Group 1 is the escape-eligible span (the
// whole token without its marker), group 2 is the variable name.
type CompiledPattern struct {
	re *regexp.Regexp
}

// Compile validates variablePattern and escapeFormat and combines them into
// a single expression. The escape format's %s placeholder is replaced with
// "(" + variablePattern and a closing group is appended, so the result has
// exactly two capture groups.
func Compile(variablePattern, escapeFormat string) (*CompiledPattern, error) {
	inner, err := regexp.Compile(variablePattern)
	if err != nil {
		return nil, errors.WithStack(&ConfigError{
			Reason: fmt.Sprintf("variable pattern %q does not compile: %v", variablePattern, err),
		})
	}
	if n := inner.NumSubexp(); n != 1 {
		return nil, errors.WithStack(&ConfigError{
			Reason: fmt.Sprintf("variable pattern %q must contain exactly one capturing group, found %d", variablePattern, n),
		})
	}
	if n := strings.Count(escapeFormat, "%s"); n != 1 {
		return nil, errors.WithStack(&ConfigError{
			Reason: fmt.Sprintf("escape format %q must contain exactly one %%s placeholder, found %d", escapeFormat, n),
		})
	}

	combined := fmt.Sprintf(escapeFormat, "("+variablePattern) + ")"
	re, err := regexp.Compile(combined)
	if err != nil {
		return nil, errors.WithStack(&ConfigError{
			Reason: fmt.Sprintf("combined pattern %q does not compile: %v", combined, err),
		})
	}

	return &CompiledPattern{re: re}, nil
}

// String returns the source of the combined expression.
func (p *CompiledPattern) String() string {
	return p.re.String()
}

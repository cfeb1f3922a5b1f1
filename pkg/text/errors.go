package text

import "fmt"

// ConfigError reports a malformed variable pattern or escape format. It is
// raised at compile time, before any file is touched.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid filter configuration: %s", e.Reason)
}

// UnknownVariableError reports a non-escaped placeholder referencing a
// variable that is absent from the property table.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %q referenced in resource file", e.Name)
}

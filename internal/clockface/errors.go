package clockface

import "fmt"

// ConfigurationError reports a color string that could not be parsed, either
// in the initial Options or in SetSecondHandColor.
type ConfigurationError struct {
	// Op is the operation that failed (e.g., "clockface.SetSecondHandColor").
	Op string
	// Value is the rejected input.
	Value string
	// Err is the underlying parse error.
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: invalid configuration %q: %v", e.Op, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError reports an unrecognized hand-thickness category.
type InvalidArgumentError struct {
	Op    string
	Value string
	Err   error
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid argument %q: %v", e.Op, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: invalid argument %q", e.Op, e.Value)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

package model

import "fmt"

// ValidationError reports an invalid spec value or an invalid joint property
// of a scenario collection (probabilities, name uniqueness). It is always
// raised before any model is assembled.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigError reports a cross-reference failure that only shows up once the
// joined view of portfolio, markets, and scenarios exists: a profile keyed by
// an unknown name, a profile of the wrong length, a required profile missing.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Reason
}

func Configf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

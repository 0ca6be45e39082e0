package models

import "fmt"

// MissingDataError reports that a required statistical section is absent.
// It is always fatal: the pipeline never substitutes synthetic defaults.
type MissingDataError struct {
	Team    string
	Section string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing data for %s: %s section unavailable", e.Team, e.Section)
}

// NewMissingDataError creates a missing data error for a team section.
func NewMissingDataError(team, section string) *MissingDataError {
	return &MissingDataError{Team: team, Section: section}
}

// ConfigurationError reports an invalid caller-supplied parameter such as a
// recency weight outside [0,1], a non-positive simulation count or decimal
// odds at or below 1.0.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Message)
}

// NewConfigurationError creates a configuration error for a parameter.
func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{Field: field, Message: message}
}

// TrialError reports that an individual simulation trial produced a
// non-finite or otherwise invalid value. One corrupted trial invalidates
// the aggregate, so the whole run is aborted rather than the trial skipped.
type TrialError struct {
	Trial   int
	Message string
}

func (e *TrialError) Error() string {
	return fmt.Sprintf("simulation trial %d failed: %s", e.Trial, e.Message)
}

// NewTrialError creates a trial error for the given trial index.
func NewTrialError(trial int, message string) *TrialError {
	return &TrialError{Trial: trial, Message: message}
}

package services

import "fmt"

// ValidationError reports malformed or missing request fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid fields", len(e.Fields))
}

// StorageError wraps a database I/O failure.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ConfigurationError means a required credential or setting is absent.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ProviderError wraps a failed call to the upstream AI provider.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider failure: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

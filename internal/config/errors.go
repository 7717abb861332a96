package config

import (
	"fmt"
)

type ReadError struct {
	Path    string
	Wrapped error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Wrapped)
}

func (e *ReadError) Unwrap() error {
	return e.Wrapped
}

type InvalidYAMLError struct {
	Path    string
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid yaml document: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Wrapped
}

type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s has an empty required property: %s", ConfigFile, e.Property)
}

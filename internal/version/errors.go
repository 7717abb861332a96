package version

import (
	"errors"
	"fmt"
)

// ErrUnparseableDescriptor is matched by every error caused by a malformed descriptor.
var ErrUnparseableDescriptor = errors.New("unparseable version descriptor")

type InvalidComponentError struct {
	Component  string
	Value      string
	Descriptor string
	Wrapped    error
}

func (e *InvalidComponentError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("%s: %q has no %s component", ErrUnparseableDescriptor, e.Descriptor, e.Component)
	}
	return fmt.Sprintf("%s: %s component %q of %q is not a number",
		ErrUnparseableDescriptor, e.Component, e.Value, e.Descriptor)
}

func (e *InvalidComponentError) Is(target error) bool {
	return target == ErrUnparseableDescriptor
}

func (e *InvalidComponentError) Unwrap() error {
	return e.Wrapped
}

type DescribeError struct {
	Dir     string
	Wrapped error
}

func (e *DescribeError) Error() string {
	return fmt.Sprintf("failed to describe repository %s: %v", e.Dir, e.Wrapped)
}

func (e *DescribeError) Unwrap() error {
	return e.Wrapped
}

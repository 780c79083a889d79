package conversion

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is matched by every error reporting that no conversion path exists.
	ErrUnsupported = errors.New("unsupported conversion")

	// ErrInvalidRegistration is matched by errors rejecting a nil or incomplete edge or factory.
	ErrInvalidRegistration = errors.New("invalid converter registration")
)

// UnsupportedError reports a (source, target) pair with no conversion path.
type UnsupportedError struct {
	Source any
	Target any
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported conversion from %v to %v", e.Source, e.Target)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// ConversionError reports a converter rejecting a specific value.
// It is value-dependent and never cached.
type ConversionError struct {
	Source any
	Target any
	Value  any
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot convert %v from %v to %v", e.Value, e.Source, e.Target)
	}
	return fmt.Sprintf("cannot convert %v from %v to %v: %v", e.Value, e.Source, e.Target, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// RegistrationError reports registry misuse.
type RegistrationError struct {
	Reason string
}

func (e *RegistrationError) Error() string {
	return "invalid converter registration: " + e.Reason
}

func (e *RegistrationError) Is(target error) bool {
	return target == ErrInvalidRegistration
}

// IsUnsupported reports whether err means no conversion path exists.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

package archipelago

import "golang.org/x/xerrors"

// ConfigError reports an invalid archipelago configuration: an
// incompatible problem on PushBack, a topology vertex-count mismatch on
// SetTopology, or a migration rate out of range.
type ConfigError struct {
	cause error
}

func (e *ConfigError) Error() string { return xerrors.Errorf("archipelago: config: %w", e.cause).Error() }
func (e *ConfigError) Unwrap() error { return e.cause }

func newConfigError(format string, args ...interface{}) error {
	return &ConfigError{cause: xerrors.Errorf(format, args...)}
}

// StateError reports a mutating operation invoked while the archipelago
// is busy evolving.
type StateError struct {
	cause error
}

func (e *StateError) Error() string { return xerrors.Errorf("archipelago: state: %w", e.cause).Error() }
func (e *StateError) Unwrap() error { return e.cause }

func newStateError(format string, args ...interface{}) error {
	return &StateError{cause: xerrors.Errorf(format, args...)}
}

// OwnershipError reports an island already attached to another
// archipelago being pushed onto this one.
type OwnershipError struct {
	cause error
}

func (e *OwnershipError) Error() string { return xerrors.Errorf("archipelago: ownership: %w", e.cause).Error() }
func (e *OwnershipError) Unwrap() error { return e.cause }

func newOwnershipError(format string, args ...interface{}) error {
	return &OwnershipError{cause: xerrors.Errorf(format, args...)}
}

// PreconditionError reports an invalid island index passed to an inspector.
type PreconditionError struct {
	cause error
}

func (e *PreconditionError) Error() string {
	return xerrors.Errorf("archipelago: precondition: %w", e.cause).Error()
}
func (e *PreconditionError) Unwrap() error { return e.cause }

func newPreconditionError(format string, args ...interface{}) error {
	return &PreconditionError{cause: xerrors.Errorf(format, args...)}
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownPropType is returned when a property name cannot be resolved to a key.
	ErrUnknownPropType = zerr.New("unknown property type")

	// ErrUnknownPropVar is returned when a variant name cannot be resolved to a tag.
	ErrUnknownPropVar = zerr.New("unknown property variant")

	// ErrPropNotFound is returned by the data-access layer when no property content is stored.
	ErrPropNotFound = zerr.New("property not found")

	// ErrTimeNotFound is returned by the data-access layer when no time value is stored.
	ErrTimeNotFound = zerr.New("time property not found")

	// ErrTimeOutOfRange is returned when a SilTime or time lies outside years 1 to 9999.
	ErrTimeOutOfRange = zerr.New("time out of range")

	// ErrInvalidConfig is returned when a run file is structurally invalid.
	ErrInvalidConfig = zerr.New("invalid run configuration")

	// ErrDuplicateRun is returned when two runs in a run file share a name.
	ErrDuplicateRun = zerr.New("duplicate run name")

	// ErrIdentityMismatch is returned when properties read back from storage
	// do not resolve to the canonical instance that was written.
	ErrIdentityMismatch = zerr.New("stored properties lost canonical identity")

	// ErrInvalidCodePoint is returned when a code point cannot be encoded as UTF-16.
	ErrInvalidCodePoint = zerr.New("invalid code point")
)

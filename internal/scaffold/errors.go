// Package scaffold builds a project's initial agent context tree from
// templates. Every file write goes through the idempotent writer, so
// repeated runs complete a partial tree without destroying user edits.
package scaffold

import "errors"

// Sentinel errors for the scaffold package.
var (
	// ErrInvalidMode indicates an unrecognized init mode value.
	ErrInvalidMode = errors.New("scaffold: invalid mode, must be lite or full")

	// ErrProjectNameRequired indicates scaffolding was requested without
	// a project name.
	ErrProjectNameRequired = errors.New("scaffold: project name is required")
)

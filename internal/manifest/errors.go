package manifest

import "errors"

// Sentinel errors for the manifest package.
var (
	// ErrMalformed indicates an existing manifest file could not be
	// parsed. Callers degrade to an empty baseline instead of failing.
	ErrMalformed = errors.New("manifest: malformed manifest file")

	// ErrSkillsRootMissing indicates the skills directory does not exist,
	// so there is nothing to synchronize against.
	ErrSkillsRootMissing = errors.New("manifest: skills directory not found")
)

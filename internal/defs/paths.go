// Package defs centralizes the file names, directory layout, and
// permissions shared across ctxkit packages.
package defs

import "io/fs"

// Directory layout of a scaffolded project, relative to the project root.
const (
	// ContextDir is the base agent context directory.
	ContextDir = ".context"

	// SpecsSubdir holds feature specifications under the context directory.
	SpecsSubdir = "specs"

	// ArchiveSubdir holds completed specifications under specs/.
	ArchiveSubdir = ".archive"

	// SkillsSubdir holds installed skill directories under the context directory.
	SkillsSubdir = "skills"

	// CIStubDir is the continuous integration stub directory created by full init.
	CIStubDir = ".github/workflows"
)

// File names.
const (
	// EntryPointMD is the agent entry-point file at the project root.
	EntryPointMD = "CLAUDE.md"

	// AgentsStubMD and GeminiStubMD are redirect stubs for other agent
	// runtimes that defer to the entry-point file.
	AgentsStubMD = "AGENTS.md"
	GeminiStubMD = "GEMINI.md"

	// ProductMD, ConventionsMD, ArchitectureMD, and TechStackMD are the
	// template-derived context files under the context directory.
	ProductMD      = "product.md"
	ConventionsMD  = "conventions.md"
	ArchitectureMD = "architecture.md"
	TechStackMD    = "tech-stack.md"

	// SpecTemplateMD is the specification template under specs/.
	SpecTemplateMD = "spec-template.md"

	// ManifestJSON is the skill manifest file kept in the skills directory.
	ManifestJSON = "manifest.json"

	// SkillFileMD is the fixed definition file name inside each skill directory.
	SkillFileMD = "SKILL.md"

	// ConfigYAML is the project configuration file under the context directory.
	ConfigYAML = "config.yaml"
)

// Permissions for created directories and files.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// Package manifest persists the record of installed skills and rebuilds
// it from the skill directories that actually exist on disk.
package manifest

// SchemaRef is the value of the manifest's "$schema" field.
const SchemaRef = "https://ctxkit.dev/schema/manifest-v1.schema.json"

// SchemaVersion is the manifest format version.
const SchemaVersion = "1.0.0"

// Defaults applied when a skill definition omits a field.
const (
	DefaultSkillVersion = "1.0.0"
	DefaultDescription  = "No description provided."
)

// Source identifies where a skill record came from.
type Source string

const (
	SourceLocal    Source = "local"
	SourceRegistry Source = "registry"
	SourceCore     Source = "core"
	SourceLegacy   Source = "legacy"
)

// SkillRecord is the manifest entry for one installed skill.
type SkillRecord struct {
	Version     string `json:"version"`
	Source      Source `json:"source"`
	Description string `json:"description"`
}

// Manifest is the persisted skill registry, keyed by skill name.
type Manifest struct {
	Schema  string                 `json:"$schema"`
	Version string                 `json:"version"`
	Skills  map[string]SkillRecord `json:"skills"`
}

// New returns an empty manifest with the current schema reference.
func New() *Manifest {
	return &Manifest{
		Schema:  SchemaRef,
		Version: SchemaVersion,
		Skills:  make(map[string]SkillRecord),
	}
}

package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ctxkit/ctxkit/internal/defs"
)

// PathIn returns the manifest file path inside the given skills root.
func PathIn(skillsRoot string) string {
	return filepath.Join(skillsRoot, defs.ManifestJSON)
}

// Load reads the manifest at path. A missing file yields an empty
// manifest and no error. A file that exists but cannot be parsed yields
// an empty manifest together with ErrMalformed so the caller can warn
// and proceed from the empty baseline.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return New(), fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return New(), fmt.Errorf("%w: %s", ErrMalformed, path)
	}
	if m.Skills == nil {
		m.Skills = make(map[string]SkillRecord)
	}
	return &m, nil
}

// Encode serializes the manifest. MarshalIndent writes map keys in
// sorted order, so encoding equal state is byte-identical every time.
func Encode(m *Manifest) ([]byte, error) {
	if m.Skills == nil {
		m.Skills = make(map[string]SkillRecord)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the manifest to path, replacing any previous file in full.
// This is the one intentional overwrite in the system: the manifest is
// derived state and is rebuilt, never merged.
func Save(path string, m *Manifest) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, defs.FilePerm); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing_file_yields_empty_manifest", func(t *testing.T) {
		m, err := Load(filepath.Join(t.TempDir(), "manifest.json"))
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if m.Schema != SchemaRef || m.Version != SchemaVersion {
			t.Errorf("empty manifest = %+v", m)
		}
		if len(m.Skills) != 0 {
			t.Errorf("expected no skills, got %d", len(m.Skills))
		}
	})

	t.Run("malformed_file_yields_ErrMalformed_and_empty_baseline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}

		m, err := Load(path)
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("err = %v, want ErrMalformed", err)
		}
		if m == nil || len(m.Skills) != 0 {
			t.Errorf("expected usable empty baseline, got %+v", m)
		}
	})

	t.Run("null_skills_normalized_to_empty_map", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.json")
		raw := `{"$schema":"x","version":"1.0.0","skills":null}`
		if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
			t.Fatal(err)
		}

		m, err := Load(path)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if m.Skills == nil {
			t.Error("Skills map must never be nil after Load")
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")

	m := New()
	m.Skills["deploy"] = SkillRecord{Version: "2.1.0", Source: SourceRegistry, Description: "Deploys things"}

	if err := Save(path, m); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Skills["deploy"] != m.Skills["deploy"] {
		t.Errorf("round trip = %+v, want %+v", got.Skills["deploy"], m.Skills["deploy"])
	}
}

func TestSaveIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.json")
	p2 := filepath.Join(dir, "b.json")

	m := New()
	m.Skills["b-skill"] = SkillRecord{Version: "1.0.0", Source: SourceLocal, Description: "b"}
	m.Skills["a-skill"] = SkillRecord{Version: "1.0.0", Source: SourceCore, Description: "a"}

	if err := Save(p1, m); err != nil {
		t.Fatal(err)
	}
	if err := Save(p2, m); err != nil {
		t.Fatal(err)
	}

	d1, _ := os.ReadFile(p1)
	d2, _ := os.ReadFile(p2)
	if string(d1) != string(d2) {
		t.Errorf("saves of equal state differ:\n%s\n---\n%s", d1, d2)
	}
}

func TestSaveOverwritesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")

	m := New()
	m.Skills["old"] = SkillRecord{Version: "1.0.0", Source: SourceLocal, Description: "old"}
	if err := Save(path, m); err != nil {
		t.Fatal(err)
	}

	if err := Save(path, New()); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got.Skills) != 0 {
		t.Errorf("overwrite must replace the file in full, got %+v", got.Skills)
	}
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with the given args and returns the
// combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// writeSkill creates .context/skills/<name>/SKILL.md in the current
// working directory.
func writeSkill(t *testing.T, name, definition string) {
	t.Helper()
	dir := filepath.Join(".context", "skills", name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(definition), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestInitLite(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "init", "acme", "--full=false", "--non-interactive")
	if err != nil {
		t.Fatalf("init error: %v\n%s", err, out)
	}

	for _, rel := range []string{"CLAUDE.md", ".context/product.md", ".context/conventions.md"} {
		if _, err := os.Stat(filepath.FromSlash(rel)); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}
	if _, err := os.Stat("AGENTS.md"); err == nil {
		t.Error("lite init must not create redirect stubs")
	}
	if !strings.Contains(out, "created") {
		t.Errorf("expected progress lines in output:\n%s", out)
	}
}

func TestInitFullSyncList(t *testing.T) {
	t.Chdir(t.TempDir())

	if out, err := execute(t, "init", "acme", "--full", "--non-interactive"); err != nil {
		t.Fatalf("init error: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.FromSlash(".context/skills/manifest.json")); err != nil {
		t.Fatalf("full init must seed the manifest: %v", err)
	}

	writeSkill(t, "deploy", "---\nname: deploy\ndescription: Ship it\nversion: 2.0.0\n---\n# Deploy\nRun the deploy.\n")
	writeSkill(t, "broken", "no frontmatter here")
	if err := os.MkdirAll(filepath.FromSlash(".context/skills/notes"), 0o755); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "sync")
	if err != nil {
		t.Fatalf("sync error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "deploy") {
		t.Errorf("sync output missing synced skill:\n%s", out)
	}
	if !strings.Contains(out, "notes") {
		t.Errorf("sync output missing skipped directory:\n%s", out)
	}

	out, err = execute(t, "list")
	if err != nil {
		t.Fatalf("list error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "deploy") || !strings.Contains(out, "Ship it") {
		t.Errorf("list output missing skill:\n%s", out)
	}
	// "broken" has a frontmatter block that never opens, so it gets the
	// default description but still one record.
	if !strings.Contains(out, "broken") {
		t.Errorf("list output missing defaulted skill:\n%s", out)
	}
}

func TestSyncWithoutInit(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "sync")
	if err == nil {
		t.Fatal("sync without a skills directory must fail")
	}
	if !strings.Contains(err.Error(), "ctxkit init") {
		t.Errorf("error should point at init: %v", err)
	}
}

func TestListWithoutSkills(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No skills installed.") {
		t.Errorf("list output = %s", out)
	}
}

func TestShow(t *testing.T) {
	t.Chdir(t.TempDir())
	writeSkill(t, "deploy", "---\nname: deploy\n---\n# Deploy\nRun the deploy.\n")

	out, err := execute(t, "show", "deploy")
	if err != nil {
		t.Fatalf("show error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Run the deploy.") {
		t.Errorf("show output missing body:\n%s", out)
	}
	if strings.Contains(out, "name: deploy") {
		t.Errorf("show output must strip frontmatter:\n%s", out)
	}

	if _, err := execute(t, "show", "missing"); err == nil {
		t.Error("show for an unknown skill must fail")
	}
}

func TestUnknownCommand(t *testing.T) {
	if _, err := execute(t, "definitely-not-a-command"); err == nil {
		t.Error("unknown subcommand must return an error")
	}
}

func TestHelpExitsCleanly(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("--help error: %v", err)
	}
	for _, sub := range []string{"init", "sync", "list", "show"} {
		if !strings.Contains(out, sub) {
			t.Errorf("usage missing %q:\n%s", sub, out)
		}
	}
}

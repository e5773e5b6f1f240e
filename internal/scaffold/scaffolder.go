package scaffold

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ctxkit/ctxkit/internal/config"
	"github.com/ctxkit/ctxkit/internal/defs"
	"github.com/ctxkit/ctxkit/internal/fsio"
	"github.com/ctxkit/ctxkit/internal/manifest"
	"github.com/ctxkit/ctxkit/internal/templates"
	"github.com/ctxkit/ctxkit/pkg/version"
)

// Mode selects the scaffolded file set.
type Mode string

const (
	// ModeLite creates the entry point and core context files.
	ModeLite Mode = "lite"
	// ModeFull adds architecture and stack files, the specs archive, CI
	// stubs, redirect stubs, and a fresh skill manifest.
	ModeFull Mode = "full"
)

// Options configures one scaffold run.
type Options struct {
	ProjectRoot string // project root directory; created files are relative to it
	ProjectName string // bound to the PROJECT_NAME placeholder
	Mode        Mode   // defaults to ModeLite when empty
}

// Result summarizes the outcome of a scaffold run.
type Result struct {
	Mode         Mode
	CreatedDirs  []string // directories ensured, in creation order
	CreatedFiles []string // files written this run
	SkippedFiles []string // files that already existed and were left alone
}

// Redirect stubs are fixed text, deliberately not templated: their whole
// point is to contain nothing project-specific.
const (
	agentsStubContent = `# AGENTS.md

Agent instructions for this project live in CLAUDE.md.
Read that file instead; do not duplicate guidance here.
`
	geminiStubContent = `# GEMINI.md

Agent instructions for this project live in CLAUDE.md.
Read that file instead; do not duplicate guidance here.
`
)

// Scaffolder orchestrates the template engine and the idempotent writer.
type Scaffolder struct {
	engine   *templates.Engine
	reporter Reporter
	logger   *slog.Logger
}

// New creates a Scaffolder. A nil reporter or logger is replaced with a
// no-op implementation.
func New(engine *templates.Engine, reporter Reporter, logger *slog.Logger) *Scaffolder {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scaffolder{engine: engine, reporter: reporter, logger: logger}
}

// fileStep pairs a template name with its destination relative to the
// project root.
type fileStep struct {
	template string
	dest     string
}

// Scaffold builds the context tree for the given options. The first
// filesystem error aborts the remaining steps; nothing already created is
// rolled back, and a later successful run completes the tree because
// every write skips what already exists.
func (s *Scaffolder) Scaffold(opts Options) (*Result, error) {
	if opts.Mode == "" {
		opts.Mode = ModeLite
	}
	if opts.Mode != ModeLite && opts.Mode != ModeFull {
		return nil, ErrInvalidMode
	}
	if strings.TrimSpace(opts.ProjectName) == "" {
		return nil, ErrProjectNameRequired
	}

	root := filepath.Clean(opts.ProjectRoot)
	result := &Result{Mode: opts.Mode}

	s.logger.Info("scaffolding project",
		"root", root,
		"name", opts.ProjectName,
		"mode", string(opts.Mode),
	)

	// Directories, in dependency order: later file steps assume these exist.
	dirs := []string{
		defs.ContextDir,
		filepath.Join(defs.ContextDir, defs.SpecsSubdir),
		filepath.Join(defs.ContextDir, defs.SkillsSubdir),
	}
	if opts.Mode == ModeFull {
		dirs = append(dirs,
			filepath.Join(defs.ContextDir, defs.SpecsSubdir, defs.ArchiveSubdir),
			filepath.FromSlash(defs.CIStubDir),
		)
	}
	for _, dir := range dirs {
		if err := fsio.EnsureDir(filepath.Join(root, dir)); err != nil {
			return result, err
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
		s.reporter.Step("dir", dir)
	}

	b := bindings(opts.ProjectName)

	steps := []fileStep{
		{"claude.md", defs.EntryPointMD},
		{"product.md", filepath.Join(defs.ContextDir, defs.ProductMD)},
		{"conventions.md", filepath.Join(defs.ContextDir, defs.ConventionsMD)},
	}
	if opts.Mode == ModeFull {
		steps = append(steps,
			fileStep{"architecture.md", filepath.Join(defs.ContextDir, defs.ArchitectureMD)},
			fileStep{"tech-stack.md", filepath.Join(defs.ContextDir, defs.TechStackMD)},
			fileStep{"spec-template.md", filepath.Join(defs.ContextDir, defs.SpecsSubdir, defs.SpecTemplateMD)},
		)
	}
	for _, st := range steps {
		if err := s.writeFile(root, st.dest, s.engine.Render(st.template, b), result); err != nil {
			return result, err
		}
	}

	if opts.Mode == ModeFull {
		if err := s.writeFile(root, defs.AgentsStubMD, []byte(agentsStubContent), result); err != nil {
			return result, err
		}
		if err := s.writeFile(root, defs.GeminiStubMD, []byte(geminiStubContent), result); err != nil {
			return result, err
		}
		if err := s.writeFreshManifest(root, result); err != nil {
			return result, err
		}
	}

	if err := s.writeConfig(root, opts, result); err != nil {
		return result, err
	}

	s.logger.Info("scaffold complete",
		"created", len(result.CreatedFiles),
		"skipped", len(result.SkippedFiles),
	)
	return result, nil
}

// writeFile performs one idempotent write and reports its outcome before
// any later step can fail.
func (s *Scaffolder) writeFile(root, rel string, content []byte, result *Result) error {
	res, err := fsio.WriteIfAbsent(filepath.Join(root, rel), content)
	if err != nil {
		return err
	}
	s.reporter.Step(res.String(), rel)
	if res == fsio.Created {
		result.CreatedFiles = append(result.CreatedFiles, rel)
	} else {
		result.SkippedFiles = append(result.SkippedFiles, rel)
	}
	return nil
}

// writeFreshManifest seeds an empty skill manifest, only when none exists.
func (s *Scaffolder) writeFreshManifest(root string, result *Result) error {
	data, err := manifest.Encode(manifest.New())
	if err != nil {
		return err
	}
	rel := filepath.Join(defs.ContextDir, defs.SkillsSubdir, defs.ManifestJSON)
	return s.writeFile(root, rel, data, result)
}

// writeConfig pins the project configuration on the first run.
func (s *Scaffolder) writeConfig(root string, opts Options, result *Result) error {
	cfg := config.New(opts.ProjectName, string(opts.Mode))
	res, err := config.Write(root, cfg)
	if err != nil {
		return err
	}
	rel := filepath.Join(defs.ContextDir, defs.ConfigYAML)
	s.reporter.Step(res.String(), rel)
	if res == fsio.Created {
		result.CreatedFiles = append(result.CreatedFiles, rel)
	} else {
		result.SkippedFiles = append(result.SkippedFiles, rel)
	}
	return nil
}

// bindings builds the placeholder set for one scaffold invocation.
func bindings(projectName string) templates.Bindings {
	title := cases.Title(language.English).String(
		strings.NewReplacer("-", " ", "_", " ").Replace(projectName))

	return templates.Bindings{
		"PROJECT_NAME":  projectName,
		"PROJECT_TITLE": title,
		"CREATED_BY":    "ctxkit " + version.GetVersion(),
	}
}

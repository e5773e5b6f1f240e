// Package templates resolves named project templates from an embedded
// template root and substitutes {KEY} placeholder tokens.
//
// This is deliberately not a templating language: there are no
// conditionals, loops, or includes, only flat literal key substitution.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed assets
var embeddedAssets embed.FS

// Bindings maps placeholder keys to their replacement values for one
// render invocation.
type Bindings map[string]string

// Engine renders named templates.
type Engine struct {
	fsys fs.FS
}

// NewEngine returns an Engine backed by the embedded template root.
func NewEngine() *Engine {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// The assets directory is compiled into the binary; failing to
		// open it is a build defect, not a runtime condition.
		panic(err)
	}
	return &Engine{fsys: sub}
}

// NewEngineFS returns an Engine backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewEngineFS(fsys fs.FS) *Engine {
	return &Engine{fsys: fsys}
}

// Render loads the named template and replaces every occurrence of {KEY}
// for each key present in the bindings. Tokens whose key has no binding
// are left untouched. A template that does not exist yields a minimal
// fallback body instead of an error, so missing optional templates never
// abort scaffolding.
func (e *Engine) Render(name string, b Bindings) []byte {
	raw, err := fs.ReadFile(e.fsys, name)
	if err != nil {
		return fallback(name)
	}

	content := string(raw)
	for key, value := range b {
		content = strings.ReplaceAll(content, "{"+key+"}", value)
	}
	return []byte(content)
}

func fallback(name string) []byte {
	return fmt.Appendf(nil, "# %s\n\nTODO: configure this file\n", name)
}

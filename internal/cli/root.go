// Package cli wires the ctxkit subcommands. Handler errors surface here,
// once: cobra prints them to stderr and main exits non-zero.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ctxkit/ctxkit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "ctxkit",
	Short: "ctxkit: agent context scaffolding and skill manifest tooling",
	Long: `ctxkit scaffolds a project's AI-agent context directory and keeps the
skill manifest in sync with the skill directories on disk.

Typical flow:
  ctxkit init my-app --full   Scaffold .context/ with the full file set
  ctxkit sync                 Rebuild the skill manifest from disk
  ctxkit list                 Show installed skills`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("ctxkit %s\n", version.GetVersion()))
}

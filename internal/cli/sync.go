package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ctxkit/ctxkit/internal/defs"
	"github.com/ctxkit/ctxkit/internal/manifest"
	"github.com/ctxkit/ctxkit/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the skill manifest from disk",
	Long: `Rebuild the skill manifest from the skill directories on disk.

Each immediate subdirectory of ` + defs.ContextDir + `/` + defs.SkillsSubdir + ` holding a ` + defs.SkillFileMD + `
contributes one manifest record; directories without one are skipped.
The manifest is fully replaced on every run, except that each record
keeps the source of its previous entry.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

// runSync executes the manifest synchronization workflow.
func runSync(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	out := cmd.OutOrStdout()
	skillsRoot := filepath.Join(cwd, defs.ContextDir, defs.SkillsSubdir)

	spin := ui.NewSpinner("Scanning skill directories...", out)
	m, report, err := syncOnce(skillsRoot)
	spin.Stop()

	if err != nil {
		if errors.Is(err, manifest.ErrSkillsRootMissing) {
			return fmt.Errorf("skills directory not found at %s: run %q first",
				filepath.Join(defs.ContextDir, defs.SkillsSubdir), "ctxkit init")
		}
		return err
	}

	for _, w := range report.Warnings {
		_, _ = fmt.Fprintln(out, cliWarn.Render("Warning: "+w))
	}
	for _, name := range report.Synced {
		_, _ = fmt.Fprintf(out, "  %-8s %s\n", "synced", name)
	}
	for _, name := range report.Skipped {
		_, _ = fmt.Fprintf(out, "  %-8s %s %s\n", "skipped", name, cliMuted.Render("(no "+defs.SkillFileMD+")"))
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Skills", fmt.Sprintf("%d", len(m.Skills))},
			{"Skipped", fmt.Sprintf("%d", len(report.Skipped))},
		}),
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Manifest synchronized", details...))
	return nil
}

// syncOnce runs one synchronization pass against skillsRoot.
func syncOnce(skillsRoot string) (*manifest.Manifest, *manifest.Report, error) {
	return manifest.NewSynchronizer(skillsRoot, nil).Sync()
}

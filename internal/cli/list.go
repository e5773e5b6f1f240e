package cli

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ctxkit/ctxkit/internal/config"
	"github.com/ctxkit/ctxkit/internal/defs"
	"github.com/ctxkit/ctxkit/internal/manifest"
)

var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "List installed skills from the manifest",
	Long:         `Read the skill manifest and print one line per installed skill. Read-only.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList prints the current manifest without touching the filesystem
// beyond reading it.
func runList(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	out := cmd.OutOrStdout()
	cfg := config.Load(cwd, nil)
	_, _ = fmt.Fprintf(out, "%s %s\n\n", cliPrimary.Render(cfg.Project.Name), cliMuted.Render("("+cfg.Project.Mode+")"))

	skillsRoot := filepath.Join(cwd, defs.ContextDir, defs.SkillsSubdir)
	m, err := manifest.Load(manifest.PathIn(skillsRoot))
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	if len(m.Skills) == 0 {
		_, _ = fmt.Fprintln(out, "No skills installed.")
		_, _ = fmt.Fprintln(out, cliMuted.Render(
			"Add a directory with a "+defs.SkillFileMD+" under "+
				filepath.Join(defs.ContextDir, defs.SkillsSubdir)+" and run \"ctxkit sync\"."))
		return nil
	}

	names := slices.Sorted(maps.Keys(m.Skills))
	for _, name := range names {
		rec := m.Skills[name]
		_, _ = fmt.Fprintf(out, "  %s %s %s\n    %s\n",
			cliSuccess.Render(name),
			cliMuted.Render("v"+rec.Version),
			cliMuted.Render("["+string(rec.Source)+"]"),
			rec.Description,
		)
	}
	_, _ = fmt.Fprintf(out, "\n%d skill(s) installed.\n", len(m.Skills))
	return nil
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ctxkit/ctxkit/internal/defs"
	"github.com/ctxkit/ctxkit/internal/frontmatter"
)

var showCmd = &cobra.Command{
	Use:          "show <skill-name>",
	Short:        "Print a skill's instructions",
	Long:         `Print the body of a skill's definition file, rendered as markdown on a terminal.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// runShow prints the instructional body of one skill definition,
// stripping the frontmatter block.
func runShow(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	name := args[0]
	path := filepath.Join(cwd, defs.ContextDir, defs.SkillsSubdir, name, defs.SkillFileMD)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("skill %q not found: no %s", name, filepath.Join(defs.ContextDir, defs.SkillsSubdir, name, defs.SkillFileMD))
		}
		return fmt.Errorf("read skill %q: %w", name, err)
	}

	body := frontmatter.Body(string(raw))
	out := cmd.OutOrStdout()

	if isatty.IsTerminal(os.Stdout.Fd()) {
		rendered, err := glamour.Render(body, "auto")
		if err == nil {
			_, _ = fmt.Fprint(out, rendered)
			return nil
		}
		// Fall through to the plain body on render failure.
	}

	_, _ = fmt.Fprintln(out, body)
	return nil
}

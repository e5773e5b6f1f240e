package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ctxkit/ctxkit/internal/scaffold"
	"github.com/ctxkit/ctxkit/internal/templates"
)

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Scaffold the agent context directory",
	Long: `Scaffold the agent context directory in the current working directory.

Without a project name on a terminal, an interactive prompt asks for one;
otherwise the directory name is used. Existing files are never overwritten,
so init can be re-run at any time to complete a partial tree.

Examples:
  ctxkit init acme            Scaffold the lite file set for project "acme"
  ctxkit init acme --full     Add architecture files, specs archive, CI stubs,
                              and a fresh skill manifest`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("full", false, "Create the full file set (architecture, specs archive, CI stubs, manifest)")
	initCmd.Flags().Bool("non-interactive", false, "Skip the interactive prompt; derive defaults")
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// runInit executes the scaffolding workflow.
func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	full := getBoolFlag(cmd, "full")
	nonInteractive := getBoolFlag(cmd, "non-interactive")
	out := cmd.OutOrStdout()

	projectName := ""
	if len(args) > 0 {
		projectName = args[0]
	}

	if projectName == "" {
		defaultName := filepath.Base(cwd)
		if !nonInteractive && isatty.IsTerminal(os.Stdin.Fd()) {
			result, err := runInitWizard(defaultName)
			if err != nil {
				if errors.Is(err, ErrCancelled) {
					_, _ = fmt.Fprintln(out, "Initialization cancelled.")
					return nil
				}
				return err
			}
			projectName = result.ProjectName
			full = full || result.Full
		} else {
			projectName = defaultName
		}
	}

	mode := scaffold.ModeLite
	if full {
		mode = scaffold.ModeFull
	}

	_, _ = fmt.Fprintf(out, "Initializing %s (%s mode)\n", cliPrimary.Render(projectName), mode)

	s := scaffold.New(templates.NewEngine(), scaffold.NewConsoleReporter(out), nil)
	result, err := s.Scaffold(scaffold.Options{
		ProjectRoot: cwd,
		ProjectName: projectName,
		Mode:        mode,
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Directories", fmt.Sprintf("%d ensured", len(result.CreatedDirs))},
			{"Files", fmt.Sprintf("%d created, %d skipped", len(result.CreatedFiles), len(result.SkippedFiles))},
		}),
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Context directory initialized", details...))
	return nil
}

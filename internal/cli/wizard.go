package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrCancelled indicates the user aborted the interactive prompt.
var ErrCancelled = errors.New("cancelled")

// wizardResult holds the answers from the interactive init prompt.
type wizardResult struct {
	ProjectName string
	Full        bool
}

// runInitWizard prompts for a project name and init mode. It runs only
// when init is invoked on a terminal without a positional project name.
func runInitWizard(defaultName string) (*wizardResult, error) {
	name := defaultName
	mode := "lite"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("project name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Init mode").
				Options(
					huh.NewOption("lite - entry point and core context files", "lite"),
					huh.NewOption("full - adds architecture, specs archive, and CI stubs", "full"),
				).
				Value(&mode),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	return &wizardResult{ProjectName: name, Full: mode == "full"}, nil
}

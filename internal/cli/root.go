package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/elenavoss/advisor/internal/questionnaire"
	"github.com/elenavoss/advisor/internal/service"
)

// App holds everything the CLI commands need.
type App struct {
	Advisor      *service.AdvisorService
	EngineConfig questionnaire.Config

	// Out defaults to stdout; tests replace it.
	Out io.Writer

	// IsInteractive reports whether stdin is a terminal; the questionnaire
	// refuses to run without one.
	IsInteractive func() bool
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

// NewRootCmd creates the top-level "advisor" command and registers all
// subcommands against the provided App. Running it bare starts the
// questionnaire.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "advisor",
		Short: "Guided questionnaire for building skincare lesson programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(app)
		},
	}

	root.AddCommand(
		newRunCmd(app),
		newHistoryCmd(app),
		newShowCmd(app),
		newForgetCmd(app),
	)

	return root
}

package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/elenavoss/advisor/internal/cli/formatter"
	"github.com/elenavoss/advisor/internal/service"
)

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Walk through the questionnaire and generate a blueprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(app)
		},
	}
}

func runSession(app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return errors.New("the questionnaire needs an interactive terminal")
	}

	p := tea.NewProgram(newSessionModel(app))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running questionnaire: %w", err)
	}

	m, ok := final.(*sessionModel)
	if !ok {
		return nil
	}
	if m.cancelled {
		fmt.Fprintln(app.out(), formatter.Dim("Cancelled."))
		return nil
	}
	if m.err != nil && !errors.Is(m.err, service.ErrGenerationFailed) {
		if m.bp == nil {
			return m.err
		}
		fmt.Fprintln(app.out(), formatter.StyleYellow.Render(fmt.Sprintf("Warning: %v", m.err)))
	}
	if m.bp == nil {
		return m.err
	}

	if m.err != nil && errors.Is(m.err, service.ErrGenerationFailed) {
		fmt.Fprintln(app.out(), formatter.StyleYellow.Render(
			"Creative generation was unavailable; showing rule-based recommendations only."))
		fmt.Fprintln(app.out())
	}
	fmt.Fprintln(app.out(), formatter.FormatBlueprint(m.bp))
	return nil
}

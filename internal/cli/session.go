package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/elenavoss/advisor/internal/cli/formatter"
	"github.com/elenavoss/advisor/internal/domain"
	"github.com/elenavoss/advisor/internal/questionnaire"
	"github.com/elenavoss/advisor/internal/service"
)

type sessionPhase int

const (
	phaseAsking sessionPhase = iota
	phaseGenerating
	phaseFailed
	phaseDone
)

// blueprintMsg carries the generation result back into the session loop.
type blueprintMsg struct {
	bp  *domain.Blueprint
	err error
}

// sessionModel drives one questionnaire run: it shows one huh form per
// active stage, feeds answers to the engine, and once the engine reaches its
// terminal stage kicks off generation behind a spinner.
type sessionModel struct {
	app *App
	eng *questionnaire.Engine

	phase     sessionPhase
	stage     domain.StageID
	form      *huh.Form
	vals      *stageValues
	spin      spinner.Model
	bp        *domain.Blueprint
	err       error
	cancelled bool
}

func newSessionModel(app *App) *sessionModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)

	m := &sessionModel{
		app:  app,
		eng:  questionnaire.New(app.EngineConfig),
		spin: sp,
	}
	m.loadStage()
	return m
}

// loadStage builds the form for the engine's current stage. Returns false
// when the questionnaire is already complete.
func (m *sessionModel) loadStage() bool {
	m.stage = m.eng.CurrentStage()
	spec, ok := questionnaire.StageSpec(m.stage)
	if !ok {
		return false
	}
	m.vals = newStageValues()
	m.form = buildStageForm(spec, m.vals)
	m.phase = phaseAsking
	return true
}

func (m *sessionModel) Init() tea.Cmd {
	if m.form == nil {
		return m.startGeneration()
	}
	return m.form.Init()
}

func (m *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseAsking:
		return m.updateAsking(msg)
	case phaseGenerating:
		return m.updateGenerating(msg)
	case phaseFailed:
		return m.updateFailed(msg)
	}
	return m, tea.Quit
}

func (m *sessionModel) updateAsking(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.cancelled = true
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if err := m.submitStage(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	if m.loadStage() {
		return m, m.form.Init()
	}
	return m, m.startGeneration()
}

// submitStage hands every answer of the finished form to the engine. The
// form has already validated inputs, so an engine rejection here is a bug
// worth surfacing rather than re-prompting for.
func (m *sessionModel) submitStage() error {
	spec, _ := questionnaire.StageSpec(m.stage)
	for _, f := range spec.Fields {
		if err := m.eng.SubmitAnswer(m.stage, f, m.vals.answerValue(f)); err != nil {
			return fmt.Errorf("recording %s: %w", domain.FieldLabels[f], err)
		}
	}
	return nil
}

func (m *sessionModel) startGeneration() tea.Cmd {
	m.phase = phaseGenerating
	app, eng := m.app, m.eng
	generate := func() tea.Msg {
		bp, err := app.Advisor.GenerateBlueprint(context.Background(), eng)
		return blueprintMsg{bp: bp, err: err}
	}
	return tea.Batch(m.spin.Tick, generate)
}

func (m *sessionModel) updateGenerating(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case blueprintMsg:
		m.bp = msg.bp
		m.err = msg.err
		if msg.err != nil && errors.Is(msg.err, service.ErrGenerationFailed) {
			m.phase = phaseFailed
			return m, nil
		}
		m.phase = phaseDone
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *sessionModel) updateFailed(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "r":
		m.err = nil
		return m, m.startGeneration()
	case "enter", "q", "esc":
		m.phase = phaseDone
		return m, tea.Quit
	}
	return m, nil
}

func (m *sessionModel) View() string {
	switch m.phase {
	case phaseAsking:
		spec, _ := questionnaire.StageSpec(m.stage)
		return formatter.Header(spec.Title) + "\n\n" + m.form.View()
	case phaseGenerating:
		return fmt.Sprintf("\n  %s %s\n", m.spin.View(),
			formatter.Dim("Generating your creative content..."))
	case phaseFailed:
		return fmt.Sprintf("\n  %s\n\n  %s\n",
			formatter.StyleRed.Render("Creative generation failed. Your recommendations are ready anyway."),
			formatter.Dim("press r to retry, enter to continue with recommendations only"))
	}
	return ""
}

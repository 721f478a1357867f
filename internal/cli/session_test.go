package cli

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elenavoss/advisor/internal/domain"
	"github.com/elenavoss/advisor/internal/service"
	"github.com/elenavoss/advisor/internal/testutil"
)

func TestSessionModel_StartsAtProfile(t *testing.T) {
	app, _, _ := newTestApp(t)
	m := newSessionModel(app)

	assert.Equal(t, phaseAsking, m.phase)
	assert.Equal(t, domain.StageProfile, m.stage)
	require.NotNil(t, m.form)
}

func TestSessionModel_GenerationSuccessQuits(t *testing.T) {
	app, _, _ := newTestApp(t)
	m := newSessionModel(app)
	m.phase = phaseGenerating

	bp := testutil.SampleBlueprint("bp-1")
	model, cmd := m.Update(blueprintMsg{bp: bp})
	m = model.(*sessionModel)

	assert.Equal(t, phaseDone, m.phase)
	assert.Equal(t, bp, m.bp)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSessionModel_GenerationFailureOffersRetry(t *testing.T) {
	app, _, _ := newTestApp(t)
	m := newSessionModel(app)
	m.phase = phaseGenerating

	bp := testutil.SampleBlueprint("bp-1")
	bp.Generated = ""
	model, _ := m.Update(blueprintMsg{bp: bp, err: fmt.Errorf("%w: boom", service.ErrGenerationFailed)})
	m = model.(*sessionModel)

	assert.Equal(t, phaseFailed, m.phase)
	assert.Contains(t, m.View(), "retry")

	// Accepting the partial result quits with the blueprint intact.
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(*sessionModel)
	assert.Equal(t, phaseDone, m.phase)
	assert.NotNil(t, m.bp)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSessionModel_RetryRestartsGeneration(t *testing.T) {
	app, _, _ := newTestApp(t)
	m := newSessionModel(app)
	m.phase = phaseFailed
	m.err = service.ErrGenerationFailed

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = model.(*sessionModel)

	assert.Equal(t, phaseGenerating, m.phase)
	assert.Nil(t, m.err)
	assert.NotNil(t, cmd)
}

func TestSessionModel_EscCancels(t *testing.T) {
	app, _, _ := newTestApp(t)
	m := newSessionModel(app)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(*sessionModel)

	assert.True(t, m.cancelled)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

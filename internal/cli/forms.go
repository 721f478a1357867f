package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/elenavoss/advisor/internal/cli/formatter"
	"github.com/elenavoss/advisor/internal/domain"
	"github.com/elenavoss/advisor/internal/questionnaire"
)

// advisorHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func advisorHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("please enter an answer")
	}
	return nil
}

// stageValues binds the form inputs of one stage. Text and select fields
// write into fields; the transformation deep dive writes into the triple.
type stageValues struct {
	fields map[domain.FieldKey]*string
	triple struct {
		pointA string
		pointB string
		method string
	}
}

func newStageValues() *stageValues {
	return &stageValues{fields: make(map[domain.FieldKey]*string)}
}

func (v *stageValues) bind(f domain.FieldKey) *string {
	s := new(string)
	v.fields[f] = s
	return s
}

// answerValue converts the bound input for one field into an answer.
func (v *stageValues) answerValue(f domain.FieldKey) domain.AnswerValue {
	if f == domain.FieldTransformation {
		return domain.AnswerValue{Triple: &domain.TransformationTriple{
			PointA:                 strings.TrimSpace(v.triple.pointA),
			PointB:                 strings.TrimSpace(v.triple.pointB),
			MethodToTransformation: strings.TrimSpace(v.triple.method),
		}}
	}
	return domain.AnswerValue{Text: strings.TrimSpace(*v.fields[f])}
}

// fieldPrompts adds a question to the enum and free-text fields; keys not
// listed fall back to their FieldLabels entry.
var fieldPrompts = map[domain.FieldKey]string{
	domain.FieldRole:           "What best describes your professional role?",
	domain.FieldMethod:         "What is your primary method of working with clients?",
	domain.FieldTimeCommitment: "How much time can your clients commit weekly?",
	domain.FieldClientProblem:  "What client problem do you want to solve?",
	domain.FieldExpertise:      "What is your core expertise?",
	domain.FieldGoal:           "What would you like to create?",
	domain.FieldCategory:       "What kind of lesson should it be?",
	domain.FieldEquipment:      "Which equipment will the lesson use?",
}

func fieldTitle(f domain.FieldKey) string {
	if p, ok := fieldPrompts[f]; ok {
		return p
	}
	return domain.FieldLabels[f]
}

// buildStageForm creates the huh form for one questionnaire stage, binding
// every input to vals.
func buildStageForm(stage questionnaire.Stage, vals *stageValues) *huh.Form {
	if len(stage.Fields) == 1 && stage.Fields[0] == domain.FieldTransformation {
		return buildTransformationForm(vals)
	}

	inputs := make([]huh.Field, 0, len(stage.Fields))
	for _, f := range stage.Fields {
		target := vals.bind(f)
		if opts, ok := stage.Options[f]; ok {
			inputs = append(inputs, huh.NewSelect[string]().
				Title(fieldTitle(f)).
				Options(fieldOptions(f, opts)...).
				Value(target))
			continue
		}
		inputs = append(inputs, huh.NewInput().
			Title(fieldTitle(f)).
			Value(target).
			Validate(validateNonEmpty))
	}

	return huh.NewForm(huh.NewGroup(inputs...)).
		WithTheme(advisorHuhTheme()).
		WithShowHelp(false)
}

// buildTransformationForm collects the before/after/bridge triple in one group.
func buildTransformationForm(vals *stageValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Point A: where is your client today?").
				Placeholder("Puffy, tired face every morning").
				Value(&vals.triple.pointA).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("Point B: where will your client be?").
				Placeholder("Sculpted, rested look without salon visits").
				Value(&vals.triple.pointB).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("Method: how does your approach get them there?").
				Placeholder("A daily self-massage and guasha routine").
				Value(&vals.triple.method).
				Validate(validateNonEmpty),
		),
	).WithTheme(advisorHuhTheme()).WithShowHelp(false)
}

// fieldOptions builds the select options; goal values show their labels but
// submit the canonical enum strings.
func fieldOptions(f domain.FieldKey, opts []string) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(opts))
	for _, o := range opts {
		label := o
		if f == domain.FieldGoal {
			label = domain.GoalLabels[domain.Goal(o)]
		}
		out = append(out, huh.NewOption(label, o))
	}
	return out
}

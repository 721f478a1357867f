package questionnaire

import (
	"fmt"
	"strings"

	"github.com/elenavoss/advisor/internal/domain"
)

// maxWalkSteps bounds the transition walk. The longest real path is
// Profile → GoalSetting → Category → Equipment → DeepDive → Ready.
const maxWalkSteps = 16

// Engine is the branching questionnaire state machine. Given the answers
// recorded so far it determines the next stage to present, validates
// submitted answers against each stage's declared fields, and gates
// generation on path completeness. It is not safe for concurrent use.
type Engine struct {
	cfg     Config
	answers *domain.AnswerStore
}

// New creates an engine with an empty answer store.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg, answers: domain.NewAnswerStore()}
}

// Answers returns the underlying answer store. Callers must treat it as
// read-only; all mutation goes through SubmitAnswer.
func (e *Engine) Answers() *domain.AnswerStore {
	return e.answers
}

// Goal returns the effective goal: the explicit GoalSetting answer when one
// was collected, otherwise the configured default applied when GoalSetting
// is skipped.
func (e *Engine) Goal() domain.Goal {
	if e.answers.Has(domain.FieldGoal) {
		return domain.Goal(e.answers.Text(domain.FieldGoal))
	}
	return e.cfg.DefaultGoal
}

// CurrentStage returns the next stage to present given the current answers.
// It is idempotent: calling it repeatedly without submitting answers returns
// the same stage. When every field on the reachable path is answered it
// returns StageReadyForGeneration.
func (e *Engine) CurrentStage() domain.StageID {
	cur := domain.StageProfile
	for i := 0; i < maxWalkSteps; i++ {
		if cur == domain.StageReadyForGeneration {
			return cur
		}
		st, ok := stages[cur]
		if !ok {
			return domain.StageReadyForGeneration
		}
		if !e.stageComplete(st) {
			return cur
		}
		cur = e.next(cur)
	}
	return cur
}

// Complete reports whether every field required by the path actually taken
// has been answered.
func (e *Engine) Complete() bool {
	return e.CurrentStage() == domain.StageReadyForGeneration
}

// MissingFields returns the unanswered fields of the stage the walk is
// stuck on, or nil when the questionnaire is complete.
func (e *Engine) MissingFields() []domain.FieldKey {
	cur := e.CurrentStage()
	if cur == domain.StageReadyForGeneration {
		return nil
	}
	st := stages[cur]
	var missing []domain.FieldKey
	for _, f := range st.Fields {
		if !e.fieldComplete(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// SubmitAnswer validates and records a value for one field of a stage.
// The value must belong to the stage's declared option set (enum fields),
// be non-empty (free text), or be a complete triple (transformation).
// On any violation the store is left unchanged and the error wraps
// domain.ErrInvalidAnswer, so the same stage is simply re-prompted.
func (e *Engine) SubmitAnswer(stageID domain.StageID, field domain.FieldKey, v domain.AnswerValue) error {
	st, ok := stages[stageID]
	if !ok {
		return fmt.Errorf("unknown stage %q: %w", stageID, domain.ErrInvalidAnswer)
	}
	if !stageHasField(st, field) {
		return fmt.Errorf("stage %s does not collect %s: %w", stageID, field, domain.ErrInvalidAnswer)
	}
	if stageID != e.CurrentStage() && !e.stageComplete(st) {
		return fmt.Errorf("stage %s is not active: %w", stageID, domain.ErrInvalidAnswer)
	}

	if field == domain.FieldTransformation {
		if v.Triple == nil || !v.Triple.Complete() {
			return fmt.Errorf("transformation requires point A, point B, and method: %w", domain.ErrInvalidAnswer)
		}
		e.answers.Set(field, domain.AnswerValue{Triple: v.Triple})
		return nil
	}

	text := strings.TrimSpace(v.Text)
	if text == "" {
		return fmt.Errorf("%s is required: %w", field, domain.ErrInvalidAnswer)
	}
	if opts, enum := st.Options[field]; enum && !contains(opts, text) {
		return fmt.Errorf("%q is not a valid choice for %s: %w", text, field, domain.ErrInvalidAnswer)
	}

	e.answers.Set(field, domain.AnswerValue{Text: text})
	return nil
}

// goalEntryStage is the first stage of the effective goal's path. It is the
// transition target both after GoalSetting picks Combo and after Profile
// when GoalSetting is skipped entirely.
func (e *Engine) goalEntryStage() domain.StageID {
	switch e.Goal() {
	case domain.GoalSingleLesson:
		return domain.StageCategorySelection
	case domain.GoalCombo:
		if e.cfg.ComboCategoryFirst {
			return domain.StageCategorySelection
		}
		return domain.StageTransformationDeepDive
	default:
		return domain.StageTransformationDeepDive
	}
}

func (e *Engine) next(cur domain.StageID) domain.StageID {
	for _, t := range transitions {
		if t.from != cur {
			continue
		}
		if t.cond == nil || t.cond(e) {
			return t.to(e)
		}
	}
	return domain.StageReadyForGeneration
}

func (e *Engine) stageComplete(st Stage) bool {
	for _, f := range st.Fields {
		if !e.fieldComplete(f) {
			return false
		}
	}
	return true
}

func (e *Engine) fieldComplete(f domain.FieldKey) bool {
	v, ok := e.answers.Get(f)
	if !ok {
		return false
	}
	if f == domain.FieldTransformation {
		return v.Triple != nil && v.Triple.Complete()
	}
	return strings.TrimSpace(v.Text) != ""
}

func stageHasField(st Stage, field domain.FieldKey) bool {
	for _, f := range st.Fields {
		if f == field {
			return true
		}
	}
	return false
}

func contains(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}

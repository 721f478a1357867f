package prompt

import (
	"strings"
	"testing"

	"github.com/elenavoss/advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseAnswers() *domain.AnswerStore {
	s := domain.NewAnswerStore()
	s.Set(domain.FieldRole, domain.AnswerValue{Text: "Esthetician"})
	s.Set(domain.FieldMethod, domain.AnswerValue{Text: "Hands-on techniques"})
	s.Set(domain.FieldTimeCommitment, domain.AnswerValue{Text: "3-4 hours"})
	s.Set(domain.FieldClientProblem, domain.AnswerValue{Text: "Persistent acne"})
	s.Set(domain.FieldExpertise, domain.AnswerValue{Text: "Holistic facial massage"})
	return s
}

func withTransformation(s *domain.AnswerStore) *domain.AnswerStore {
	s.Set(domain.FieldTransformation, domain.AnswerValue{Triple: &domain.TransformationTriple{
		PointA:                 "Inflamed, breakout-prone skin",
		PointB:                 "Calm, clear skin",
		MethodToTransformation: "Daily at-home massage and routine resets",
	}})
	return s
}

func TestSynthesize_SingleLessonEmbedsCategoryAndIdeasInstruction(t *testing.T) {
	answers := baseAnswers()
	answers.Set(domain.FieldCategory, domain.AnswerValue{Text: "Hands-on (no equipment)"})

	req, err := Synthesize(answers, domain.GoalSingleLesson)
	require.NoError(t, err)

	assert.Contains(t, req.User, `"Hands-on (no equipment)"`)
	assert.Contains(t, req.User, "4-5 lesson ideas")
	assert.Contains(t, req.User, "Self-Care Title")
	assert.Contains(t, req.User, "Lesson Concept")
	assert.NotContains(t, req.User, "at-home tool")
}

func TestSynthesize_EquipmentIsEmbeddedWhenCollected(t *testing.T) {
	answers := baseAnswers()
	answers.Set(domain.FieldCategory, domain.AnswerValue{Text: domain.CategoryWithEquipment})
	answers.Set(domain.FieldEquipment, domain.AnswerValue{Text: "Guasha"})

	req, err := Synthesize(answers, domain.GoalSingleLesson)
	require.NoError(t, err)
	assert.Contains(t, req.User, "Guasha")
}

func TestSynthesize_EquipmentCategoryWithoutEquipmentFails(t *testing.T) {
	answers := baseAnswers()
	answers.Set(domain.FieldCategory, domain.AnswerValue{Text: domain.CategoryWithEquipment})

	_, err := Synthesize(answers, domain.GoalSingleLesson)
	assert.ErrorIs(t, err, domain.ErrIncompleteContext)
}

func TestSynthesize_FullProgramEmbedsTransformation(t *testing.T) {
	answers := withTransformation(baseAnswers())

	req, err := Synthesize(answers, domain.GoalFullProgram)
	require.NoError(t, err)

	assert.Contains(t, req.User, "Inflamed, breakout-prone skin")
	assert.Contains(t, req.User, "Calm, clear skin")
	assert.Contains(t, req.User, "12-Lesson Monthly Program")
	assert.Contains(t, req.User, "4-week outline")
}

func TestSynthesize_FullProgramWithoutTransformationFails(t *testing.T) {
	_, err := Synthesize(baseAnswers(), domain.GoalFullProgram)
	assert.ErrorIs(t, err, domain.ErrIncompleteContext)
}

func TestSynthesize_MissingProfileFieldFails(t *testing.T) {
	answers := withTransformation(baseAnswers())
	answers.Set(domain.FieldExpertise, domain.AnswerValue{Text: "   "})

	_, err := Synthesize(answers, domain.GoalFullProgram)
	assert.ErrorIs(t, err, domain.ErrIncompleteContext)
}

func TestSynthesize_SelfCareFramingPresentForEveryGoal(t *testing.T) {
	answers := withTransformation(baseAnswers())
	answers.Set(domain.FieldCategory, domain.AnswerValue{Text: "Educational"})

	for _, goal := range []domain.Goal{domain.GoalSingleLesson, domain.GoalFullProgram, domain.GoalCombo} {
		t.Run(string(goal), func(t *testing.T) {
			req, err := Synthesize(answers, goal)
			require.NoError(t, err)
			assert.Contains(t, req.User, SelfCareFraming)
			assert.Contains(t, req.System, SelfCareFraming)
		})
	}
}

func TestSynthesize_ComboOrdersSingleLessonFirst(t *testing.T) {
	answers := withTransformation(baseAnswers())
	answers.Set(domain.FieldCategory, domain.AnswerValue{Text: "Educational"})

	req, err := Synthesize(answers, domain.GoalCombo)
	require.NoError(t, err)

	lessonIdx := strings.Index(req.User, "Single Additional Lesson in")
	programIdx := strings.Index(req.User, "Full 12-Lesson Monthly Program (4 weeks")
	require.GreaterOrEqual(t, lessonIdx, 0)
	require.GreaterOrEqual(t, programIdx, 0)
	assert.Less(t, lessonIdx, programIdx)
	assert.Contains(t, req.User, "Your First Task:")
	assert.Contains(t, req.User, "Your Second Task:")
}

func TestSynthesize_IsDeterministic(t *testing.T) {
	answers := withTransformation(baseAnswers())

	first, err := Synthesize(answers, domain.GoalFullProgram)
	require.NoError(t, err)
	second, err := Synthesize(answers, domain.GoalFullProgram)
	require.NoError(t, err)

	assert.Equal(t, first.User, second.User)
}

func TestSynthesize_NoUnfilledSlotsRemain(t *testing.T) {
	answers := withTransformation(baseAnswers())
	answers.Set(domain.FieldCategory, domain.AnswerValue{Text: "Educational"})

	req, err := Synthesize(answers, domain.GoalCombo)
	require.NoError(t, err)

	for _, slot := range []string{"%ROLE%", "%METHOD%", "%TIME_COMMITMENT%", "%CLIENT_PROBLEM%",
		"%EXPERTISE%", "%CATEGORY%", "%EQUIPMENT%", "%EQUIPMENT_LINE%", "%TASK_LABEL%",
		"%POINT_A%", "%POINT_B%", "%METHOD_TO_TRANSFORMATION%"} {
		assert.NotContains(t, req.User, slot)
	}
}

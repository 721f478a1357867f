package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elenavoss/advisor/internal/domain"
	"github.com/elenavoss/advisor/internal/llm"
	"github.com/elenavoss/advisor/internal/questionnaire"
	"github.com/elenavoss/advisor/internal/repository"
	"github.com/elenavoss/advisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedEngine(t *testing.T) *questionnaire.Engine {
	t.Helper()
	eng := questionnaire.New(questionnaire.DefaultEngineConfig())
	for key, val := range map[domain.FieldKey]string{
		domain.FieldRole:           "Facialist",
		domain.FieldMethod:         "Hands-on techniques",
		domain.FieldTimeCommitment: "3-4 hours",
		domain.FieldClientProblem:  "Puffy morning skin",
		domain.FieldExpertise:      "Lymphatic massage",
	} {
		require.NoError(t, eng.SubmitAnswer(domain.StageProfile, key, domain.AnswerValue{Text: val}))
	}
	require.NoError(t, eng.SubmitAnswer(domain.StageGoalSetting, domain.FieldGoal,
		domain.AnswerValue{Text: string(domain.GoalFullProgram)}))
	require.NoError(t, eng.SubmitAnswer(domain.StageTransformationDeepDive, domain.FieldTransformation,
		domain.AnswerValue{Triple: &domain.TransformationTriple{
			PointA:                 "Puffy, tired face",
			PointB:                 "Sculpted glow",
			MethodToTransformation: "Daily guasha routine",
		}}))
	require.True(t, eng.Complete())
	return eng
}

func newService(t *testing.T, client llm.Client) *AdvisorService {
	t.Helper()
	repo := repository.NewSQLiteBlueprintRepo(testutil.NewTestDB(t))
	svc := NewAdvisorService(testutil.SampleTables(), client, repo)
	svc.now = func() time.Time { return time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "fixed-id" }
	return svc
}

func TestGenerateBlueprint_Success(t *testing.T) {
	mock := &llm.MockClient{Text: "## Program Outline\nWeek 1 ..."}
	svc := newService(t, mock)

	bp, err := svc.GenerateBlueprint(context.Background(), completedEngine(t))
	require.NoError(t, err)
	require.NotNil(t, bp)

	assert.Equal(t, "fixed-id", bp.ID)
	assert.Equal(t, domain.GoalFullProgram, bp.Goal)
	assert.Equal(t, "## Program Outline\nWeek 1 ...", bp.Generated)
	require.NotNil(t, bp.Recommendation.Length)
	assert.Contains(t, *bp.Recommendation.Length, "Full 12-Lesson Monthly Program")
	require.NotNil(t, bp.Recommendation.Problem)
	assert.Equal(t, "Depuff & Glow", bp.Recommendation.Problem.RecommendedProgram)
	assert.Equal(t, 1, mock.CallCount())
	assert.NotEmpty(t, mock.Calls[0].System)
	assert.Contains(t, mock.Calls[0].User, "Daily guasha routine")
}

func TestGenerateBlueprint_ArchivesOnSuccess(t *testing.T) {
	svc := newService(t, &llm.MockClient{Text: "generated"})

	_, err := svc.GenerateBlueprint(context.Background(), completedEngine(t))
	require.NoError(t, err)

	stored, err := svc.Show(context.Background(), "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "generated", stored.Generated)
}

func TestGenerateBlueprint_PartialOnGenerationFailure(t *testing.T) {
	mock := &llm.MockClient{Err: llm.ErrServiceUnavailable}
	svc := newService(t, mock)

	bp, err := svc.GenerateBlueprint(context.Background(), completedEngine(t))
	require.ErrorIs(t, err, ErrGenerationFailed)
	require.NotNil(t, bp)

	assert.Empty(t, bp.Generated)
	require.NotNil(t, bp.Recommendation.Length)

	// A failed run is not archived; a retry should not find a stale copy.
	_, showErr := svc.Show(context.Background(), "fixed-id")
	assert.ErrorIs(t, showErr, repository.ErrNotFound)
}

func TestGenerateBlueprint_IncompleteQuestionnaire(t *testing.T) {
	svc := newService(t, &llm.MockClient{})
	eng := questionnaire.New(questionnaire.DefaultEngineConfig())

	bp, err := svc.GenerateBlueprint(context.Background(), eng)
	assert.Nil(t, bp)
	require.ErrorIs(t, err, domain.ErrIncompleteContext)
	assert.Contains(t, err.Error(), domain.FieldLabels[domain.FieldRole])
}

func TestGenerateBlueprint_RetryAfterFailureSucceeds(t *testing.T) {
	mock := &llm.MockClient{Err: errors.New("boom")}
	svc := newService(t, mock)
	eng := completedEngine(t)

	_, err := svc.GenerateBlueprint(context.Background(), eng)
	require.ErrorIs(t, err, ErrGenerationFailed)

	mock.Err = nil
	mock.Text = "second attempt"
	bp, err := svc.GenerateBlueprint(context.Background(), eng)
	require.NoError(t, err)
	assert.Equal(t, "second attempt", bp.Generated)
	assert.Equal(t, 2, mock.CallCount())
}

func TestHistory_DefaultsLimit(t *testing.T) {
	svc := newService(t, &llm.MockClient{Text: "x"})
	_, err := svc.GenerateBlueprint(context.Background(), completedEngine(t))
	require.NoError(t, err)

	bps, err := svc.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, bps, 1)
}

func TestForget(t *testing.T) {
	svc := newService(t, &llm.MockClient{Text: "x"})
	_, err := svc.GenerateBlueprint(context.Background(), completedEngine(t))
	require.NoError(t, err)

	require.NoError(t, svc.Forget(context.Background(), "fixed-id"))
	_, err = svc.Show(context.Background(), "fixed-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

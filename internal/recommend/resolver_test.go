package recommend

import (
	"testing"

	"github.com/elenavoss/advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTables() *Tables {
	return &Tables{
		Lengths: map[string]string{
			"3-4 hours": "With 3-4 hours a week you can sustain a Full 12-Lesson Monthly Program.",
			"1-2 hours": "With 1-2 hours a week, start with a Single Additional Lesson.",
		},
		Ideas: map[string][]string{
			"Hands-on (no equipment)": {
				"Evening facial massage ritual",
				"Facial yoga for jawline tension",
				"Evening facial massage ritual", // duplicates are preserved
			},
			"Hands-on techniques": {
				"Weekly guasha routine",
				"Lymphatic drainage basics",
			},
		},
		Problems: []ProblemRule{
			{Keyword: "acne", RecommendedProgram: "Clear Skin Reset", TargetAudience: "Adults with persistent breakouts"},
			{Keyword: "aging", RecommendedProgram: "Ageless Glow", TargetAudience: "Clients 40+"},
		},
	}
}

func storeWith(values map[domain.FieldKey]string) *domain.AnswerStore {
	s := domain.NewAnswerStore()
	for _, k := range []domain.FieldKey{
		domain.FieldRole, domain.FieldMethod, domain.FieldTimeCommitment,
		domain.FieldClientProblem, domain.FieldExpertise,
		domain.FieldGoal, domain.FieldCategory, domain.FieldEquipment,
	} {
		if v, ok := values[k]; ok {
			s.Set(k, domain.AnswerValue{Text: v})
		}
	}
	return s
}

func TestResolve_LengthByExactTimeKey(t *testing.T) {
	answers := storeWith(map[domain.FieldKey]string{
		domain.FieldTimeCommitment: "3-4 hours",
	})

	rec := Resolve(testTables(), answers)
	require.NotNil(t, rec.Length)
	assert.Contains(t, *rec.Length, "12-Lesson")
}

func TestResolve_MissingTimeKeyIsNotAnError(t *testing.T) {
	answers := storeWith(map[domain.FieldKey]string{
		domain.FieldTimeCommitment: "8-10 hours",
	})

	rec := Resolve(testTables(), answers)
	assert.Nil(t, rec.Length)
	assert.Empty(t, rec.Ideas)
}

func TestResolve_IdeasByCategoryPreserveOrderAndDuplicates(t *testing.T) {
	answers := storeWith(map[domain.FieldKey]string{
		domain.FieldCategory: "Hands-on (no equipment)",
	})

	rec := Resolve(testTables(), answers)
	assert.Equal(t, []string{
		"Evening facial massage ritual",
		"Facial yoga for jawline tension",
		"Evening facial massage ritual",
	}, rec.Ideas)
}

func TestResolve_MethodFallbackWhenNoCategoryChosen(t *testing.T) {
	answers := storeWith(map[domain.FieldKey]string{
		domain.FieldMethod: "Hands-on techniques",
	})

	rec := Resolve(testTables(), answers)
	assert.Equal(t, []string{"Weekly guasha routine", "Lymphatic drainage basics"}, rec.Ideas)
}

func TestResolve_ProblemKeywordFirstMatchWins(t *testing.T) {
	answers := storeWith(map[domain.FieldKey]string{
		domain.FieldClientProblem: "Persistent ACNE plus early aging concerns",
	})

	rec := Resolve(testTables(), answers)
	require.NotNil(t, rec.Problem)
	assert.Equal(t, "Clear Skin Reset", rec.Problem.RecommendedProgram)
}

func TestResolve_IsPureAndIdempotent(t *testing.T) {
	tables := testTables()
	answers := storeWith(map[domain.FieldKey]string{
		domain.FieldTimeCommitment: "3-4 hours",
		domain.FieldCategory:       "Hands-on (no equipment)",
		domain.FieldClientProblem:  "stubborn acne",
	})
	snapshot := answers.Clone()

	first := Resolve(tables, answers)
	second := Resolve(tables, answers)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot.Keys(), answers.Keys())
	for _, k := range snapshot.Keys() {
		want, _ := snapshot.Get(k)
		got, _ := answers.Get(k)
		assert.Equal(t, want, got)
	}

	// Mutating the returned slice must not leak into the tables.
	first.Ideas[0] = "mutated"
	assert.Equal(t, "Evening facial massage ritual", tables.Ideas["Hands-on (no equipment)"][0])
}

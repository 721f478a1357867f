package testutil

import (
	"time"

	"github.com/elenavoss/advisor/internal/domain"
	"github.com/elenavoss/advisor/internal/recommend"
)

// CompletedAnswers returns an answer store that has walked the single-lesson
// path end to end, including equipment.
func CompletedAnswers() *domain.AnswerStore {
	s := domain.NewAnswerStore()
	s.Set(domain.FieldRole, domain.AnswerValue{Text: "Facialist"})
	s.Set(domain.FieldMethod, domain.AnswerValue{Text: "Hands-on techniques"})
	s.Set(domain.FieldTimeCommitment, domain.AnswerValue{Text: "1-2 hours"})
	s.Set(domain.FieldClientProblem, domain.AnswerValue{Text: "Dull, tired-looking skin"})
	s.Set(domain.FieldExpertise, domain.AnswerValue{Text: "Facial massage and lymphatic drainage"})
	s.Set(domain.FieldGoal, domain.AnswerValue{Text: string(domain.GoalSingleLesson)})
	s.Set(domain.FieldCategory, domain.AnswerValue{Text: "Hands-on (with equipment)"})
	s.Set(domain.FieldEquipment, domain.AnswerValue{Text: "Guasha"})
	return s
}

// FullProgramAnswers returns an answer store for the full-program path,
// including the transformation triple.
func FullProgramAnswers() *domain.AnswerStore {
	s := domain.NewAnswerStore()
	s.Set(domain.FieldRole, domain.AnswerValue{Text: "Massage therapist"})
	s.Set(domain.FieldMethod, domain.AnswerValue{Text: "Hands-on techniques"})
	s.Set(domain.FieldTimeCommitment, domain.AnswerValue{Text: "3-4 hours"})
	s.Set(domain.FieldClientProblem, domain.AnswerValue{Text: "Puffy face in the morning"})
	s.Set(domain.FieldExpertise, domain.AnswerValue{Text: "Sculpting face massage"})
	s.Set(domain.FieldGoal, domain.AnswerValue{Text: string(domain.GoalFullProgram)})
	s.Set(domain.FieldTransformation, domain.AnswerValue{Triple: &domain.TransformationTriple{
		PointA:                 "Puffy, tired face every morning",
		PointB:                 "Sculpted, rested look without salon visits",
		MethodToTransformation: "A daily self-massage and guasha routine",
	}})
	return s
}

// SampleTables returns small but realistic recommendation tables.
func SampleTables() *recommend.Tables {
	return &recommend.Tables{
		Lengths: map[string]string{
			"1-2 hours": "With 1-2 hours a week, short weekly lessons keep clients engaged without overwhelm.",
			"3-4 hours": "With 3-4 hours a week, a Full 12-Lesson Monthly Program fits comfortably.",
		},
		Ideas: map[string][]string{
			"Hands-on (no equipment)":   {"Morning lymphatic self-massage", "Evening face relaxation ritual"},
			"Hands-on (with equipment)": {"Guasha sculpting basics", "Roller routine for puffiness"},
			"Hands-on techniques":       {"Self-massage fundamentals"},
		},
		Problems: []recommend.ProblemRule{
			{Keyword: "puffy", RecommendedProgram: "Depuff & Glow", TargetAudience: "Clients who wake up puffy and rushed"},
			{Keyword: "dull", RecommendedProgram: "Radiance Reset", TargetAudience: "Clients with tired, lackluster skin"},
		},
	}
}

// SampleBlueprint returns a filled blueprint ready for archiving in tests.
func SampleBlueprint(id string) *domain.Blueprint {
	length := "With 3-4 hours a week, a Full 12-Lesson Monthly Program fits comfortably."
	return &domain.Blueprint{
		ID:        id,
		Goal:      domain.GoalSingleLesson,
		CreatedAt: time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
		Summary: []domain.SummaryLine{
			{Label: "Professional Role", Value: "Facialist"},
			{Label: "Lesson Category", Value: "Hands-on (with equipment)"},
		},
		Recommendation: domain.Recommendation{
			Length: &length,
			Ideas:  []string{"Guasha sculpting basics", "Roller routine for puffiness"},
			Problem: &domain.ProblemFocus{
				RecommendedProgram: "Depuff & Glow",
				TargetAudience:     "Clients who wake up puffy and rushed",
			},
		},
		Generated: "## Lesson Ideas\n1. Guasha for beginners",
		NextSteps: "Pick the lesson idea you like best.",
		Prompt:    "generate lesson ideas",
	}
}

package blueprint

import (
	"fmt"
	"strings"

	"github.com/elenavoss/advisor/internal/domain"
)

// LessonBlueprintBot is the fixed label of the downstream collaborator that
// turns a chosen lesson idea into a detailed lesson plan. Nothing is passed
// to it programmatically; the blueprint only points at it.
const LessonBlueprintBot = "Lesson Blueprint Bot"

// nextStepsText is appended only to single-lesson blueprints.
const nextStepsText = "Pick the lesson idea you like best and take it to the " +
	LessonBlueprintBot + " to turn it into a complete, ready-to-deliver lesson plan."

// Assemble composes the final blueprint from the resolved recommendations
// and the generated text. The generated block is consumed verbatim; an empty
// string (generation failed or skipped) simply omits the block so the
// rule-based content still stands on its own. No business logic lives here
// beyond ordering and conditional inclusion.
func Assemble(answers *domain.AnswerStore, goal domain.Goal, rec domain.Recommendation, generated, promptText string) *domain.Blueprint {
	bp := &domain.Blueprint{
		Goal:           goal,
		Summary:        summaryLines(answers),
		Recommendation: rec,
		Generated:      generated,
		Prompt:         promptText,
	}
	if goal == domain.GoalSingleLesson {
		bp.NextSteps = nextStepsText
	}
	return bp
}

// summaryOrder is the presentation order of the profile summary; only
// answered fields appear.
var summaryOrder = []domain.FieldKey{
	domain.FieldRole,
	domain.FieldMethod,
	domain.FieldTimeCommitment,
	domain.FieldClientProblem,
	domain.FieldExpertise,
	domain.FieldCategory,
	domain.FieldEquipment,
}

func summaryLines(answers *domain.AnswerStore) []domain.SummaryLine {
	var lines []domain.SummaryLine
	for _, key := range summaryOrder {
		if text := answers.Text(key); text != "" {
			lines = append(lines, domain.SummaryLine{Label: domain.FieldLabels[key], Value: text})
		}
	}
	if t := answers.Triple(domain.FieldTransformation); t != nil {
		lines = append(lines,
			domain.SummaryLine{Label: "Client Point A", Value: t.PointA},
			domain.SummaryLine{Label: "Client Point B", Value: t.PointB},
			domain.SummaryLine{Label: "Method to Transformation", Value: t.MethodToTransformation},
		)
	}
	return lines
}

// Render produces the blueprint as a plain Markdown document, in the fixed
// order: profile summary, recommendations, generated content, next steps.
func Render(bp *domain.Blueprint) string {
	var sb strings.Builder

	sb.WriteString("# Your Program Blueprint\n\n")
	sb.WriteString(fmt.Sprintf("Goal: %s\n\n", domain.GoalLabels[bp.Goal]))

	sb.WriteString("## Your Profile & Program Focus\n\n")
	for _, line := range bp.Summary {
		sb.WriteString(fmt.Sprintf("- **%s:** %s\n", line.Label, line.Value))
	}
	sb.WriteString("\n")

	sb.WriteString("## Key Recommendations\n\n")
	wrote := false
	if bp.Recommendation.Length != nil {
		sb.WriteString(fmt.Sprintf("%s\n\n", *bp.Recommendation.Length))
		wrote = true
	}
	if p := bp.Recommendation.Problem; p != nil {
		sb.WriteString(fmt.Sprintf("**Recommended Content Focus:** %s\n\n", p.RecommendedProgram))
		sb.WriteString(fmt.Sprintf("**Ideal Target Audience:** %s\n\n", p.TargetAudience))
		wrote = true
	}
	if len(bp.Recommendation.Ideas) > 0 {
		sb.WriteString("Content ideas to build on:\n\n")
		for _, idea := range bp.Recommendation.Ideas {
			sb.WriteString(fmt.Sprintf("- %s\n", idea))
		}
		sb.WriteString("\n")
		wrote = true
	}
	if !wrote {
		sb.WriteString("No rule-based recommendations matched your answers.\n\n")
	}

	if bp.Generated != "" {
		sb.WriteString("## Your Generated Creative Content\n\n")
		sb.WriteString(strings.TrimSpace(bp.Generated))
		sb.WriteString("\n\n")
	}

	if bp.NextSteps != "" {
		sb.WriteString("## What to Do Next\n\n")
		sb.WriteString(bp.NextSteps)
		sb.WriteString("\n")
	}

	return sb.String()
}

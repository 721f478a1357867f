package formatter

import (
	"fmt"
	"strings"

	"github.com/elenavoss/advisor/internal/domain"
)

// FormatBlueprint renders a blueprint for the terminal: colored headers
// around the same sections the Markdown document carries.
func FormatBlueprint(bp *domain.Blueprint) string {
	var sb strings.Builder

	sb.WriteString(Header("Your Program Blueprint"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", Dim("Goal:"), Bold(domain.GoalLabels[bp.Goal])))
	if bp.ID != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), Dim(bp.ID)))
	}
	sb.WriteString("\n")

	sb.WriteString(StyleBlue.Render("Your Profile & Program Focus"))
	sb.WriteString("\n")
	for _, line := range bp.Summary {
		sb.WriteString(fmt.Sprintf("  %s %s\n", Dim(line.Label+":"), line.Value))
	}
	sb.WriteString("\n")

	sb.WriteString(StyleBlue.Render("Key Recommendations"))
	sb.WriteString("\n")
	wrote := false
	if bp.Recommendation.Length != nil {
		sb.WriteString(fmt.Sprintf("  %s\n", *bp.Recommendation.Length))
		wrote = true
	}
	if p := bp.Recommendation.Problem; p != nil {
		sb.WriteString(fmt.Sprintf("  %s %s\n", Dim("Recommended Content Focus:"), StyleGreen.Render(p.RecommendedProgram)))
		sb.WriteString(fmt.Sprintf("  %s %s\n", Dim("Ideal Target Audience:"), p.TargetAudience))
		wrote = true
	}
	for _, idea := range bp.Recommendation.Ideas {
		sb.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("•"), idea))
		wrote = true
	}
	if !wrote {
		sb.WriteString(Dim("  No rule-based recommendations matched your answers.\n"))
	}
	sb.WriteString("\n")

	if bp.Generated != "" {
		sb.WriteString(StyleBlue.Render("Your Generated Creative Content"))
		sb.WriteString("\n")
		sb.WriteString(indent(strings.TrimSpace(bp.Generated), "  "))
		sb.WriteString("\n\n")
	}

	if bp.NextSteps != "" {
		sb.WriteString(StyleBlue.Render("What to Do Next"))
		sb.WriteString("\n")
		sb.WriteString("  " + bp.NextSteps + "\n")
	}

	return sb.String()
}

// FormatHistory renders archived blueprints as one line per entry.
func FormatHistory(bps []*domain.Blueprint) string {
	if len(bps) == 0 {
		return Dim("No blueprints archived yet. Run the questionnaire to create one.")
	}

	var sb strings.Builder
	sb.WriteString(Header("Blueprint History"))
	sb.WriteString("\n")
	for _, bp := range bps {
		sb.WriteString(fmt.Sprintf("%s  %-32s %s\n",
			Dim(bp.CreatedAt.Format("2006-01-02 15:04")),
			domain.GoalLabels[bp.Goal],
			Dim(bp.ID)))
	}
	return sb.String()
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}

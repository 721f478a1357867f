package prompt

import (
	"fmt"
	"strings"

	"github.com/elenavoss/advisor/internal/domain"
)

// Request is a fully-specified generation request: the validated context
// bundle plus the rendered prompt text for the goal's template.
type Request struct {
	Goal           domain.Goal
	Role           string
	Method         string
	TimeCommitment string
	ClientProblem  string
	Expertise      string
	Category       string
	Equipment      string
	Transformation *domain.TransformationTriple

	System string
	User   string
}

// Synthesize deterministically assembles the generation request for the
// given goal from the final answer store. It is a pure function of its
// inputs. A missing required field for the goal's template fails with
// domain.ErrIncompleteContext; fields are never silently omitted.
func Synthesize(answers *domain.AnswerStore, goal domain.Goal) (*Request, error) {
	req := &Request{
		Goal:           goal,
		Role:           answers.Text(domain.FieldRole),
		Method:         answers.Text(domain.FieldMethod),
		TimeCommitment: answers.Text(domain.FieldTimeCommitment),
		ClientProblem:  answers.Text(domain.FieldClientProblem),
		Expertise:      answers.Text(domain.FieldExpertise),
		Category:       answers.Text(domain.FieldCategory),
		Equipment:      answers.Text(domain.FieldEquipment),
		Transformation: answers.Triple(domain.FieldTransformation),
		System:         systemPrompt,
	}

	context, err := fill(contextTemplate, map[string]string{
		"ROLE":            req.Role,
		"METHOD":          req.Method,
		"TIME_COMMITMENT": req.TimeCommitment,
		"CLIENT_PROBLEM":  req.ClientProblem,
		"EXPERTISE":       req.Expertise,
	}, nil)
	if err != nil {
		return nil, err
	}

	var tasks []string
	switch goal {
	case domain.GoalSingleLesson:
		task, err := singleLessonTask(req, "Your Task:")
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	case domain.GoalFullProgram:
		task, err := fullProgramTask(req, "Your Task:")
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	case domain.GoalCombo:
		// Both instructions in one request, single-lesson task first.
		lesson, err := singleLessonTask(req, "Your First Task:")
		if err != nil {
			return nil, err
		}
		program, err := fullProgramTask(req, "Your Second Task:")
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, lesson, program)
	default:
		return nil, fmt.Errorf("unknown goal %q: %w", goal, domain.ErrIncompleteContext)
	}

	req.User = context + "\n\n" + strings.Join(tasks, "\n\n")
	return req, nil
}

func singleLessonTask(req *Request, label string) (string, error) {
	equipmentLine := ""
	if req.Category == domain.CategoryWithEquipment || req.Equipment != "" {
		line, err := fill(equipmentLineTemplate, map[string]string{
			"EQUIPMENT": req.Equipment,
		}, nil)
		if err != nil {
			return "", err
		}
		equipmentLine = line
	}

	return fill(singleLessonTemplate, map[string]string{
		"TASK_LABEL": label,
		"CATEGORY":   req.Category,
	}, map[string]string{
		"EQUIPMENT_LINE": equipmentLine,
	})
}

func fullProgramTask(req *Request, label string) (string, error) {
	if req.Transformation == nil {
		return "", fmt.Errorf("transformation is required for the full-program template: %w", domain.ErrIncompleteContext)
	}
	return fill(fullProgramTemplate, map[string]string{
		"TASK_LABEL":               label,
		"POINT_A":                  req.Transformation.PointA,
		"POINT_B":                  req.Transformation.PointB,
		"METHOD_TO_TRANSFORMATION": req.Transformation.MethodToTransformation,
	}, nil)
}

// fill substitutes named %SLOT% placeholders into tmpl. Every required slot
// must be non-empty; optional slots may be empty. Validation runs before any
// substitution so a half-filled template is never produced.
func fill(tmpl string, required, optional map[string]string) (string, error) {
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			return "", fmt.Errorf("template slot %s is empty: %w", name, domain.ErrIncompleteContext)
		}
	}

	out := tmpl
	for name, value := range required {
		out = strings.ReplaceAll(out, "%"+name+"%", value)
	}
	for name, value := range optional {
		out = strings.ReplaceAll(out, "%"+name+"%", value)
	}
	return out, nil
}

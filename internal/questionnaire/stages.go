package questionnaire

import "github.com/elenavoss/advisor/internal/domain"

// Stage declares the fields one questionnaire step collects and, for enum
// fields, the allowed option set. Fields without an option set are free text,
// except FieldTransformation which takes a structured triple.
type Stage struct {
	ID      domain.StageID
	Title   string
	Fields  []domain.FieldKey
	Options map[domain.FieldKey][]string
}

var stages = map[domain.StageID]Stage{
	domain.StageProfile: {
		ID:    domain.StageProfile,
		Title: "Your Profile",
		Fields: []domain.FieldKey{
			domain.FieldRole,
			domain.FieldMethod,
			domain.FieldTimeCommitment,
			domain.FieldClientProblem,
			domain.FieldExpertise,
		},
		Options: map[domain.FieldKey][]string{
			domain.FieldRole:           domain.RoleOptions,
			domain.FieldMethod:         domain.MethodOptions,
			domain.FieldTimeCommitment: domain.TimeOptions,
		},
	},
	domain.StageGoalSetting: {
		ID:     domain.StageGoalSetting,
		Title:  "Your Goal",
		Fields: []domain.FieldKey{domain.FieldGoal},
		Options: map[domain.FieldKey][]string{
			domain.FieldGoal: domain.GoalOptionValues,
		},
	},
	domain.StageCategorySelection: {
		ID:     domain.StageCategorySelection,
		Title:  "Lesson Category",
		Fields: []domain.FieldKey{domain.FieldCategory},
		Options: map[domain.FieldKey][]string{
			domain.FieldCategory: domain.CategoryOptions,
		},
	},
	domain.StageEquipmentSelection: {
		ID:     domain.StageEquipmentSelection,
		Title:  "Equipment",
		Fields: []domain.FieldKey{domain.FieldEquipment},
		Options: map[domain.FieldKey][]string{
			domain.FieldEquipment: domain.EquipmentOptions,
		},
	},
	domain.StageTransformationDeepDive: {
		ID:     domain.StageTransformationDeepDive,
		Title:  "Client Transformation",
		Fields: []domain.FieldKey{domain.FieldTransformation},
	},
}

// StageSpec returns the declaration for a stage, if it exists.
func StageSpec(id domain.StageID) (Stage, bool) {
	s, ok := stages[id]
	return s, ok
}

// transition is one row of the explicit transition table. A nil condition
// always matches. Rows are evaluated top to bottom per source stage.
type transition struct {
	from domain.StageID
	cond func(e *Engine) bool
	to   func(e *Engine) domain.StageID
}

func to(id domain.StageID) func(*Engine) domain.StageID {
	return func(*Engine) domain.StageID { return id }
}

func goalIs(g domain.Goal) func(*Engine) bool {
	return func(e *Engine) bool { return e.Goal() == g }
}

func timeIsGoalSetting(e *Engine) bool {
	return e.answers.Text(domain.FieldTimeCommitment) == domain.TimeGoalSetting
}

func categoryNeedsEquipment(e *Engine) bool {
	return e.answers.Text(domain.FieldCategory) == domain.CategoryWithEquipment
}

func comboMissingTransformation(e *Engine) bool {
	return e.Goal() == domain.GoalCombo && !e.answers.Has(domain.FieldTransformation)
}

func comboMissingCategory(e *Engine) bool {
	return e.Goal() == domain.GoalCombo && !e.answers.Has(domain.FieldCategory)
}

var transitions = []transition{
	{domain.StageProfile, timeIsGoalSetting, to(domain.StageGoalSetting)},
	{domain.StageProfile, nil, (*Engine).goalEntryStage},

	{domain.StageGoalSetting, goalIs(domain.GoalSingleLesson), to(domain.StageCategorySelection)},
	{domain.StageGoalSetting, goalIs(domain.GoalFullProgram), to(domain.StageTransformationDeepDive)},
	{domain.StageGoalSetting, goalIs(domain.GoalCombo), (*Engine).goalEntryStage},

	{domain.StageCategorySelection, categoryNeedsEquipment, to(domain.StageEquipmentSelection)},
	{domain.StageCategorySelection, comboMissingTransformation, to(domain.StageTransformationDeepDive)},
	{domain.StageCategorySelection, nil, to(domain.StageReadyForGeneration)},

	{domain.StageEquipmentSelection, comboMissingTransformation, to(domain.StageTransformationDeepDive)},
	{domain.StageEquipmentSelection, nil, to(domain.StageReadyForGeneration)},

	{domain.StageTransformationDeepDive, comboMissingCategory, to(domain.StageCategorySelection)},
	{domain.StageTransformationDeepDive, nil, to(domain.StageReadyForGeneration)},
}

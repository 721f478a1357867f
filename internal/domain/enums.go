package domain

// Goal is the deliverable type the expert is building.
type Goal string

const (
	GoalSingleLesson Goal = "single_lesson"
	GoalFullProgram  Goal = "full_program"
	GoalCombo        Goal = "combo"
)

// ValidGoals is the canonical set of accepted goal strings.
var ValidGoals = map[string]bool{
	string(GoalSingleLesson): true,
	string(GoalFullProgram):  true,
	string(GoalCombo):        true,
}

// StageID identifies one step of the questionnaire.
type StageID string

const (
	StageProfile                StageID = "profile"
	StageGoalSetting            StageID = "goal_setting"
	StageCategorySelection      StageID = "category_selection"
	StageEquipmentSelection     StageID = "equipment_selection"
	StageTransformationDeepDive StageID = "transformation_deep_dive"
	StageReadyForGeneration     StageID = "ready_for_generation"
)

// FieldKey identifies a single question across all stages.
type FieldKey string

const (
	FieldRole           FieldKey = "role"
	FieldMethod         FieldKey = "method"
	FieldTimeCommitment FieldKey = "time_commitment"
	FieldClientProblem  FieldKey = "client_problem"
	FieldExpertise      FieldKey = "expertise"
	FieldGoal           FieldKey = "goal"
	FieldCategory       FieldKey = "category"
	FieldEquipment      FieldKey = "equipment"
	FieldTransformation FieldKey = "transformation"
)

// Option sets for the enum questions, in presentation order.
var (
	RoleOptions = []string{
		"Dermatologist", "Facialist", "Esthetician",
		"Skincare Coach", "Skincare Influencer", "Other",
	}
	MethodOptions = []string{
		"Educational content", "Hands-on techniques", "A combination of both",
	}
	TimeOptions = []string{
		"1-2 hours", "3-4 hours", "8-10 hours",
	}
	CategoryOptions = []string{
		"Educational", "Hands-on (no equipment)", "Hands-on (with equipment)",
	}
	EquipmentOptions = []string{
		"Guasha", "Face roller", "Ice globes", "Dry brush", "Other",
	}
	GoalOptionValues = []string{
		string(GoalSingleLesson), string(GoalFullProgram), string(GoalCombo),
	}
)

// Branch values the transition table matches on.
const (
	TimeGoalSetting       = "3-4 hours"
	CategoryWithEquipment = "Hands-on (with equipment)"
)

// FieldLabels maps field keys to the labels shown in forms and summaries.
var FieldLabels = map[FieldKey]string{
	FieldRole:           "Professional Role",
	FieldMethod:         "Primary Method",
	FieldTimeCommitment: "Weekly Time Commitment",
	FieldClientProblem:  "Client Problem to Solve",
	FieldExpertise:      "Core Expertise",
	FieldGoal:           "Goal",
	FieldCategory:       "Lesson Category",
	FieldEquipment:      "Equipment",
	FieldTransformation: "Client Transformation",
}

// GoalLabels maps goal values to human-readable names.
var GoalLabels = map[Goal]string{
	GoalSingleLesson: "Single Additional Lesson",
	GoalFullProgram:  "Full 12-Lesson Monthly Program",
	GoalCombo:        "Lesson + Full Program",
}

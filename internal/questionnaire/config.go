package questionnaire

import (
	"os"

	"github.com/elenavoss/advisor/internal/domain"
)

// Config controls the two branching decisions the source material leaves
// open: which goal is assumed when the time commitment skips GoalSetting,
// and which half of the Combo composite path is collected first.
type Config struct {
	DefaultGoal        domain.Goal
	ComboCategoryFirst bool
}

// DefaultEngineConfig assumes FullProgram for skipped GoalSetting and
// collects the single-lesson half of a Combo first.
func DefaultEngineConfig() Config {
	return Config{
		DefaultGoal:        domain.GoalFullProgram,
		ComboCategoryFirst: true,
	}
}

// LoadConfig reads engine configuration from environment variables,
// falling back to defaults for unset or invalid values.
//
//	ADVISOR_DEFAULT_GOAL  single_lesson | full_program | combo
//	ADVISOR_COMBO_ORDER   category_first | transformation_first
func LoadConfig() Config {
	cfg := DefaultEngineConfig()

	if v := os.Getenv("ADVISOR_DEFAULT_GOAL"); v != "" && domain.ValidGoals[v] {
		cfg.DefaultGoal = domain.Goal(v)
	}
	if v := os.Getenv("ADVISOR_COMBO_ORDER"); v == "transformation_first" {
		cfg.ComboCategoryFirst = false
	}

	return cfg
}

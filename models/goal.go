package models

// Goal is the server-generated target set attached to a user. It is
// regenerated wholesale by the profile endpoint; no field is ever patched
// individually.
type Goal struct {
	GoalType                     string   `json:"goal_type"`
	TargetWeight                 *float64 `json:"target_weight,omitempty"`
	TargetMuscleMass             *float64 `json:"target_muscle_mass,omitempty"`
	TargetCaloriesPerDay         *int     `json:"target_calories_per_day,omitempty"`
	TargetProteinPerDay          *float64 `json:"target_protein_per_day,omitempty"`
	TargetExerciseMinutesPerWeek *int     `json:"target_exercise_minutes_per_week,omitempty"`
	TargetSleepHours             *float64 `json:"target_sleep_hours,omitempty"`
	TargetScreenTimeHours        *float64 `json:"target_screen_time_hours,omitempty"`
	TargetStressLevel            *float64 `json:"target_stress_level,omitempty"`
	GoalDescription              string   `json:"goal_description"`
	AIGenerated                  bool     `json:"ai_generated"`
}

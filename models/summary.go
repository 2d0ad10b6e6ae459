package models

// Per-category agent outputs returned by the summary API.

type FoodAgentOutput struct {
	Calories       int     `json:"calories"`
	NutritionScore float64 `json:"nutrition_score"`
	Comment        string  `json:"comment"`
}

type ExerciseAgentOutput struct {
	CaloriesBurned int    `json:"calories_burned"`
	Note           string `json:"note"`
}

type LifestyleAgentOutput struct {
	WellnessScore float64 `json:"wellness_score"`
	Advice        string  `json:"advice"`
}

// OrchestratorSummary is the aggregate cross-category result.
type OrchestratorSummary struct {
	OverallHealthScore float64  `json:"overall_health_score"`
	Summary            string   `json:"summary"`
	Recommendations    []string `json:"recommendations"`
	Motivation         string   `json:"motivation,omitempty"`
	GoalProgress       string   `json:"goal_progress,omitempty"`
}

// DailySummary is ephemeral: requested per view, never persisted.
type DailySummary struct {
	FoodAgent           FoodAgentOutput      `json:"food_agent"`
	ExerciseAgent       ExerciseAgentOutput  `json:"exercise_agent"`
	LifestyleAgent      LifestyleAgentOutput `json:"lifestyle_agent"`
	OrchestratorSummary OrchestratorSummary  `json:"orchestrator_summary"`
	GoalAlignment       string               `json:"goal_alignment,omitempty"`
}

// EmptySummary is the zero-valued shape rendered when nothing is logged yet.
func EmptySummary() DailySummary {
	return DailySummary{
		FoodAgent:      FoodAgentOutput{Comment: "No food data logged yet"},
		ExerciseAgent:  ExerciseAgentOutput{Note: "No exercise data logged yet"},
		LifestyleAgent: LifestyleAgentOutput{Advice: "No lifestyle data logged yet"},
		OrchestratorSummary: OrchestratorSummary{
			Summary:         "Welcome! Start tracking your meals, exercises, and lifestyle activities to get personalized insights.",
			Recommendations: []string{},
		},
	}
}

// FailedSummary is the all-zero fallback rendered when the summary API
// call does not succeed.
func FailedSummary() DailySummary {
	return DailySummary{
		FoodAgent:      FoodAgentOutput{Comment: "Unable to analyze food data"},
		ExerciseAgent:  ExerciseAgentOutput{Note: "Unable to analyze exercise data"},
		LifestyleAgent: LifestyleAgentOutput{Advice: "Unable to analyze lifestyle data"},
		OrchestratorSummary: OrchestratorSummary{
			Summary:         "Unable to generate personalized summary. Please try again later.",
			Recommendations: []string{},
		},
	}
}

package models

// FoodAnalysis is the vision API's answer for an uploaded food photo.
type FoodAnalysis struct {
	Success          bool               `json:"success"`
	FoodItems        []string           `json:"foodItems"`
	DetailedAnalysis []DetailedFoodItem `json:"detailedAnalysis,omitempty"`
	Message          string             `json:"message,omitempty"`
	FreeModel        bool               `json:"free_model,omitempty"`
	UpgradeRequired  bool               `json:"upgrade_required,omitempty"`
	Fallback         bool               `json:"fallback,omitempty"`
}

type DetailedFoodItem struct {
	Name        string `json:"name"`
	Portion     string `json:"portion"`
	Description string `json:"description"`
}

// FoodFeedback is a user correction of an AI prediction, relayed
// fire-and-forget to the feedback endpoint.
type FoodFeedback struct {
	ImageHash      string         `json:"image_hash"`
	AIPrediction   []string       `json:"ai_prediction"`
	UserCorrection string         `json:"user_correction"`
	ImageInfo      map[string]any `json:"image_info"`
}

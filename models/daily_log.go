package models

// Lifestyle is the single same-day lifestyle snapshot. Writing replaces the
// whole snapshot; there is no per-field patching and no historical dating.
type Lifestyle struct {
	SleepHours  float64 `json:"sleep_hours"`
	ScreenTime  float64 `json:"screen_time"`
	StressLevel int     `json:"stress_level"`
	WaterIntake int     `json:"water_intake"`
}

// IsZero reports whether nothing has been logged yet.
func (l Lifestyle) IsZero() bool {
	return l == Lifestyle{}
}

// DailyLog bundles the three same-day collections awaiting summarization.
type DailyLog struct {
	Meals     []string  `json:"meals"`
	Exercises []string  `json:"exercises"`
	Lifestyle Lifestyle `json:"lifestyle"`
}

// Empty reports whether all three collections are empty, in which case the
// summary view must not call the summary API at all.
func (d DailyLog) Empty() bool {
	return len(d.Meals) == 0 && len(d.Exercises) == 0 && d.Lifestyle.IsZero()
}

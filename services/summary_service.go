package services

import (
	"github.com/nate-han123/Mind-Scroll/models"
	"github.com/nate-han123/Mind-Scroll/pkg/logger"
	"github.com/nate-han123/Mind-Scroll/utils"
)

// SummaryView is everything the daily summary page renders in one shot.
type SummaryView struct {
	Summary       models.DailySummary `json:"summary"`
	NutritionBand utils.Band          `json:"nutrition_band"`
	ExerciseBand  utils.Band          `json:"exercise_band"`
	WellnessBand  utils.Band          `json:"wellness_band"`
	NoData        bool                `json:"no_data"`
	Error         string              `json:"error,omitempty"`
}

// SummaryService builds the daily summary view. One upstream request per
// view at most: an empty log short-circuits to the zero placeholder
// without touching the network.
type SummaryService struct {
	api *SummaryAPI
	log *logger.Logger
}

func NewSummaryService(api *SummaryAPI, log *logger.Logger) *SummaryService {
	return &SummaryService{api: api, log: log}
}

func (s *SummaryService) BuildView(sess Session) SummaryView {
	dayLog := sess.DailyLog()
	if dayLog.Empty() {
		return withBands(SummaryView{Summary: models.EmptySummary(), NoData: true})
	}

	userID := ""
	if u, ok := sess.User(); ok {
		userID = u.UserID
	}

	summary, err := s.api.Generate(SummaryRequest{
		UserID:    userID,
		Meals:     dayLog.Meals,
		Exercises: dayLog.Exercises,
		Lifestyle: dayLog.Lifestyle,
	})
	if err != nil {
		s.log.Warnw("summary generation failed", "session", sess.ID, "error", err)
		return withBands(SummaryView{Summary: models.FailedSummary(), Error: err.Error()})
	}
	return withBands(SummaryView{Summary: *summary})
}

func withBands(v SummaryView) SummaryView {
	v.NutritionBand = utils.ScoreBand(v.Summary.FoodAgent.NutritionScore)
	v.ExerciseBand = utils.CaloriesBurnedBand(v.Summary.ExerciseAgent.CaloriesBurned)
	v.WellnessBand = utils.ScoreBand(v.Summary.LifestyleAgent.WellnessScore)
	return v
}

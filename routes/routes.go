package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nate-han123/Mind-Scroll/controllers"
	"github.com/nate-han123/Mind-Scroll/middlewares"
	"github.com/nate-han123/Mind-Scroll/services"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Auth     *controllers.AuthController
	Logs     *controllers.LogController
	Summary  *controllers.SummaryController
	Profile  *controllers.ProfileController
	Feed     *controllers.FeedController
	Food     *controllers.FoodImageController
	Realtime *controllers.RealtimeController
}

func SetupRouter(authSvc *services.AuthService, ctrl Controllers) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
	}

	guard := middlewares.RequireSession(authSvc)

	r.POST("/auth/logout", guard, ctrl.Auth.Logout)
	r.GET("/ws", guard, ctrl.Realtime.EventsWS)

	logs := r.Group("/logs")
	logs.Use(guard)
	{
		logs.GET("/meals", ctrl.Logs.GetMeals)
		logs.PUT("/meals", ctrl.Logs.PutMeals)
		logs.POST("/meals", ctrl.Logs.AddMeal)
		logs.DELETE("/meals/:index", ctrl.Logs.RemoveMeal)

		logs.GET("/exercises", ctrl.Logs.GetExercises)
		logs.PUT("/exercises", ctrl.Logs.PutExercises)
		logs.POST("/exercises", ctrl.Logs.AddExercise)
		logs.DELETE("/exercises/:index", ctrl.Logs.RemoveExercise)

		logs.GET("/lifestyle", ctrl.Logs.GetLifestyle)
		logs.PUT("/lifestyle", ctrl.Logs.PutLifestyle)
	}

	r.GET("/summary", guard, ctrl.Summary.Get)

	user := r.Group("/user")
	user.Use(guard)
	{
		user.GET("/profile", ctrl.Profile.Get)
		user.PUT("/profile", ctrl.Profile.Update)
		user.POST("/profile/validate", ctrl.Profile.ValidateStep)
		user.POST("/avatar", ctrl.Profile.UploadAvatar)
	}

	feed := r.Group("/feed")
	feed.Use(guard)
	{
		feed.GET("/state", ctrl.Feed.State)
		feed.PUT("/interests", ctrl.Feed.PutInterests)
		feed.PUT("/duration", ctrl.Feed.PutDuration)
		feed.GET("", ctrl.Feed.Browse)
		feed.GET("/more", ctrl.Feed.More)
		feed.POST("/like/:id", ctrl.Feed.ToggleLike)
		feed.POST("/save/:id", ctrl.Feed.ToggleSave)
		feed.GET("/liked", ctrl.Feed.Liked)
		feed.GET("/saved", ctrl.Feed.Saved)
		feed.POST("/reset", ctrl.Feed.Reset)
	}

	food := r.Group("/food")
	food.Use(guard)
	{
		food.POST("/analyze-image", ctrl.Food.Analyze)
		food.POST("/feedback", ctrl.Food.Feedback)
	}

	return r
}

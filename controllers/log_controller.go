package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nate-han123/Mind-Scroll/middlewares"
	"github.com/nate-han123/Mind-Scroll/models"
	"github.com/nate-han123/Mind-Scroll/services"
)

// LogController serves today's three log collections. Every write reads
// the stored collection, mutates it, and persists the whole thing back.
type LogController struct{}

func NewLogController() *LogController {
	return &LogController{}
}

type logAccessor struct {
	get func(services.Session) []string
	set func(services.Session, []string) error
}

var mealsAccess = logAccessor{
	get: services.Session.Meals,
	set: services.Session.SetMeals,
}

var exercisesAccess = logAccessor{
	get: services.Session.Exercises,
	set: services.Session.SetExercises,
}

// GET /logs/meals
func (lc *LogController) GetMeals(c *gin.Context)     { listEntries(c, mealsAccess) }
func (lc *LogController) GetExercises(c *gin.Context) { listEntries(c, exercisesAccess) }

// PUT /logs/meals  {"entries": [...]}
func (lc *LogController) PutMeals(c *gin.Context)     { replaceEntries(c, mealsAccess) }
func (lc *LogController) PutExercises(c *gin.Context) { replaceEntries(c, exercisesAccess) }

// POST /logs/meals  {"entry": "..."}
func (lc *LogController) AddMeal(c *gin.Context)     { appendEntry(c, mealsAccess) }
func (lc *LogController) AddExercise(c *gin.Context) { appendEntry(c, exercisesAccess) }

// DELETE /logs/meals/:index
func (lc *LogController) RemoveMeal(c *gin.Context)     { removeEntry(c, mealsAccess) }
func (lc *LogController) RemoveExercise(c *gin.Context) { removeEntry(c, exercisesAccess) }

func listEntries(c *gin.Context, acc logAccessor) {
	sess := middlewares.SessionFrom(c)
	c.JSON(http.StatusOK, gin.H{"entries": acc.get(sess)})
}

func replaceEntries(c *gin.Context, acc logAccessor) {
	sess := middlewares.SessionFrom(c)
	var req struct {
		Entries []string `json:"entries"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	entries := make([]string, 0, len(req.Entries))
	for _, e := range req.Entries {
		if strings.TrimSpace(e) != "" {
			entries = append(entries, e)
		}
	}
	if err := acc.set(sess, entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func appendEntry(c *gin.Context, acc logAccessor) {
	sess := middlewares.SessionFrom(c)
	var req struct {
		Entry string `json:"entry"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Entry) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entry must not be empty"})
		return
	}

	entries := append(acc.get(sess), req.Entry)
	if err := acc.set(sess, entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func removeEntry(c *gin.Context, acc logAccessor) {
	sess := middlewares.SessionFrom(c)
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be a number"})
		return
	}

	entries := acc.get(sess)
	if idx < 0 || idx >= len(entries) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no entry at that index"})
		return
	}

	entries = append(entries[:idx], entries[idx+1:]...)
	if err := acc.set(sess, entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GET /logs/lifestyle
func (lc *LogController) GetLifestyle(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	c.JSON(http.StatusOK, sess.Lifestyle())
}

// PUT /logs/lifestyle
func (lc *LogController) PutLifestyle(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	var l models.Lifestyle
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	// 0 is the unset zero-value snapshot; a logged level is 1-10.
	if l.StressLevel != 0 && (l.StressLevel < 1 || l.StressLevel > 10) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stress_level must be between 1 and 10"})
		return
	}
	if err := sess.SetLifestyle(l); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, l)
}

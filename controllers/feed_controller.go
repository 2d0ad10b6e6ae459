package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nate-han123/Mind-Scroll/middlewares"
	"github.com/nate-han123/Mind-Scroll/services"
)

type FeedController struct {
	Feed *services.FeedService
}

func NewFeedController(f *services.FeedService) *FeedController {
	return &FeedController{Feed: f}
}

// GET /feed/state
func (fc *FeedController) State(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	duration, _ := sess.Duration()
	c.JSON(http.StatusOK, gin.H{
		"phase":      fc.Feed.Phase(sess),
		"interests":  fc.Feed.Selection(sess),
		"duration":   duration,
		"categories": services.InterestCategories,
	})
}

// PUT /feed/interests  {"interests": [...]}
func (fc *FeedController) PutInterests(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	var req struct {
		Interests []string `json:"interests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	selected, err := fc.Feed.ApplyInterests(sess, req.Interests)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, services.ErrUnknownInterest) && !errors.Is(err, services.ErrTooFewInterests) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interests": selected, "phase": fc.Feed.Phase(sess)})
}

// PUT /feed/duration  {"duration": "short"}
func (fc *FeedController) PutDuration(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	var req struct {
		Duration string `json:"duration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := fc.Feed.SelectDuration(sess, req.Duration); err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, services.ErrUnknownDuration) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"duration": req.Duration, "phase": fc.Feed.Phase(sess)})
}

// GET /feed
func (fc *FeedController) Browse(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	if fc.Feed.Phase(sess) != services.PhaseBrowsing {
		c.JSON(http.StatusConflict, gin.H{"error": "pick interests and a duration first", "phase": fc.Feed.Phase(sess)})
		return
	}
	c.JSON(http.StatusOK, fc.Feed.Browse(sess))
}

// GET /feed/more
func (fc *FeedController) More(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	c.JSON(http.StatusOK, fc.Feed.DiscoverMore(sess))
}

// POST /feed/like/:id
func (fc *FeedController) ToggleLike(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	liked, err := sess.ToggleLiked(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "liked": liked})
}

// POST /feed/save/:id
func (fc *FeedController) ToggleSave(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	saved, err := sess.ToggleSaved(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "saved": saved})
}

// POST /feed/reset
//
// Backs out of duration selection (or browsing) to pick interests again.
func (fc *FeedController) Reset(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	if err := fc.Feed.ResetInterests(sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": fc.Feed.Phase(sess)})
}

// GET /feed/liked
func (fc *FeedController) Liked(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	c.JSON(http.StatusOK, gin.H{"items": fc.Feed.Liked(sess)})
}

// GET /feed/saved
func (fc *FeedController) Saved(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	c.JSON(http.StatusOK, gin.H{"items": fc.Feed.Saved(sess)})
}

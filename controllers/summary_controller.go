package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nate-han123/Mind-Scroll/middlewares"
	"github.com/nate-han123/Mind-Scroll/services"
)

type SummaryController struct {
	Summaries *services.SummaryService
}

func NewSummaryController(s *services.SummaryService) *SummaryController {
	return &SummaryController{Summaries: s}
}

// GET /summary
//
// Always 200: an upstream failure renders the zero-valued fallback with
// the error string attached, the same page the user would see, not a
// broken one.
func (sc *SummaryController) Get(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	c.JSON(http.StatusOK, sc.Summaries.BuildView(sess))
}

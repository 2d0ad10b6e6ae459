package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nate-han123/Mind-Scroll/models"
	"github.com/nate-han123/Mind-Scroll/pkg/logger"
	"github.com/nate-han123/Mind-Scroll/services"
	"github.com/nate-han123/Mind-Scroll/utils"
)

// FoodLabelDetector is the local fallback analyzer, normally Rekognition.
type FoodLabelDetector interface {
	DetectFoodLabels(data []byte) ([]string, error)
}

// FoodImageController forwards food photos to the external vision API,
// archiving a copy to S3 and falling back to local label detection when
// the API is down.
type FoodImageController struct {
	Vision   *services.VisionAPI
	Rek      FoodLabelDetector
	Uploader *utils.Uploader
	Log      *logger.Logger
}

func NewFoodImageController(vision *services.VisionAPI, rek FoodLabelDetector, up *utils.Uploader, log *logger.Logger) *FoodImageController {
	return &FoodImageController{Vision: vision, Rek: rek, Uploader: up, Log: log}
}

// POST /food/analyze-image  (multipart, field "image")
func (fic *FoodImageController) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")

	// Archive is best-effort and off the request path.
	if fic.Uploader != nil {
		go func() {
			if _, err := fic.Uploader.UploadImage("food-photos", fileHeader.Filename, contentType, data); err != nil {
				fic.Log.Warnw("food photo archive failed", "error", err)
			}
		}()
	}

	analysis, err := fic.Vision.AnalyzeImage(fileHeader.Filename, contentType, data)
	if err == nil {
		c.JSON(http.StatusOK, analysis)
		return
	}
	fic.Log.Warnw("vision API failed, trying label fallback", "error", err)

	if fic.Rek != nil {
		labels, rekErr := fic.Rek.DetectFoodLabels(data)
		if rekErr == nil {
			c.JSON(http.StatusOK, models.FoodAnalysis{
				Success:   true,
				FoodItems: labels,
				Fallback:  true,
				Message:   "Basic label detection only; detailed analysis is temporarily unavailable.",
			})
			return
		}
		fic.Log.Warnw("label fallback failed", "error", rekErr)
	}

	c.JSON(upstreamStatus(err), gin.H{"error": upstreamMessage(err, "Food analysis is unavailable right now.")})
}

// POST /food/feedback
//
// Fire and forget: the correction is relayed in the background and the
// handler answers 202 immediately. A relay failure is logged, never shown.
func (fic *FoodImageController) Feedback(c *gin.Context) {
	var fb models.FoodFeedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	go func() {
		if err := fic.Vision.SendFeedback(fb); err != nil {
			fic.Log.Warnw("food feedback relay failed", "error", err)
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "received"})
}

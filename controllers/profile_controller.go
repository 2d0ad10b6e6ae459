package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nate-han123/Mind-Scroll/middlewares"
	"github.com/nate-han123/Mind-Scroll/models"
	"github.com/nate-han123/Mind-Scroll/services"
	"github.com/nate-han123/Mind-Scroll/utils"
)

type ProfileController struct {
	Profiles *services.ProfileService
	Uploader *utils.Uploader
}

func NewProfileController(p *services.ProfileService, up *utils.Uploader) *ProfileController {
	return &ProfileController{Profiles: p, Uploader: up}
}

// GET /user/profile
func (pc *ProfileController) Get(c *gin.Context) {
	user := c.MustGet(middlewares.CtxUser).(*models.SessionUser)
	resp := gin.H{"user": user}

	p := user.EffectiveProfile()
	if bmi, err := utils.CalculateBMI(p.Height, p.Weight); err == nil {
		resp["bmi"] = bmi
		resp["bmi_category"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusOK, resp)
}

// POST /user/profile/validate  {"step": 1, "profile": {...}}
//
// Advisory per-step gating for the wizard; the final submit re-checks
// everything regardless of what this answered.
func (pc *ProfileController) ValidateStep(c *gin.Context) {
	var req struct {
		Step    int                    `json:"step"`
		Profile services.ProfileUpdate `json:"profile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	fieldErrs, err := pc.Profiles.ValidateStep(req.Step, req.Profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": len(fieldErrs) == 0, "errors": fieldErrs})
}

// PUT /user/profile
func (pc *ProfileController) Update(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	var form services.ProfileUpdate
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	user, err := pc.Profiles.Submit(sess, form)
	if err != nil {
		var fieldErrs services.FieldErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "errors": fieldErrs})
			return
		}
		c.JSON(upstreamStatus(err), gin.H{"error": upstreamMessage(err, "Failed to update profile. Please try again.")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// POST /user/avatar  {"image": "data:image/jpeg;base64,..."}
func (pc *ProfileController) UploadAvatar(c *gin.Context) {
	if pc.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	sess := middlewares.SessionFrom(c)
	user := c.MustGet(middlewares.CtxUser).(*models.SessionUser)

	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	url, err := pc.Uploader.UploadBase64Image(req.Image, "avatars/"+user.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.Avatar = url
	if err := sess.SetUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": url})
}

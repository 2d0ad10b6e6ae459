package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nate-han123/Mind-Scroll/middlewares"
	"github.com/nate-han123/Mind-Scroll/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/login  {"email": ..., "password": ...}
func (ac *AuthController) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := ac.Auth.Login(input)
	if err != nil {
		c.JSON(upstreamStatus(err), gin.H{"error": upstreamMessage(err, "Login failed. Please try again.")})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	sess := middlewares.SessionFrom(c)
	if err := ac.Auth.Logout(sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
}

// upstreamStatus maps an upstream rejection to the status class we relay;
// anything else (network, decode) is a bad gateway.
func upstreamStatus(err error) int {
	var ue *services.UpstreamError
	if errors.As(err, &ue) && ue.Status >= 400 && ue.Status < 500 {
		return ue.Status
	}
	return http.StatusBadGateway
}

// upstreamMessage prefers the server-supplied detail over the generic
// fallback banner text.
func upstreamMessage(err error, fallback string) string {
	var ue *services.UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return fallback
}

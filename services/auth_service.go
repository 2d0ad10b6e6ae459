package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nate-han123/Mind-Scroll/models"
	"github.com/nate-han123/Mind-Scroll/pkg/logger"
	"github.com/nate-han123/Mind-Scroll/utils"
)

// AuthService logs users in through the external auth endpoint, binds the
// returned record to a fresh session, and mints the bearer token that
// names that session.
type AuthService struct {
	api       *AuthAPI
	store     SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       *logger.Logger
}

func NewAuthService(api *AuthAPI, store SessionStore, jwtSecret string, tokenTTL time.Duration, log *logger.Logger) *AuthService {
	return &AuthService{
		api:       api,
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// LoginResult is the login response: the token the client sends back on
// every request, plus the decoded record for immediate rendering.
type LoginResult struct {
	Token string              `json:"token"`
	User  *models.SessionUser `json:"user"`
}

// Login proxies credentials upstream, stores the response body verbatim
// under a new session, and returns the session token. A response that does
// not decode as a user record fails the login; nothing is stored.
func (a *AuthService) Login(input LoginInput) (*LoginResult, error) {
	body, err := a.api.Login(input)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	sess := NewSession(a.store, sessionID)
	if err := sess.SetUserRaw(body); err != nil {
		return nil, fmt.Errorf("auth response is not a valid user record: %w", err)
	}

	token, err := utils.GenerateSessionToken(a.jwtSecret, sessionID, a.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to mint session token: %w", err)
	}

	user, _ := sess.User()
	a.log.Infow("user logged in", "session", sessionID, "user", user.UserID)
	return &LoginResult{Token: token, User: user}, nil
}

// Logout wipes every key the session holds. The store broadcasts the
// clear, so other connected clients of the same session drop to the login
// screen too.
func (a *AuthService) Logout(sess Session) error {
	if err := sess.Clear(); err != nil {
		return err
	}
	a.log.Infow("session cleared", "session", sess.ID)
	return nil
}

// SessionFromToken resolves a bearer token back to its typed session.
func (a *AuthService) SessionFromToken(token string) (Session, error) {
	sid, err := utils.ParseSessionToken(a.jwtSecret, token)
	if err != nil {
		return Session{}, err
	}
	return NewSession(a.store, sid), nil
}

package models

import (
	"encoding/json"
	"errors"
)

// Profile holds the editable profile fields of the logged-in user.
type Profile struct {
	Age                   int      `json:"age"`
	Gender                string   `json:"gender"`
	Weight                float64  `json:"weight"`
	Height                float64  `json:"height"`
	ActivityLevel         string   `json:"activity_level"`
	PrimaryHealthGoal     string   `json:"primary_health_goal"`
	Motivation            string   `json:"motivation"`
	LifestyleVision       string   `json:"lifestyle_vision"`
	IntellectualInterests []string `json:"intellectual_interests"`
	LearningStyle         string   `json:"learning_style"`
	TimeAvailability      string   `json:"time_availability"`
}

// SessionUser is the session record: the logged-in user as returned by the
// auth API, kept verbatim in the store and decoded through here.
type SessionUser struct {
	UserID   string   `json:"user_id"`
	Email    string   `json:"email,omitempty"`
	Name     string   `json:"name"`
	Nickname string   `json:"nickname,omitempty"`
	Avatar   string   `json:"avatar,omitempty"`
	Profile  *Profile `json:"profile,omitempty"`
	Goal     *Goal    `json:"goal,omitempty"`
}

var ErrInvalidSessionUser = errors.New("session user record is missing user_id")

// DecodeSessionUser validates a stored session record. The login response
// historically carried profile fields either nested under "profile" or flat
// at the top level; both shapes decode to the same struct, so later readers
// never see the drift.
func DecodeSessionUser(raw []byte) (*SessionUser, error) {
	var u SessionUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	if u.Profile == nil {
		var flat Profile
		if err := json.Unmarshal(raw, &flat); err == nil {
			u.Profile = &flat
		}
	}
	if u.UserID == "" {
		return nil, ErrInvalidSessionUser
	}
	return &u, nil
}

// EffectiveProfile never returns nil.
func (u *SessionUser) EffectiveProfile() *Profile {
	if u.Profile != nil {
		return u.Profile
	}
	return &Profile{}
}

// DisplayName prefers the nickname, like every greeting in the UI does.
func (u *SessionUser) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Name
}

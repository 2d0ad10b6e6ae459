package services

import (
	"errors"
	"fmt"

	"github.com/nate-han123/Mind-Scroll/models"
	"github.com/nate-han123/Mind-Scroll/pkg/logger"
)

// Wizard steps. Each step gates the next: a step submits only after its
// own fields validate.
const (
	StepBasics    = 1
	StepGoals     = 2
	StepInterests = 3
	LastStep      = StepInterests
)

var ErrUnknownStep = errors.New("unknown wizard step")

// FieldErrors maps field name to the message shown under that input.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	return fmt.Sprintf("%d invalid fields", len(fe))
}

// ProfileService validates the multi-step profile wizard and submits the
// completed form as one full-replace update.
type ProfileService struct {
	api *ProfileAPI
	log *logger.Logger
}

func NewProfileService(api *ProfileAPI, log *logger.Logger) *ProfileService {
	return &ProfileService{api: api, log: log}
}

// ValidateStep checks only the fields that belong to the given step.
func (p *ProfileService) ValidateStep(step int, form ProfileUpdate) (FieldErrors, error) {
	switch step {
	case StepBasics:
		return p.validateBasics(form), nil
	case StepGoals:
		return p.validateGoals(form), nil
	case StepInterests:
		return p.validateInterests(form), nil
	default:
		return nil, ErrUnknownStep
	}
}

// ValidateAll runs every step's checks, merged. Used before final submit.
func (p *ProfileService) ValidateAll(form ProfileUpdate) FieldErrors {
	merged := FieldErrors{}
	for step := StepBasics; step <= LastStep; step++ {
		fe, _ := p.ValidateStep(step, form)
		for field, msg := range fe {
			merged[field] = msg
		}
	}
	return merged
}

func (p *ProfileService) validateBasics(form ProfileUpdate) FieldErrors {
	fe := FieldErrors{}
	if form.Name == "" {
		fe["name"] = "Name is required"
	}
	if form.Age < 13 || form.Age > 120 {
		fe["age"] = "Enter an age between 13 and 120"
	}
	if form.Weight <= 0 {
		fe["weight"] = "Weight must be greater than zero"
	}
	if form.Height <= 0 {
		fe["height"] = "Height must be greater than zero"
	}
	return fe
}

func (p *ProfileService) validateGoals(form ProfileUpdate) FieldErrors {
	fe := FieldErrors{}
	if form.PrimaryHealthGoal == "" {
		fe["primary_health_goal"] = "Pick a primary health goal"
	}
	if form.Motivation == "" {
		fe["motivation"] = "Tell us what motivates you"
	}
	if form.LifestyleVision == "" {
		fe["lifestyle_vision"] = "Describe the lifestyle you want"
	}
	return fe
}

func (p *ProfileService) validateInterests(form ProfileUpdate) FieldErrors {
	fe := FieldErrors{}
	if len(form.IntellectualInterests) < MinInterests {
		fe["intellectual_interests"] = fmt.Sprintf("Pick at least %d interests", MinInterests)
	} else {
		for _, tag := range form.IntellectualInterests {
			if !ValidInterest(tag) {
				fe["intellectual_interests"] = fmt.Sprintf("%q is not an available topic", tag)
				break
			}
		}
	}
	if form.LearningStyle == "" {
		fe["learning_style"] = "Pick a learning style"
	}
	if form.TimeAvailability == "" {
		fe["time_availability"] = "Pick your time availability"
	}
	return fe
}

// Submit validates the whole form, sends the full-replace update, and
// overwrites the session record with the response. The returned record
// carries the regenerated goal; nothing from the old goal survives.
func (p *ProfileService) Submit(sess Session, form ProfileUpdate) (*models.SessionUser, error) {
	if fe := p.ValidateAll(form); len(fe) > 0 {
		return nil, fe
	}

	if u, ok := sess.User(); ok {
		form.UserID = u.UserID
		if form.Nickname == "" {
			form.Nickname = u.Nickname
		}
		if form.Avatar == "" {
			form.Avatar = u.Avatar
		}
	}

	user, err := p.api.Update(form)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if err := sess.SetUser(user); err != nil {
		return nil, fmt.Errorf("failed to store updated profile: %w", err)
	}
	p.log.Infow("profile updated", "session", sess.ID, "user", user.UserID)
	return user, nil
}

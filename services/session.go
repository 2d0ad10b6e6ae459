package services

import (
	"encoding/json"

	"github.com/nate-han123/Mind-Scroll/models"
)

// Session is the typed view of one session's stored state: the single
// session provider controllers read and replace through, instead of poking
// at raw keys. Decode failures are reported as "absent": a corrupt entry
// behaves exactly like a missing one.
type Session struct {
	ID    string
	store SessionStore
}

func NewSession(store SessionStore, id string) Session {
	return Session{ID: id, store: store}
}

// User returns the decoded session record, or false when it is missing or
// undecodable.
func (s Session) User() (*models.SessionUser, bool) {
	raw, ok := s.store.Get(s.ID, models.KeyUser)
	if !ok {
		return nil, false
	}
	u, err := models.DecodeSessionUser(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}

// SetUserRaw stores the auth API's response body verbatim. The record must
// decode; otherwise the store would accept a shape no reader understands.
func (s Session) SetUserRaw(raw []byte) error {
	if _, err := models.DecodeSessionUser(raw); err != nil {
		return err
	}
	return s.store.Set(s.ID, models.KeyUser, raw)
}

// SetUser marshals and stores a rebuilt session record (profile updates).
func (s Session) SetUser(u *models.SessionUser) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.store.Set(s.ID, models.KeyUser, raw)
}

func (s Session) stringList(key string) []string {
	raw, ok := s.store.Get(s.ID, key)
	if !ok {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

func (s Session) setJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Set(s.ID, key, raw)
}

func (s Session) Meals() []string             { return s.stringList(models.KeyFoodData) }
func (s Session) SetMeals(v []string) error   { return s.setJSON(models.KeyFoodData, v) }
func (s Session) Exercises() []string         { return s.stringList(models.KeyExerciseData) }
func (s Session) SetExercises(v []string) error {
	return s.setJSON(models.KeyExerciseData, v)
}

func (s Session) Lifestyle() models.Lifestyle {
	raw, ok := s.store.Get(s.ID, models.KeyLifestyleData)
	if !ok {
		return models.Lifestyle{}
	}
	var l models.Lifestyle
	if err := json.Unmarshal(raw, &l); err != nil {
		return models.Lifestyle{}
	}
	return l
}

func (s Session) SetLifestyle(l models.Lifestyle) error {
	return s.setJSON(models.KeyLifestyleData, l)
}

// DailyLog bundles today's three collections for the summary view.
func (s Session) DailyLog() models.DailyLog {
	return models.DailyLog{
		Meals:     s.Meals(),
		Exercises: s.Exercises(),
		Lifestyle: s.Lifestyle(),
	}
}

func (s Session) Interests() []string           { return s.stringList(models.KeyInterests) }
func (s Session) SetInterests(v []string) error { return s.setJSON(models.KeyInterests, v) }

func (s Session) Duration() (string, bool) {
	raw, ok := s.store.Get(s.ID, models.KeyDuration)
	if !ok {
		return "", false
	}
	var d string
	if err := json.Unmarshal(raw, &d); err != nil {
		return "", false
	}
	return d, d != ""
}

func (s Session) SetDuration(d string) error { return s.setJSON(models.KeyDuration, d) }

func (s Session) markSet(key string) map[string]bool {
	ids := s.stringList(key)
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (s Session) setMarkSet(key string, set map[string]bool) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return s.setJSON(key, ids)
}

func (s Session) LikedReels() map[string]bool { return s.markSet(models.KeyLikedReels) }
func (s Session) SavedReels() map[string]bool { return s.markSet(models.KeySavedReels) }

// ToggleLiked flips the like mark for an item id and reports the new state.
func (s Session) ToggleLiked(id string) (bool, error) {
	return s.toggle(models.KeyLikedReels, id)
}

func (s Session) ToggleSaved(id string) (bool, error) {
	return s.toggle(models.KeySavedReels, id)
}

func (s Session) toggle(key, id string) (bool, error) {
	set := s.markSet(key)
	if set[id] {
		delete(set, id)
	} else {
		set[id] = true
	}
	return set[id], s.setMarkSet(key, set)
}

// Clear removes every app key for this session.
func (s Session) Clear() error {
	return s.store.Clear(s.ID)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nate-han123/Mind-Scroll/models"
)

func newTestSession(t *testing.T) Session {
	t.Helper()
	return NewSession(NewMemorySessionStore(), "sess-test")
}

func TestSessionUserVerbatimStorage(t *testing.T) {
	sess := newTestSession(t)
	raw := []byte(`{"user_id":"u1","name":"Ada","extra_field":"kept"}`)
	require.NoError(t, sess.SetUserRaw(raw))

	// the record is stored byte-for-byte, unknown fields included
	stored, ok := sess.store.Get(sess.ID, models.KeyUser)
	require.True(t, ok)
	assert.Equal(t, raw, stored)

	u, ok := sess.User()
	require.True(t, ok)
	assert.Equal(t, "u1", u.UserID)
}

func TestSessionRejectsUndecodableUser(t *testing.T) {
	sess := newTestSession(t)
	assert.Error(t, sess.SetUserRaw([]byte(`{"no_user_id": true}`)))
	assert.Error(t, sess.SetUserRaw([]byte(`not json`)))

	_, ok := sess.User()
	assert.False(t, ok)
}

func TestSessionCorruptEntryBehavesAsAbsent(t *testing.T) {
	sess := newTestSession(t)

	// corrupt writes slipped in behind the typed accessors
	require.NoError(t, sess.store.Set(sess.ID, models.KeyUser, []byte(`{broken`)))
	require.NoError(t, sess.store.Set(sess.ID, models.KeyFoodData, []byte(`{broken`)))
	require.NoError(t, sess.store.Set(sess.ID, models.KeyLifestyleData, []byte(`[]`)))
	require.NoError(t, sess.store.Set(sess.ID, models.KeyDuration, []byte(`{broken`)))

	_, ok := sess.User()
	assert.False(t, ok)
	assert.Empty(t, sess.Meals())
	assert.True(t, sess.Lifestyle().IsZero())
	_, ok = sess.Duration()
	assert.False(t, ok)
}

func TestSessionLogCollections(t *testing.T) {
	sess := newTestSession(t)
	assert.Empty(t, sess.Meals())

	require.NoError(t, sess.SetMeals([]string{"oatmeal", "salad"}))
	assert.Equal(t, []string{"oatmeal", "salad"}, sess.Meals())

	require.NoError(t, sess.SetExercises([]string{"run 5k"}))
	require.NoError(t, sess.SetLifestyle(models.Lifestyle{SleepHours: 7.5, StressLevel: 3}))

	day := sess.DailyLog()
	assert.False(t, day.Empty())
	assert.Equal(t, 7.5, day.Lifestyle.SleepHours)
}

func TestSessionMarkToggles(t *testing.T) {
	sess := newTestSession(t)

	liked, err := sess.ToggleLiked("vid-1")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.True(t, sess.LikedReels()["vid-1"])

	liked, err = sess.ToggleLiked("vid-1")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.False(t, sess.LikedReels()["vid-1"])

	// like and save sets are independent
	_, err = sess.ToggleSaved("vid-1")
	require.NoError(t, err)
	assert.True(t, sess.SavedReels()["vid-1"])
	assert.False(t, sess.LikedReels()["vid-1"])
}

func TestSessionClearRemovesEverything(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.SetUserRaw([]byte(`{"user_id":"u1"}`)))
	require.NoError(t, sess.SetMeals([]string{"toast"}))
	require.NoError(t, sess.SetInterests([]string{"Science", "Art", "Music"}))
	require.NoError(t, sess.SetDuration("short"))

	require.NoError(t, sess.Clear())

	for _, key := range models.AppKeys {
		_, ok := sess.store.Get(sess.ID, key)
		assert.False(t, ok, "key %s survived clear", key)
	}
	_, ok := sess.User()
	assert.False(t, ok)
	assert.Empty(t, sess.Meals())
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSessionUserNestedProfile(t *testing.T) {
	raw := []byte(`{
		"user_id": "u1",
		"name": "Ada",
		"profile": {"age": 30, "intellectual_interests": ["Science"]}
	}`)

	u, err := DecodeSessionUser(raw)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)
	require.NotNil(t, u.Profile)
	assert.Equal(t, 30, u.Profile.Age)
	assert.Equal(t, []string{"Science"}, u.Profile.IntellectualInterests)
}

func TestDecodeSessionUserFlatProfile(t *testing.T) {
	// Older login responses carried profile fields at the top level.
	raw := []byte(`{
		"user_id": "u2",
		"name": "Ada",
		"age": 41,
		"primary_health_goal": "more energy"
	}`)

	u, err := DecodeSessionUser(raw)
	require.NoError(t, err)
	require.NotNil(t, u.Profile)
	assert.Equal(t, 41, u.Profile.Age)
	assert.Equal(t, "more energy", u.Profile.PrimaryHealthGoal)
}

func TestDecodeSessionUserMissingID(t *testing.T) {
	_, err := DecodeSessionUser([]byte(`{"name": "nobody"}`))
	assert.ErrorIs(t, err, ErrInvalidSessionUser)
}

func TestDecodeSessionUserMalformed(t *testing.T) {
	_, err := DecodeSessionUser([]byte(`{"user_id": `))
	assert.Error(t, err)
}

func TestDisplayNamePrefersNickname(t *testing.T) {
	u := &SessionUser{Name: "Ada Lovelace", Nickname: "Ada"}
	assert.Equal(t, "Ada", u.DisplayName())

	u.Nickname = ""
	assert.Equal(t, "Ada Lovelace", u.DisplayName())
}

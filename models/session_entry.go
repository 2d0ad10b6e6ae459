package models

import (
	"gorm.io/gorm"
)

// SessionEntry is one key/value pair of a session's persisted state.
// Values are stored as raw JSON; readers must treat undecodable values
// as absent.
type SessionEntry struct {
	gorm.Model
	SessionID string `gorm:"uniqueIndex:idx_session_key;not null"`
	Key       string `gorm:"uniqueIndex:idx_session_key;not null"`
	Value     []byte `gorm:"type:jsonb"`
}

// Store keys. The names are part of the client contract and predate this
// service, so they stay camel-cased as-is.
const (
	KeyUser          = "user"
	KeyFoodData      = "userFoodData"
	KeyExerciseData  = "userExerciseData"
	KeyLifestyleData = "userLifestyleData"
	KeyInterests     = "intellectualInterests"
	KeyDuration      = "selectedDuration"
	KeyLikedReels    = "likedReels"
	KeySavedReels    = "savedReels"
)

// AppKeys lists every key logout must clear.
var AppKeys = []string{
	KeyUser,
	KeyFoodData,
	KeyExerciseData,
	KeyLifestyleData,
	KeyInterests,
	KeyDuration,
	KeyLikedReels,
	KeySavedReels,
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a community chat row, optionally carrying the author profile
// when the joined query succeeds.
type ChatMessage struct {
	ID          uuid.UUID `json:"id"`
	CommunityID uuid.UUID `json:"community_id"`
	UserID      uuid.UUID `json:"user_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	Profile     *Profile  `json:"profile,omitempty"`
}

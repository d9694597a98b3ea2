package model

import "github.com/google/uuid"

// Profile is an identity record owned by the external identity service.
// This system only ever reads it.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
}

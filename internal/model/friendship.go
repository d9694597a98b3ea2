package model

import "github.com/google/uuid"

// Friendship is symmetric: either side of the relation may be the caller, so
// queries match both directions and handlers pick the counterpart.
type Friendship struct {
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Status     string    `json:"status"`
}

// FriendStatus is the status endpoint's response body. IsSender is only
// present when a stored relation exists.
type FriendStatus struct {
	Status   string `json:"status"`
	IsSender *bool  `json:"isSender,omitempty"`
}

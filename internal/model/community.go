package model

import (
	"time"

	"github.com/google/uuid"
)

type Community struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatorID uuid.UUID `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
	// Set only by the community listing, which always reports a count,
	// zero included. Detail and membership listings leave it out.
	MemberCount *int `json:"member_count,omitempty"`
}

type CommunityMember struct {
	CommunityID uuid.UUID `json:"community_id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Role        string    `json:"role"`
}

type PromoteMemberRequest struct {
	TargetProfileID uuid.UUID `json:"targetProfileId" validate:"required"`
	Role            string    `json:"role,omitempty"`
}

package rest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nadir-k/streamhub_api/internal/model"
)

var ErrFriendshipNotFound = errors.New("friendship not found")

// ListAcceptedFriends returns the profiles on the other side of the caller's
// accepted friendships. The counterpart is selected in SQL so the caller may
// be either the sender or the receiver.
func (api *API) ListAcceptedFriends(ctx context.Context, userID uuid.UUID) ([]model.Profile, error) {
	query := `
        SELECT p.id, p.username, p.avatar_url
        FROM friendships f
        JOIN profiles p
          ON p.id = CASE WHEN f.sender_id = $1 THEN f.receiver_id ELSE f.sender_id END
        WHERE f.status = 'accepted'
          AND (f.sender_id = $1 OR f.receiver_id = $1)
    `

	rows, err := api.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying friends: %w", err)
	}
	defer rows.Close()

	var friends []model.Profile
	for rows.Next() {
		var friend model.Profile
		err := rows.Scan(&friend.ID, &friend.Username, &friend.AvatarURL)
		if err != nil {
			return nil, fmt.Errorf("scanning friend profile: %w", err)
		}
		friends = append(friends, friend)
	}

	return friends, rows.Err()
}

// GetFriendship looks up the relation between two profiles in either
// direction.
func (api *API) GetFriendship(ctx context.Context, a, b uuid.UUID) (model.Friendship, error) {
	query := `
        SELECT sender_id, receiver_id, status
        FROM friendships
        WHERE (sender_id = $1 AND receiver_id = $2)
           OR (sender_id = $2 AND receiver_id = $1)
    `

	var friendship model.Friendship
	err := api.DB.QueryRow(ctx, query, a, b).Scan(
		&friendship.SenderID, &friendship.ReceiverID, &friendship.Status,
	)
	if err == pgx.ErrNoRows {
		return model.Friendship{}, ErrFriendshipNotFound
	}
	return friendship, err
}

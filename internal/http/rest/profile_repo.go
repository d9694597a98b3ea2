package rest

import (
	"context"

	"github.com/google/uuid"
)

// Count-only queries, no row materialization.

func (api *API) CountPosts(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`

	var count int64
	err := api.DB.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

func (api *API) CountAcceptedFriends(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM friendships
        WHERE status = 'accepted'
          AND (sender_id = $1 OR receiver_id = $1)
    `

	var count int64
	err := api.DB.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

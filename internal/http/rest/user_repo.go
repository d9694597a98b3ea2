package rest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nadir-k/streamhub_api/internal/model"
)

// ListUserCommunities flattens the membership join into a plain community
// list, newest first.
func (api *API) ListUserCommunities(ctx context.Context, userID uuid.UUID) ([]model.Community, error) {
	query := `
        SELECT c.id, c.name, c.image_url, c.creator_id, c.created_at
        FROM community_members m
        JOIN communities c ON c.id = m.community_id
        WHERE m.profile_id = $1
        ORDER BY c.created_at DESC
    `

	rows, err := api.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying user communities: %w", err)
	}
	defer rows.Close()

	var communities []model.Community
	for rows.Next() {
		var community model.Community
		err := rows.Scan(
			&community.ID, &community.Name, &community.ImageURL,
			&community.CreatorID, &community.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning community: %w", err)
		}
		communities = append(communities, community)
	}

	return communities, rows.Err()
}

package rest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nadir-k/streamhub_api/internal/model"
)

var (
	ErrCommunityNotFound = errors.New("community not found")
	ErrMemberNotFound    = errors.New("community member not found")
)

func (api *API) GetCommunityByID(ctx context.Context, communityID uuid.UUID) (model.Community, error) {
	query := `
        SELECT id, name, image_url, creator_id, created_at
        FROM communities
        WHERE id = $1
    `

	var community model.Community
	err := api.DB.QueryRow(ctx, query, communityID).Scan(
		&community.ID, &community.Name, &community.ImageURL,
		&community.CreatorID, &community.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return model.Community{}, ErrCommunityNotFound
	}
	return community, err
}

// ListCommunities returns communities with their member counts, newest first.
func (api *API) ListCommunities(ctx context.Context, limit int) ([]model.Community, error) {
	query := `
        SELECT c.id, c.name, c.image_url, c.creator_id, c.created_at,
               COUNT(m.profile_id) AS member_count
        FROM communities c
        LEFT JOIN community_members m ON m.community_id = c.id
        GROUP BY c.id, c.name, c.image_url, c.creator_id, c.created_at
        ORDER BY c.created_at DESC
        LIMIT $1
    `

	rows, err := api.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying communities: %w", err)
	}
	defer rows.Close()

	var communities []model.Community
	for rows.Next() {
		var community model.Community
		var memberCount int
		err := rows.Scan(
			&community.ID, &community.Name, &community.ImageURL,
			&community.CreatorID, &community.CreatedAt, &memberCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning community: %w", err)
		}
		community.MemberCount = &memberCount
		communities = append(communities, community)
	}

	return communities, rows.Err()
}

// UpdateMemberRole is a single atomic update, no transaction needed.
func (api *API) UpdateMemberRole(ctx context.Context, communityID, profileID uuid.UUID, role string) (model.CommunityMember, error) {
	query := `
        UPDATE community_members
        SET role = $1
        WHERE community_id = $2 AND profile_id = $3
        RETURNING community_id, profile_id, role
    `

	var member model.CommunityMember
	err := api.DB.QueryRow(ctx, query, role, communityID, profileID).Scan(
		&member.CommunityID, &member.ProfileID, &member.Role,
	)
	if err == pgx.ErrNoRows {
		return model.CommunityMember{}, ErrMemberNotFound
	}
	return member, err
}

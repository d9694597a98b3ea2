package rest

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/nadir-k/streamhub_api/internal/model"
)

// ListChatMessages fetches the newest messages for a community with their
// author profiles. If the joined query fails for any reason the unjoined
// query is issued instead, so a missing profile relation never fails the
// request.
func (api *API) ListChatMessages(ctx context.Context, communityID uuid.UUID, limit int) ([]model.ChatMessage, error) {
	messages, err := api.listChatMessagesWithProfiles(ctx, communityID, limit)
	if err == nil {
		return messages, nil
	}

	log.Println("joined chat query failed, retrying without profiles:", err)
	return api.listChatMessagesPlain(ctx, communityID, limit)
}

func (api *API) listChatMessagesWithProfiles(ctx context.Context, communityID uuid.UUID, limit int) ([]model.ChatMessage, error) {
	query := `
        SELECT m.id, m.community_id, m.user_id, m.content, m.created_at,
               p.id, p.username, p.avatar_url
        FROM chat_messages m
        LEFT JOIN profiles p ON p.id = m.user_id
        WHERE m.community_id = $1
        ORDER BY m.created_at DESC
        LIMIT $2
    `

	rows, err := api.DB.Query(ctx, query, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying chat messages with profiles: %w", err)
	}
	defer rows.Close()

	var messages []model.ChatMessage
	for rows.Next() {
		var msg model.ChatMessage
		var profileID *uuid.UUID
		var username *string
		var avatarURL *string

		err := rows.Scan(
			&msg.ID, &msg.CommunityID, &msg.UserID, &msg.Content, &msg.CreatedAt,
			&profileID, &username, &avatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}

		if profileID != nil && username != nil {
			msg.Profile = &model.Profile{
				ID:        *profileID,
				Username:  *username,
				AvatarURL: avatarURL,
			}
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

func (api *API) listChatMessagesPlain(ctx context.Context, communityID uuid.UUID, limit int) ([]model.ChatMessage, error) {
	query := `
        SELECT id, community_id, user_id, content, created_at
        FROM chat_messages
        WHERE community_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `

	rows, err := api.DB.Query(ctx, query, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying chat messages: %w", err)
	}
	defer rows.Close()

	var messages []model.ChatMessage
	for rows.Next() {
		var msg model.ChatMessage
		err := rows.Scan(&msg.ID, &msg.CommunityID, &msg.UserID, &msg.Content, &msg.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

package rest

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/nadir-k/streamhub_api/internal/model"
)

// ListPostComments fetches a post's comments oldest-first with their author
// profiles, falling back to the unjoined query when the join fails.
func (api *API) ListPostComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	comments, err := api.listPostCommentsWithAuthors(ctx, postID)
	if err == nil {
		return comments, nil
	}

	log.Println("joined comment query failed, retrying without authors:", err)
	return api.listPostCommentsPlain(ctx, postID)
}

func (api *API) listPostCommentsWithAuthors(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	query := `
        SELECT c.id, c.post_id, c.author_id, c.content, c.created_at,
               p.id, p.username, p.avatar_url
        FROM comments c
        LEFT JOIN profiles p ON p.id = c.author_id
        WHERE c.post_id = $1
        ORDER BY c.created_at ASC
    `

	rows, err := api.DB.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("querying comments with authors: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var comment model.Comment
		var authorID *uuid.UUID
		var username *string
		var avatarURL *string

		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content, &comment.CreatedAt,
			&authorID, &username, &avatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}

		if authorID != nil && username != nil {
			comment.Author = &model.Profile{
				ID:        *authorID,
				Username:  *username,
				AvatarURL: avatarURL,
			}
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

func (api *API) listPostCommentsPlain(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	query := `
        SELECT id, post_id, author_id, content, created_at
        FROM comments
        WHERE post_id = $1
        ORDER BY created_at ASC
    `

	rows, err := api.DB.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("querying comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var comment model.Comment
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content, &comment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nadir-k/streamhub_api/internal/model"
)

func TestReverseMessages(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Newest first, as fetched.
	messages := []model.ChatMessage{
		{ID: uuid.New(), Content: "third", CreatedAt: base.Add(2 * time.Minute)},
		{ID: uuid.New(), Content: "second", CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), Content: "first", CreatedAt: base},
	}

	reverseMessages(messages)

	for i := 1; i < len(messages); i++ {
		if messages[i].CreatedAt.Before(messages[i-1].CreatedAt) {
			t.Fatalf("messages not in non-decreasing order at index %d", i)
		}
	}
	if messages[0].Content != "first" || messages[2].Content != "third" {
		t.Errorf("unexpected order: %q ... %q", messages[0].Content, messages[2].Content)
	}
}

func TestGetCommunityChatJoinedQueryFallback(t *testing.T) {
	communityID := uuid.New()
	userID := uuid.New()
	msgID := uuid.New()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	q := &fakeQuerier{
		queryFn: func(sql string, _ []any) (pgx.Rows, error) {
			if strings.Contains(sql, "LEFT JOIN profiles") {
				return nil, errors.New(`relation "profiles" does not exist`)
			}
			return &fakeRows{scans: []func(dest ...any) error{
				func(dest ...any) error {
					*dest[0].(*uuid.UUID) = msgID
					*dest[1].(*uuid.UUID) = communityID
					*dest[2].(*uuid.UUID) = userID
					*dest[3].(*string) = "hello"
					*dest[4].(*time.Time) = createdAt
					return nil
				},
			}}, nil
		},
	}

	api := testAPI()
	api.DB = q

	r := testRequest(http.MethodGet, "/chat/"+communityID.String(), nil, "",
		map[string]string{"communityID": communityID.String()})
	w := httptest.NewRecorder()
	Handler(api.GetCommunityChat).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"content":"hello"`) {
		t.Errorf("body = %s; want the message from the unjoined retry", body)
	}

	if len(q.calls) != 2 {
		t.Fatalf("issued %d queries; want the joined attempt plus the retry", len(q.calls))
	}
	if !strings.Contains(q.calls[0].sql, "LEFT JOIN profiles") ||
		strings.Contains(q.calls[1].sql, "LEFT JOIN profiles") {
		t.Error("expected the joined query first and the unjoined retry second")
	}
}

func TestReverseMessagesShort(t *testing.T) {
	reverseMessages(nil)

	one := []model.ChatMessage{{Content: "only"}}
	reverseMessages(one)
	if one[0].Content != "only" {
		t.Error("single-element slice should be unchanged")
	}
}

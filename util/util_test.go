package util

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/nadir-k/streamhub_api/util/values"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		status   string
		expected int
	}{
		{"Success", values.Success, http.StatusOK},
		{"Created", values.Created, http.StatusCreated},
		{"Error", values.Error, http.StatusInternalServerError},
		{"Failed", values.Failed, http.StatusInternalServerError},
		{"BadRequestBody", values.BadRequestBody, http.StatusBadRequest},
		{"NotAuthorised", values.NotAuthorised, http.StatusUnauthorized},
		{"TokenExpired", values.TokenExpired, http.StatusUnauthorized},
		{"NotAllowed", values.NotAllowed, http.StatusForbidden},
		{"NotFound", values.NotFound, http.StatusNotFound},
		{"Conflict", values.Conflict, http.StatusConflict},
		{"Unprocessable", values.Unprocessable, http.StatusUnprocessableEntity},
		{"Unknown", "something-else", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusCode(tc.status); got != tc.expected {
				t.Errorf("StatusCode(%q) = %d; want %d", tc.status, got, tc.expected)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	if NotBlank("   ") {
		t.Error("NotBlank of whitespace should be false")
	}
	if NotBlank("") {
		t.Error("NotBlank of empty string should be false")
	}
	if !NotBlank("room-1") {
		t.Error("NotBlank of non-empty string should be true")
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	id := uuid.New()

	ctx := context.WithValue(context.Background(), "user_id", id.String())
	got, err := GetUserIDFromContext(ctx)
	if err != nil {
		t.Fatalf("GetUserIDFromContext returned error %v", err)
	}
	if got != id {
		t.Errorf("GetUserIDFromContext = %v; want %v", got, id)
	}

	if _, err := GetUserIDFromContext(context.Background()); err == nil {
		t.Error("expected error for context without user_id")
	}

	badCtx := context.WithValue(context.Background(), "user_id", "not-a-uuid")
	if _, err := GetUserIDFromContext(badCtx); err == nil {
		t.Error("expected error for malformed user_id")
	}
}

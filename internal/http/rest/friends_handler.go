package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nadir-k/streamhub_api/internal/model"
	"github.com/nadir-k/streamhub_api/util"
	"github.com/nadir-k/streamhub_api/util/tracing"
	"github.com/nadir-k/streamhub_api/util/values"
)

func (api *API) FriendRoutes() chi.Router {
	mux := chi.NewRouter()

	// Anonymous callers degrade to an empty/default result on these routes
	// instead of getting a 401.
	mux.Group(func(r chi.Router) {
		r.Use(api.OptionalLogin)
		r.Method(http.MethodGet, "/list", Handler(api.ListFriends))
		r.Method(http.MethodGet, "/status/{targetID}", Handler(api.GetFriendStatus))
	})

	return mux
}

// ListFriends returns the counterpart profiles of the caller's accepted
// friendships. Without a token the list is empty, never an error.
func (api *API) ListFriends(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWith("friends", []model.Profile{})
	}

	friends, err := api.ListAcceptedFriends(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to get friends", values.Error, &tc)
	}
	if friends == nil {
		friends = []model.Profile{}
	}

	return respondWith("friends", friends)
}

func (api *API) GetFriendStatus(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	targetID, err := util.StringToUUID(chi.URLParam(r, "targetID"))
	if err != nil {
		return respondWithError(err, "invalid target ID", values.BadRequestBody, &tc)
	}

	callerID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		// Anonymous: no relation can exist, skip the store.
		return respondWith("", model.FriendStatus{Status: values.FriendStatusNone})
	}

	if callerID == targetID {
		return respondWith("", model.FriendStatus{Status: values.FriendStatusSelf})
	}

	friendship, err := api.GetFriendship(r.Context(), callerID, targetID)
	if err == ErrFriendshipNotFound {
		return respondWith("", model.FriendStatus{Status: values.FriendStatusNone})
	}
	if err != nil {
		return respondWithError(err, "failed to get friendship", values.Error, &tc)
	}

	return respondWith("", resolveFriendStatus(callerID, friendship))
}

func resolveFriendStatus(callerID uuid.UUID, friendship model.Friendship) model.FriendStatus {
	isSender := friendship.SenderID == callerID
	return model.FriendStatus{
		Status:   friendship.Status,
		IsSender: &isSender,
	}
}

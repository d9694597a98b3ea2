package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nadir-k/streamhub_api/internal/model"
	"github.com/nadir-k/streamhub_api/util"
	"github.com/nadir-k/streamhub_api/util/tracing"
	"github.com/nadir-k/streamhub_api/util/values"
)

const chatHistoryLimit = 50

func (api *API) ChatRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/{communityID}", Handler(api.GetCommunityChat))

	return mux
}

// GetCommunityChat returns the last 50 messages of a community, oldest first.
func (api *API) GetCommunityChat(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	communityID, err := util.StringToUUID(chi.URLParam(r, "communityID"))
	if err != nil {
		return respondWithError(err, "invalid community ID", values.BadRequestBody, &tc)
	}

	messages, err := api.ListChatMessages(r.Context(), communityID, chatHistoryLimit)
	if err != nil {
		return respondWithError(err, "failed to get chat messages", values.Error, &tc)
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}

	// Fetched newest-first for the LIMIT, presented oldest-first.
	reverseMessages(messages)

	return respondWith("messages", messages)
}

func reverseMessages(messages []model.ChatMessage) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}

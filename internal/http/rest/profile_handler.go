package rest

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nadir-k/streamhub_api/util"
	"github.com/nadir-k/streamhub_api/util/tracing"
	"github.com/nadir-k/streamhub_api/util/values"
)

func (api *API) ProfileRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/stats", Handler(api.GetProfileStats))

	return mux
}

// GetProfileStats returns a single count for a profile. Store failures
// degrade to a zero count rather than an error status.
func (api *API) GetProfileStats(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.StringToUUID(r.URL.Query().Get("userId"))
	if err != nil {
		return respondWithError(err, "invalid userId", values.BadRequestBody, &tc)
	}

	var count int64
	switch stat := r.URL.Query().Get("stat"); stat {
	case "posts":
		count, err = api.CountPosts(r.Context(), userID)
	case "friends":
		count, err = api.CountAcceptedFriends(r.Context(), userID)
	default:
		return respondWithError(fmt.Errorf("unknown stat %q", stat), "unknown stat", values.BadRequestBody, &tc)
	}

	if err != nil {
		log.Printf("[%s] stats query failed, returning zero count: %v", tc.RequestID, err)
		count = 0
	}

	return respondWith("count", count)
}

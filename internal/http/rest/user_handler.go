package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nadir-k/streamhub_api/internal/model"
	"github.com/nadir-k/streamhub_api/util"
	"github.com/nadir-k/streamhub_api/util/tracing"
	"github.com/nadir-k/streamhub_api/util/values"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Route("/", func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/communities", Handler(api.GetUserCommunities))
	})

	return mux
}

// GetUserCommunities lists the communities the caller belongs to.
func (api *API) GetUserCommunities(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	communities, err := api.ListUserCommunities(r.Context(), userID)
	if err != nil {
		return respondWithError(err, "failed to get user communities", values.Error, &tc)
	}
	if communities == nil {
		communities = []model.Community{}
	}

	reverseCommunities(communities)

	return respondWith("communities", communities)
}

package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nadir-k/streamhub_api/internal/model"
	"github.com/nadir-k/streamhub_api/util"
	"github.com/nadir-k/streamhub_api/util/tracing"
	"github.com/nadir-k/streamhub_api/util/values"
)

func (api *API) FeedRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/comments/{postID}", Handler(api.GetPostComments))

	return mux
}

// GetPostComments returns the comments of a post in chronological order.
func (api *API) GetPostComments(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	postID, err := util.StringToUUID(chi.URLParam(r, "postID"))
	if err != nil {
		return respondWithError(err, "invalid post ID", values.BadRequestBody, &tc)
	}

	comments, err := api.ListPostComments(r.Context(), postID)
	if err != nil {
		return respondWithError(err, "failed to get comments", values.Error, &tc)
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	return respondWith("comments", comments)
}

package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nadir-k/streamhub_api/internal/model"
	"github.com/nadir-k/streamhub_api/util"
	"github.com/nadir-k/streamhub_api/util/tracing"
	"github.com/nadir-k/streamhub_api/util/values"
)

const (
	defaultCommunityLimit = 50
	maxCommunityLimit     = 100
)

func (api *API) CommunityRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.ListCommunitiesHandler))
	mux.Method(http.MethodGet, "/id/{communityID}", Handler(api.GetCommunityByIDHandler))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/id/{communityID}/promote", Handler(api.PromoteMemberHandler))
	})

	return mux
}

func (api *API) ListCommunitiesHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	limit := parseCommunityLimit(r.URL.Query().Get("limit"))

	communities, err := api.ListCommunities(r.Context(), limit)
	if err != nil {
		return respondWithError(err, "failed to get communities", values.Error, &tc)
	}
	if communities == nil {
		communities = []model.Community{}
	}

	reverseCommunities(communities)

	return respondWith("communities", communities)
}

func (api *API) GetCommunityByIDHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	communityID, err := util.StringToUUID(chi.URLParam(r, "communityID"))
	if err != nil {
		return respondWithError(err, "invalid community ID", values.BadRequestBody, &tc)
	}

	community, err := api.GetCommunityByID(r.Context(), communityID)
	if err == ErrCommunityNotFound {
		return respondWithError(err, "community not found", values.NotFound, &tc)
	}
	if err != nil {
		return respondWithError(err, "failed to get community", values.Error, &tc)
	}

	return respondWith("community", community)
}

func (api *API) PromoteMemberHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	communityID, err := util.StringToUUID(chi.URLParam(r, "communityID"))
	if err != nil {
		return respondWithError(err, "invalid community ID", values.BadRequestBody, &tc)
	}

	var req model.PromoteMemberRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if validateErr := util.ValidateStruct(req); validateErr != nil {
		return respondWithError(validateErr, "targetProfileId is required", values.BadRequestBody, &tc)
	}

	callerID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	member, status, message, err := api.PromoteMemberHelper(r.Context(), communityID, callerID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return respondWith("member", member)
}

func parseCommunityLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultCommunityLimit
	}
	if limit > maxCommunityLimit {
		return maxCommunityLimit
	}
	return limit
}

func reverseCommunities(communities []model.Community) {
	for i, j := 0, len(communities)-1; i < j; i, j = i+1, j-1 {
		communities[i], communities[j] = communities[j], communities[i]
	}
}

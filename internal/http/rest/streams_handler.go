package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nadir-k/streamhub_api/internal/model"
	"github.com/nadir-k/streamhub_api/util"
	"github.com/nadir-k/streamhub_api/util/tracing"
	"github.com/nadir-k/streamhub_api/util/values"
)

func (api *API) StreamRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/token", Handler(api.CreateStreamToken))
	mux.Method(http.MethodPost, "/ingress", Handler(api.CreateStreamIngress))

	return mux
}

// CreateStreamToken mints a signed room grant. Everyone may subscribe;
// only the streamer role may publish.
func (api *API) CreateStreamToken(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.StreamTokenRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !util.NotBlank(req.Room) || !util.NotBlank(req.Username) {
		return respondWithError(errors.New("missing room or username"), "room and username are required", values.BadRequestBody, &tc)
	}

	if !api.Config.LiveKitConfigured() {
		return respondWithError(errors.New("livekit credentials missing"), "server misconfigured", values.Error, &tc)
	}

	role := req.Role
	if role == "" {
		role = values.RoleViewer
	}

	token, err := api.Deps.LiveKit.BuildAccessToken(req.Room, req.Username, publishAllowed(role))
	if err != nil {
		return respondWithError(err, "failed to create stream token", values.Error, &tc)
	}

	return respondWith("token", token)
}

// CreateStreamIngress provisions an inbound media endpoint for a room and
// returns its connection credentials.
func (api *API) CreateStreamIngress(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateIngressRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !util.NotBlank(req.RoomName) || !util.NotBlank(req.StreamerName) {
		return respondWithError(errors.New("missing roomName or streamerName"), "roomName and streamerName are required", values.BadRequestBody, &tc)
	}

	if !api.Config.LiveKitConfigured() {
		return respondWithError(errors.New("livekit credentials missing"), "server misconfigured", values.Error, &tc)
	}

	info, err := api.Deps.LiveKit.CreateIngress(r.Context(), req.RoomName, req.StreamerName)
	if err != nil {
		return respondWithError(err, "failed to create ingress", values.Error, &tc)
	}

	ingress := model.Ingress{
		ID:        info.IngressId,
		URL:       info.Url,
		StreamKey: info.StreamKey,
	}

	return respondWith("ingress", ingress)
}

func publishAllowed(role string) bool {
	return role == values.RoleStreamer
}

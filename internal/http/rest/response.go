package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nadir-k/streamhub_api/util"
	"github.com/nadir-k/streamhub_api/util/tracing"
	"github.com/nadir-k/streamhub_api/util/values"
)

// ServerResponse is what every Handler returns. On success the body is the
// resource-keyed envelope {<resource>: <data>} (or Data itself when Resource
// is empty); on failure it is {"error": <message>}. Err is logged server-side
// and never sent to the client.
type ServerResponse struct {
	Err        error  `json:"-"`
	Message    string `json:"-"`
	Status     string `json:"-"`
	StatusCode int    `json:"-"`
	Resource   string `json:"-"`
	Data       any    `json:"-"`
}

func (resp *ServerResponse) envelope() any {
	if resp.StatusCode >= http.StatusBadRequest {
		return map[string]string{"error": resp.Message}
	}
	if resp.Resource != "" {
		return map[string]any{resp.Resource: resp.Data}
	}
	return resp.Data
}

// respondWith builds a success response under the given resource key.
func respondWith(resource string, data any) *ServerResponse {
	return &ServerResponse{
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Resource:   resource,
		Data:       data,
	}
}

func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		log.Printf("[%s] %s: %s: %v", requestID(tc), status, message, err)
	}
	return &ServerResponse{
		Err:        err,
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func requestID(tc *tracing.Context) string {
	if tc == nil {
		return "-"
	}
	return tc.RequestID
}

// writeErrorResponse writes an error envelope directly, for paths outside the
// Handler adapter (middleware rejections).
func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	if err != nil {
		log.Printf("%s: %s: %v", status, message, err)
	}
	respByte, marshalErr := json.Marshal(map[string]string{"error": message})
	if marshalErr != nil {
		http.Error(w, message, http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, respByte, util.StatusCode(status))
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

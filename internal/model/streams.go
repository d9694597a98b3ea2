package model

type StreamTokenRequest struct {
	Room     string `json:"room"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

type CreateIngressRequest struct {
	RoomName     string `json:"roomName"`
	StreamerName string `json:"streamerName"`
	CommunityID  string `json:"communityId,omitempty"`
}

// Ingress is the inbound media endpoint the streamer pushes to.
type Ingress struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	StreamKey string `json:"stream_key"`
}

package livekit

import (
	"context"
	"errors"
	"time"

	"github.com/livekit/protocol/auth"
	lkproto "github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
)

const tokenTTL = time.Hour

var ErrNotConfigured = errors.New("livekit credentials are not configured")

// Client handles communication with the LiveKit server APIs. API key, secret
// and host come from the environment; without them every call fails fast.
type Client struct {
	APIKey    string
	APISecret string
	URL       string

	ingress *lksdk.IngressClient
}

// NewClient creates a new LiveKit client instance
func NewClient(url, apiKey, apiSecret string) *Client {
	c := &Client{
		APIKey:    apiKey,
		APISecret: apiSecret,
		URL:       url,
	}
	if c.Configured() {
		c.ingress = lksdk.NewIngressClient(url, apiKey, apiSecret)
	}
	return c
}

func (c *Client) Configured() bool {
	return c.APIKey != "" && c.APISecret != "" && c.URL != ""
}

// BuildAccessToken mints a signed room grant for the given identity. Every
// participant may subscribe; publishing is decided by the caller.
func (c *Client) BuildAccessToken(room, identity string, canPublish bool) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	at := auth.NewAccessToken(c.APIKey, c.APISecret)
	at.AddGrant(buildVideoGrant(room, canPublish)).
		SetIdentity(identity).
		SetValidFor(tokenTTL)

	return at.ToJWT()
}

func buildVideoGrant(room string, canPublish bool) *auth.VideoGrant {
	grant := &auth.VideoGrant{
		RoomJoin: true,
		Room:     room,
	}
	grant.SetCanPublish(canPublish)
	grant.SetCanSubscribe(true)
	return grant
}

// CreateIngress provisions an RTMP ingress endpoint for the room and returns
// its connection credentials.
func (c *Client) CreateIngress(ctx context.Context, roomName, participant string) (*lkproto.IngressInfo, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	return c.ingress.CreateIngress(ctx, &lkproto.CreateIngressRequest{
		InputType:           lkproto.IngressInput_RTMP_INPUT,
		Name:                roomName,
		RoomName:            roomName,
		ParticipantIdentity: participant,
		ParticipantName:     participant,
	})
}

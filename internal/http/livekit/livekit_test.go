package livekit

import "testing"

func TestBuildVideoGrant(t *testing.T) {
	grant := buildVideoGrant("lobby", true)

	if !grant.RoomJoin || grant.Room != "lobby" {
		t.Errorf("grant room = %q join = %v; want lobby/true", grant.Room, grant.RoomJoin)
	}
	if grant.CanPublish == nil || !*grant.CanPublish {
		t.Error("canPublish should be true for a streamer grant")
	}
	if grant.CanSubscribe == nil || !*grant.CanSubscribe {
		t.Error("canSubscribe should always be true")
	}

	viewer := buildVideoGrant("lobby", false)
	if viewer.CanPublish == nil || *viewer.CanPublish {
		t.Error("canPublish should be false for a viewer grant")
	}
	if viewer.CanSubscribe == nil || !*viewer.CanSubscribe {
		t.Error("canSubscribe should always be true")
	}
}

func TestBuildAccessTokenUnconfigured(t *testing.T) {
	c := NewClient("", "", "")

	if _, err := c.BuildAccessToken("lobby", "ada", false); err != ErrNotConfigured {
		t.Fatalf("err = %v; want ErrNotConfigured", err)
	}
}

func TestBuildAccessToken(t *testing.T) {
	c := NewClient("https://example.livekit.cloud", "lk-api-key", "lk-api-secret-lk-api-secret-1234")

	token, err := c.BuildAccessToken("lobby", "ada", true)
	if err != nil {
		t.Fatalf("BuildAccessToken returned error %v", err)
	}
	if token == "" {
		t.Error("expected a non-empty token")
	}
}

package rest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/nadir-k/streamhub_api/config"
)

const testSecret = "test-signing-secret"

func testAPI() *API {
	return &API{Config: &config.Config{JwtSecret: testSecret}}
}

func signToken(t *testing.T, secret, sub string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func TestVerifyToken(t *testing.T) {
	api := testAPI()

	tokenString := signToken(t, testSecret, "4ac7e0ac-5eb0-47c7-9b07-d3eec2e25eb4", time.Now().Add(time.Hour))

	claims, err := api.verifyToken(tokenString)
	if err != nil {
		t.Fatalf("verifyToken returned error %v", err)
	}
	if claims.UserID != "4ac7e0ac-5eb0-47c7-9b07-d3eec2e25eb4" {
		t.Errorf("claims.UserID = %q; want the signed subject", claims.UserID)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	api := testAPI()

	tokenString := signToken(t, testSecret, "4ac7e0ac-5eb0-47c7-9b07-d3eec2e25eb4", time.Now().Add(-time.Hour))

	_, err := api.verifyToken(tokenString)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
	if err.Error() != "token expired" {
		t.Errorf("error = %q; want %q", err.Error(), "token expired")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	api := testAPI()

	tokenString := signToken(t, "some-other-secret", "4ac7e0ac-5eb0-47c7-9b07-d3eec2e25eb4", time.Now().Add(time.Hour))

	if _, err := api.verifyToken(tokenString); err == nil {
		t.Fatal("expected error for token signed with a foreign secret")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	api := testAPI()

	if _, err := api.verifyToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestVerifyTokenMissingSubject(t *testing.T) {
	api := testAPI()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := api.verifyToken(signed); err == nil {
		t.Fatal("expected error for token without a subject")
	}
}

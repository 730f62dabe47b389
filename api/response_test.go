package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawResponse_OK(t *testing.T) {
	assert.True(t, (&RawResponse{StatusCode: 200}).OK())
	assert.True(t, (&RawResponse{StatusCode: 201}).OK())
	assert.True(t, (&RawResponse{StatusCode: 204}).OK())
	assert.False(t, (&RawResponse{StatusCode: 301}).OK())
	assert.False(t, (&RawResponse{StatusCode: 404}).OK())
	assert.False(t, (&RawResponse{StatusCode: 500}).OK())
}

func TestAccessToken(t *testing.T) {
	body := []byte(`{"access_token":"eyJ0eXAi...","token_type":"bearer","expires_in":86400}`)
	tok, ok := AccessToken(body)
	assert.True(t, ok)
	assert.Equal(t, "eyJ0eXAi...", tok)

	_, ok = AccessToken([]byte(`{"error":"invalid_grant"}`))
	assert.False(t, ok)
	_, ok = AccessToken(nil)
	assert.False(t, ok)
}

func TestSignUpToken(t *testing.T) {
	body := []byte(`{"token":"signup-9f2c","username":"ada@example.com"}`)
	tok, ok := SignUpToken(body)
	assert.True(t, ok)
	assert.Equal(t, "signup-9f2c", tok)

	_, ok = SignUpToken([]byte(`{}`))
	assert.False(t, ok)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"oauth style", `{"error":"invalid_grant","error_description":"username or password incorrect"}`, "username or password incorrect"},
		{"message style", `{"message":"object cats not found"}`, "object cats not found"},
		{"bare error", `{"error":"forbidden"}`, "forbidden"},
		{"not json", `<html>502 Bad Gateway</html>`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage([]byte(tt.body)))
		})
	}
}

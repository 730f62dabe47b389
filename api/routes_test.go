package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Table(t *testing.T) {
	c := NewCaller("", "todoapp")

	tests := []struct {
		name       string
		op         Operation
		wantMethod string
		wantPath   string
		wantBody   any
	}{
		{
			name:       "read one item, no query",
			op:         ReadItem{Object: "cats", ID: "7"},
			wantMethod: http.MethodGet,
			wantPath:   "/1/objects/cats/7",
			wantBody:   nil,
		},
		{
			name:       "create with rendered query",
			op:         CreateItem{Object: "cats", Query: "?pageSize=10", Body: map[string]any{"name": "Tom"}},
			wantMethod: http.MethodPost,
			wantPath:   "/1/objects/cats?pageSize=10",
			wantBody:   map[string]any{"name": "Tom"},
		},
		{
			name:       "list items",
			op:         ReadItems{Object: "cats", Query: "?pageNumber=2"},
			wantMethod: http.MethodGet,
			wantPath:   "/1/objects/cats?pageNumber=2",
			wantBody:   nil,
		},
		{
			name:       "update",
			op:         UpdateItem{Object: "cats", ID: "7", Body: map[string]any{"name": "Max"}},
			wantMethod: http.MethodPut,
			wantPath:   "/1/objects/cats/7",
			wantBody:   map[string]any{"name": "Max"},
		},
		{
			name:       "delete takes no query",
			op:         DeleteItem{Object: "cats", ID: "7"},
			wantMethod: http.MethodDelete,
			wantPath:   "/1/objects/cats/7",
			wantBody:   nil,
		},
		{
			name:       "bulk",
			op:         PerformActions{Actions: []Action{{Method: http.MethodDelete, URL: "https://api.backand.com/1/objects/cats/7"}}},
			wantMethod: http.MethodPost,
			wantPath:   "/1/bulk",
			wantBody:   []Action{{Method: http.MethodDelete, URL: "https://api.backand.com/1/objects/cats/7"}},
		},
		{
			name:       "sign-up",
			op:         SignUp{User: map[string]any{"email": "ada@example.com"}},
			wantMethod: http.MethodPost,
			wantPath:   "/1/user/signup",
			wantBody:   map[string]any{"email": "ada@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := c.Resolve(tt.op)
			assert.Equal(t, tt.wantMethod, route.Method)
			assert.Equal(t, tt.wantPath, route.Path)
			assert.Equal(t, tt.wantBody, route.Body)
		})
	}
}

func TestResolve_RunQueryCarriesBodyOnGET(t *testing.T) {
	c := NewCaller("1", "todoapp")

	route := c.Resolve(RunQuery{Name: "openTodos", Params: map[string]any{"owner": "ada"}})
	assert.Equal(t, http.MethodGet, route.Method)
	assert.Equal(t, "/1/query/data/openTodos", route.Path)
	require.NotNil(t, route.Body, "query params ride in the body even on GET")
	assert.Equal(t, map[string]any{"owner": "ada"}, route.Body)

	// No params, no body.
	route = c.Resolve(RunQuery{Name: "openTodos"})
	assert.Nil(t, route.Body)
}

func TestResolve_SignInSpeaksOAuth(t *testing.T) {
	c := NewCaller("1", "todoapp")

	route := c.Resolve(SignIn{Username: "ada", Password: "hunter2"})
	assert.Equal(t, http.MethodPost, route.Method)
	assert.Equal(t, "/token", route.Path, "the token route is not version-prefixed")

	raw, err := json.Marshal(route.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"username":   "ada",
		"password":   "hunter2",
		"grant_type": "password",
		"appName":    "todoapp"
	}`, string(raw))
}

func TestResolve_VersionPrefix(t *testing.T) {
	c := NewCaller("2", "todoapp")
	route := c.Resolve(ReadItems{Object: "cats"})
	assert.Equal(t, "/2/objects/cats", route.Path)
}

func TestNewRequestID_Unique(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestRequestHeaderLookup(t *testing.T) {
	req := &Request{Headers: []Header{
		{Name: "AppName", Value: "todoapp"},
		{Name: "AnonymousToken", Value: "anon-secret"},
	}}
	assert.Equal(t, "todoapp", req.Header("AppName"))
	assert.Equal(t, "anon-secret", req.Header("AnonymousToken"))
	assert.Equal(t, "", req.Header("Authorization"))
}

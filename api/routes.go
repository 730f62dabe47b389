package api

import (
	"fmt"
	"net/http"

	"github.com/clok/kemba"
)

// DefaultVersion is the API version segment prefixed to every object path.
const DefaultVersion = "1"

var routeKemba = kemba.New("backand:api").Extend("Resolve")

// Route is the resolved wire form of an Operation: everything but the origin
// and the headers.
type Route struct {
	Method string
	Path   string
	Body   any
}

// Caller resolves Operations for one app against one API version. It is the
// static routing table of the SDK; resolution never fails.
type Caller struct {
	Version string
	AppName string
}

// NewCaller returns a Caller for the given API version ("" means
// DefaultVersion) and app name. AppName is only used by the sign-in route,
// which the token service requires to carry the app name in its body.
func NewCaller(version, appName string) *Caller {
	if version == "" {
		version = DefaultVersion
	}
	return &Caller{Version: version, AppName: appName}
}

// signInBody is the OAuth-style payload of the /token route.
type signInBody struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	GrantType string `json:"grant_type"`
	AppName   string `json:"appName"`
}

// Resolve maps op onto its method, path and body. Object names and ids are
// interpolated verbatim: the service defines them as URL-safe identifiers,
// and the legacy clients never escaped them either.
func (c *Caller) Resolve(op Operation) Route {
	prefix := "/" + c.Version
	var route Route

	switch op := op.(type) {
	case CreateItem:
		route = Route{http.MethodPost, prefix + "/objects/" + op.Object + op.Query, op.Body}
	case ReadItem:
		route = Route{http.MethodGet, prefix + "/objects/" + op.Object + "/" + op.ID + op.Query, nil}
	case ReadItems:
		route = Route{http.MethodGet, prefix + "/objects/" + op.Object + op.Query, nil}
	case UpdateItem:
		route = Route{http.MethodPut, prefix + "/objects/" + op.Object + "/" + op.ID + op.Query, op.Body}
	case DeleteItem:
		route = Route{http.MethodDelete, prefix + "/objects/" + op.Object + "/" + op.ID, nil}
	case RunQuery:
		// Body on a GET. The query service reads its parameters from the
		// request body, so that is where they go.
		var body any
		if op.Params != nil {
			body = op.Params
		}
		route = Route{http.MethodGet, prefix + "/query/data/" + op.Name, body}
	case PerformActions:
		route = Route{http.MethodPost, prefix + "/bulk", op.Actions}
	case SignUp:
		route = Route{http.MethodPost, prefix + "/user/signup", op.User}
	case SignIn:
		// The token route lives outside the versioned tree.
		route = Route{http.MethodPost, "/token", signInBody{
			Username:  op.Username,
			Password:  op.Password,
			GrantType: "password",
			AppName:   c.AppName,
		}}
	default:
		// The variant set is sealed; reaching this is a bug in this package.
		panic(fmt.Sprintf("backand/api: unhandled operation %T", op))
	}

	routeKemba.Printf("%T -> %s %s", op, route.Method, route.Path)
	return route
}

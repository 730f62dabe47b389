package backand

import (
	"context"
	"errors"
	"log/slog"

	"github.com/clok/kemba"
	"github.com/tidwall/gjson"

	"github.com/backand/backand-go/api"
	"github.com/backand/backand-go/config"
	"github.com/backand/backand-go/query"
	"github.com/backand/backand-go/secrets"
)

var clientKemba = kemba.New("backand:client")

// Client talks to one Backand app. All operation methods are a single
// request/response exchange; there is no retrying and no queueing.
// Methods are safe for concurrent use.
type Client struct {
	cfg       *config.Config
	session   *Session
	caller    *api.Caller
	transport Transport
	logger    *slog.Logger
}

// New builds a client whose user token persists in the OS keychain.
func New(cfg *config.Config) (*Client, error) {
	return NewWithStore(cfg, secrets.NewKeyring())
}

// NewWithStore builds a client over a caller-chosen secret store.
func NewWithStore(cfg *config.Config, store secrets.Store) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:       cfg,
		session:   NewSession(cfg, store),
		caller:    api.NewCaller(cfg.Version, cfg.AppName),
		transport: NewHTTPTransport(),
	}, nil
}

// SetLogger attaches a structured logger. Without one the client logs
// nothing; kemba debug tracing is independent of this.
func (c *Client) SetLogger(l *slog.Logger) {
	c.logger = l
}

// SetTransport swaps the HTTP transport.
func (c *Client) SetTransport(t Transport) {
	c.transport = t
}

// Session exposes the authentication state.
func (c *Client) Session() *Session {
	return c.session
}

// CreateItem inserts an item into the named object.
func (c *Client) CreateItem(ctx context.Context, object string, item any, opts ...query.Option) (*Response, error) {
	return c.do(ctx, api.CreateItem{Object: object, Query: renderQuery(opts), Body: item})
}

// ReadItem fetches one item by id.
func (c *Client) ReadItem(ctx context.Context, object, id string, opts ...query.Option) (*Response, error) {
	return c.do(ctx, api.ReadItem{Object: object, ID: id, Query: renderQuery(opts)})
}

// ReadItems lists items of the named object.
func (c *Client) ReadItems(ctx context.Context, object string, opts ...query.Option) (*Response, error) {
	return c.do(ctx, api.ReadItems{Object: object, Query: renderQuery(opts)})
}

// UpdateItem overwrites fields of one item.
func (c *Client) UpdateItem(ctx context.Context, object, id string, item any, opts ...query.Option) (*Response, error) {
	return c.do(ctx, api.UpdateItem{Object: object, ID: id, Query: renderQuery(opts), Body: item})
}

// DeleteItem removes one item.
func (c *Client) DeleteItem(ctx context.Context, object, id string) (*Response, error) {
	return c.do(ctx, api.DeleteItem{Object: object, ID: id})
}

// RunQuery executes a named server-side query with the given params.
func (c *Client) RunQuery(ctx context.Context, name string, params map[string]any) (*Response, error) {
	return c.do(ctx, api.RunQuery{Name: name, Params: params})
}

// PerformActions sends a batch of actions in one request.
func (c *Client) PerformActions(ctx context.Context, actions ...api.Action) (*Response, error) {
	return c.do(ctx, api.PerformActions{Actions: actions})
}

// SignUp registers a new user. The session is moved into sign-up mode
// before the request goes out, whatever mode it was in. With
// signInAfter the user is signed in on the spot when the response
// carries a token; otherwise the session stays in sign-up mode.
func (c *Client) SignUp(ctx context.Context, user any, signInAfter bool) (*Response, error) {
	c.session.beginSignUp()
	resp, err := c.do(ctx, api.SignUp{User: user})
	if err != nil {
		return nil, err
	}
	token, _ := api.SignUpToken(resp.Body)
	if err := c.session.completeSignUp(token, signInAfter); err != nil {
		return resp, err
	}
	return resp, nil
}

// SignIn exchanges credentials for an access token. On success the
// token is stored and the session becomes authenticated. A 2xx reply
// without a token leaves the session untouched.
func (c *Client) SignIn(ctx context.Context, username, password string) (*Response, error) {
	resp, err := c.do(ctx, api.SignIn{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	token, ok := api.AccessToken(resp.Body)
	if !ok {
		clientKemba.Extend("SignIn").Printf("2xx token response without access_token")
		return resp, nil
	}
	if err := c.session.completeSignIn(token); err != nil {
		return resp, err
	}
	return resp, nil
}

// SignOut clears the stored user token and returns the session to
// anonymous mode. No request is issued.
func (c *Client) SignOut() error {
	c.logInfo("signing out")
	return c.session.signOut()
}

// do runs one operation end to end: resolve, render headers, send,
// normalize. Exactly one of (*Response, error) is non-nil.
func (c *Client) do(ctx context.Context, op api.Operation) (*Response, error) {
	route := c.caller.Resolve(op)
	req := &api.Request{
		ID:      api.NewRequestID(),
		Method:  route.Method,
		URL:     c.cfg.BaseURL + route.Path,
		Headers: c.session.headers(route.Body != nil),
		Body:    route.Body,
	}
	clientKemba.Extend("do").Printf("[%s] %s %s", req.ID, req.Method, req.URL)

	raw, err := c.transport.Do(ctx, req)
	if err != nil {
		c.logInfo("request failed", "id", req.ID, "err", err)
		return nil, newTransportError(err)
	}
	if !raw.OK() {
		c.logInfo("request rejected", "id", req.ID, "status", raw.Status)
		return nil, &StatusError{
			StatusCode: raw.StatusCode,
			Status:     raw.Status,
			Body:       raw.Body,
			Message:    api.ErrorMessage(raw.Body),
		}
	}
	if len(raw.Body) > 0 && !gjson.ValidBytes(raw.Body) {
		return nil, newDecodeError(errors.New("response body is not valid JSON"))
	}
	c.logInfo("request ok", "id", req.ID, "status", raw.StatusCode)
	return &Response{StatusCode: raw.StatusCode, Header: raw.Header, Body: raw.Body}, nil
}

func (c *Client) logInfo(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

func renderQuery(opts []query.Option) string {
	if len(opts) == 0 {
		return ""
	}
	return query.Encode(opts)
}

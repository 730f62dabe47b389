package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the hosted Backand REST endpoint.
	DefaultBaseURL = "https://api.backand.com"
)

// Config carries everything a client needs to talk to one Backand app.
type Config struct {
	// AppName identifies the application; sent on every request.
	AppName string
	// AnonymousToken authorizes requests while nobody is signed in.
	AnonymousToken string
	// SignUpToken is the master token that authorizes user registration.
	SignUpToken string
	// BaseURL is the API origin. Empty means DefaultBaseURL.
	BaseURL string
	// Version is the REST API version segment. Empty means v1.
	Version string
	// Mode overrides the starting authentication mode. Empty means
	// anonymous.
	Mode AuthMode
}

// Validate fills defaults and reports whether the config is usable.
func (c *Config) Validate() error {
	if c.AppName == "" {
		return errors.New("no app name specified")
	}
	switch c.Mode {
	case "", ModeAnonymous, ModeSignUpPending, ModeAuthenticatedUser:
	default:
		return errors.New("unknown auth mode: " + string(c.Mode))
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return nil
}

// ParseURL reads a config out of a connection URL of the form
//
//	https://todoapp@api.backand.com?anonymousToken=...&signUpToken=...&version=1
//
// The user part names the app; tokens ride in the query.
func ParseURL(inputURL string) (*Config, error) {
	u, err := url.Parse(inputURL)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	q := u.Query()

	// Sanity check
	switch u.Scheme {
	case "https", "http":
	case "":
		return nil, errors.New("no scheme specified")
	default:
		return nil, errors.New("unknown scheme: " + u.Scheme)
	}
	c.AppName = u.User.Username()
	if c.AppName == "" {
		c.AppName = q.Get("app")
	}

	// Assign
	c.AnonymousToken = q.Get("anonymousToken")
	c.SignUpToken = q.Get("signUpToken")
	c.Version = q.Get("version")
	c.Mode = AuthMode(q.Get("mode"))
	c.BaseURL = fmt.Sprintf("%s://%s", u.Scheme, u.Host)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

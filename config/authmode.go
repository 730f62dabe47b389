package config

// AuthMode names the credential a client presents on each request.
type AuthMode string

const (
	// ModeAnonymous sends the app's anonymous token.
	ModeAnonymous AuthMode = "anonymous"
	// ModeSignUpPending sends the master sign-up token while a
	// registration is in flight.
	ModeSignUpPending AuthMode = "signup"
	// ModeAuthenticatedUser sends a bearer access token.
	ModeAuthenticatedUser AuthMode = "user"
)

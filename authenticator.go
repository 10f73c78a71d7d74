package textapi

import (
	"net/http"
	"strings"

	apierrors "github.com/textkit/textapi/errors"
)

const (
	AuthTypeNoAuth      = "noAuth"
	AuthTypeBasic       = "basic"
	AuthTypeBearerToken = "bearerToken"
	AuthTypeIam         = "iam"
)

// Authenticator adds credentials to outgoing requests.
type Authenticator interface {
	AuthenticationType() string
	Authenticate(req *http.Request) error
	Validate() error
}

// NoAuthAuthenticator sends requests as is.
type NoAuthAuthenticator struct{}

func (*NoAuthAuthenticator) AuthenticationType() string {
	return AuthTypeNoAuth
}

func (*NoAuthAuthenticator) Authenticate(req *http.Request) error {
	return nil
}

func (*NoAuthAuthenticator) Validate() error {
	return nil
}

// BasicAuthenticator uses HTTP basic authentication.
type BasicAuthenticator struct {
	Username string
	Password string
}

func NewBasicAuthenticator(username, password string) (*BasicAuthenticator, error) {
	a := &BasicAuthenticator{
		Username: username,
		Password: password,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (*BasicAuthenticator) AuthenticationType() string {
	return AuthTypeBasic
}

func (a *BasicAuthenticator) Authenticate(req *http.Request) error {
	req.SetBasicAuth(a.Username, a.Password)
	return nil
}

func (a *BasicAuthenticator) Validate() error {
	if a.Username == "" || a.Password == "" {
		return apierrors.InvalidArgument("basic authentication needs both username and password")
	}
	if hasBadFirstOrLastChar(a.Username) || hasBadFirstOrLastChar(a.Password) {
		return apierrors.InvalidArgument("username and password must not start or end with braces or quotes; remove them if they were copied with the credentials")
	}
	return nil
}

// BearerTokenAuthenticator sends a token obtained elsewhere.
// Refreshing the token is up to the caller.
type BearerTokenAuthenticator struct {
	BearerToken string
}

func NewBearerTokenAuthenticator(token string) (*BearerTokenAuthenticator, error) {
	a := &BearerTokenAuthenticator{
		BearerToken: token,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (*BearerTokenAuthenticator) AuthenticationType() string {
	return AuthTypeBearerToken
}

func (a *BearerTokenAuthenticator) Authenticate(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+a.BearerToken)
	return nil
}

func (a *BearerTokenAuthenticator) Validate() error {
	if a.BearerToken == "" {
		return apierrors.InvalidArgument("bearer token is empty")
	}
	return nil
}

func hasBadFirstOrLastChar(s string) bool {
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "\"") ||
		strings.HasSuffix(s, "}") || strings.HasSuffix(s, "\"")
}

// NewAuthenticatorFromProperties creates an authenticator from service
// properties (see GetServiceProperties). Without AUTH_TYPE, a bearer token,
// then username and password are tried.
func NewAuthenticatorFromProperties(props map[string]string) (Authenticator, error) {
	authType := props[PropAuthType]
	if authType == "" {
		switch {
		case props[PropBearerToken] != "":
			authType = AuthTypeBearerToken
		case props[PropUsername] != "" || props[PropPassword] != "":
			authType = AuthTypeBasic
		case props[PropAPIKey] != "":
			authType = AuthTypeIam
		default:
			return nil, apierrors.InvalidArgument("no credentials found in service properties")
		}
	}

	switch strings.ToLower(authType) {
	case strings.ToLower(AuthTypeNoAuth):
		return &NoAuthAuthenticator{}, nil
	case strings.ToLower(AuthTypeBasic):
		return NewBasicAuthenticator(props[PropUsername], props[PropPassword])
	case strings.ToLower(AuthTypeBearerToken):
		return NewBearerTokenAuthenticator(props[PropBearerToken])
	case strings.ToLower(AuthTypeIam):
		return nil, apierrors.Unimplemented("authentication type %s needs a token exchange; obtain a token and use %s", AuthTypeIam, AuthTypeBearerToken)
	}
	return nil, apierrors.InvalidArgument("unknown authentication type %q", authType)
}

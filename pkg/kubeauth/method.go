package kubeauth

import (
	"github.com/common-fate/kubeconn/pkg/kubeconfig"
)

// Kind is the auth shape of a kubeconfig user.
type Kind string

const (
	Anonymous   Kind = "anonymous"
	StaticToken Kind = "token"
	IDToken     Kind = "auth-provider-id-token"
	AccessToken Kind = "auth-provider-access-token"
	Exec        Kind = "exec"
	Basic       Kind = "basic"
	ClientCert  Kind = "client-certificate"
)

// auth-provider config keys
const (
	idTokenKey     = "id-token"
	accessTokenKey = "access-token"
	expiryKey      = "expiry"
)

// Method is the decoded auth shape of a user. Only the fields belonging to Kind are set.
type Method struct {
	Kind Kind

	// Token is set for StaticToken, IDToken and AccessToken.
	Token string
	// Expiry is the raw auth-provider expiry for AccessToken. It may be empty.
	Expiry string

	Exec *kubeconfig.ExecConfig

	Username string
	Password string
}

// IsToken reports whether the method yields a bearer token.
func (m Method) IsToken() bool {
	switch m.Kind {
	case StaticToken, IDToken, AccessToken, Exec:
		return true
	}
	return false
}

// DecodeMethod picks the auth shape of a user, in precedence order:
// static token, auth-provider id-token, auth-provider access-token, exec plugin,
// username and password, client certificate. A user with none of these is Anonymous.
func DecodeMethod(u *kubeconfig.AuthInfo) Method {
	if u == nil {
		return Method{Kind: Anonymous}
	}
	if u.Token != "" {
		return Method{Kind: StaticToken, Token: u.Token}
	}

	if u.AuthProvider != nil {
		cfg := u.AuthProvider.Config
		if t := cfg[idTokenKey]; t != "" {
			return Method{Kind: IDToken, Token: t}
		}
		if t := cfg[accessTokenKey]; t != "" {
			return Method{Kind: AccessToken, Token: t, Expiry: cfg[expiryKey]}
		}
	}

	if u.Exec != nil && u.Exec.Command != "" {
		return Method{Kind: Exec, Exec: u.Exec}
	}

	if u.Username != "" && u.Password != "" {
		return Method{Kind: Basic, Username: u.Username, Password: u.Password}
	}

	if u.ClientCertificate != "" || u.ClientCertificateData != "" || u.ClientKey != "" || u.ClientKeyData != "" {
		return Method{Kind: ClientCert}
	}

	return Method{Kind: Anonymous}
}

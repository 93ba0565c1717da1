package connection

// Group is the API group reported in every connection profile.
const Group = "k8s.io"

// Auth holds the credential of a connection profile: either a bearer token or
// a username and password.
type Auth struct {
	Bearer   string `json:"bearer,omitempty" yaml:"bearer,omitempty"`
	User     string `json:"user,omitempty" yaml:"user,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

// Options is the resolved connection profile for a cluster.
//
// Pointer fields distinguish "unset" from a false value so that caller
// overrides can set TLS flags explicitly.
type Options struct {
	Group     string `json:"group,omitempty" yaml:"group,omitempty"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	CA                    []byte `json:"ca,omitempty" yaml:"ca,omitempty"`
	InsecureSkipTLSVerify *bool  `json:"insecureSkipTlsVerify,omitempty" yaml:"insecureSkipTlsVerify,omitempty"`
	StrictSSL             *bool  `json:"strictSSL,omitempty" yaml:"strictSSL,omitempty"`

	Auth *Auth  `json:"auth,omitempty" yaml:"auth,omitempty"`
	Cert []byte `json:"cert,omitempty" yaml:"cert,omitempty"`
	Key  []byte `json:"key,omitempty" yaml:"key,omitempty"`
}

// withOverrides returns a copy of overrides with every unset field filled
// from derived. Fields are taken as a whole: an override Auth is never
// combined with a derived one.
func withOverrides(overrides Options, derived Options) *Options {
	out := overrides
	if out.Group == "" {
		out.Group = derived.Group
	}
	if out.URL == "" {
		out.URL = derived.URL
	}
	if out.Namespace == "" {
		out.Namespace = derived.Namespace
	}
	if out.CA == nil {
		out.CA = derived.CA
	}
	if out.InsecureSkipTLSVerify == nil {
		out.InsecureSkipTLSVerify = derived.InsecureSkipTLSVerify
	}
	if out.StrictSSL == nil {
		out.StrictSSL = derived.StrictSSL
	}
	if out.Auth == nil {
		out.Auth = derived.Auth
	}
	if out.Cert == nil {
		out.Cert = derived.Cert
	}
	if out.Key == nil {
		out.Key = derived.Key
	}
	return &out
}

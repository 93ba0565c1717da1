package kubeconn

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/common-fate/kubeconn/pkg/config"
	"github.com/common-fate/kubeconn/pkg/connection"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names used by the dotenv output.
const (
	envURL       = "KUBE_API_URL"
	envNamespace = "KUBE_NAMESPACE"
	envGroup     = "KUBE_API_GROUP"
	envToken     = "KUBE_TOKEN"
	envUsername  = "KUBE_USERNAME"
	envPassword  = "KUBE_PASSWORD"
	envCA        = "KUBE_CA_DATA"
	envCert      = "KUBE_CLIENT_CERT_DATA"
	envKey       = "KUBE_CLIENT_KEY_DATA"
	envInsecure  = "KUBE_INSECURE_SKIP_TLS_VERIFY"
)

// printable mirrors connection.Options with PEM material as text.
type printable struct {
	Group                 string           `json:"group,omitempty" yaml:"group,omitempty"`
	URL                   string           `json:"url,omitempty" yaml:"url,omitempty"`
	Namespace             string           `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	CA                    string           `json:"ca,omitempty" yaml:"ca,omitempty"`
	InsecureSkipTLSVerify *bool            `json:"insecureSkipTlsVerify,omitempty" yaml:"insecureSkipTlsVerify,omitempty"`
	StrictSSL             *bool            `json:"strictSSL,omitempty" yaml:"strictSSL,omitempty"`
	Auth                  *connection.Auth `json:"auth,omitempty" yaml:"auth,omitempty"`
	Cert                  string           `json:"cert,omitempty" yaml:"cert,omitempty"`
	Key                   string           `json:"key,omitempty" yaml:"key,omitempty"`
}

func toPrintable(o *connection.Options) printable {
	return printable{
		Group:                 o.Group,
		URL:                   o.URL,
		Namespace:             o.Namespace,
		CA:                    string(o.CA),
		InsecureSkipTLSVerify: o.InsecureSkipTLSVerify,
		StrictSSL:             o.StrictSSL,
		Auth:                  o.Auth,
		Cert:                  string(o.Cert),
		Key:                   string(o.Key),
	}
}

// dotenv returns the options as KUBE_* environment variables.
// Certificate material is base64 encoded so that it fits on one line.
func dotenv(o *connection.Options) map[string]string {
	env := map[string]string{
		envURL:       o.URL,
		envNamespace: o.Namespace,
		envGroup:     o.Group,
	}
	if o.Auth != nil {
		if o.Auth.Bearer != "" {
			env[envToken] = o.Auth.Bearer
		} else {
			env[envUsername] = o.Auth.User
			env[envPassword] = o.Auth.Password
		}
	}
	if len(o.CA) > 0 {
		env[envCA] = base64.StdEncoding.EncodeToString(o.CA)
	}
	if len(o.Cert) > 0 {
		env[envCert] = base64.StdEncoding.EncodeToString(o.Cert)
	}
	if len(o.Key) > 0 {
		env[envKey] = base64.StdEncoding.EncodeToString(o.Key)
	}
	if o.InsecureSkipTLSVerify != nil {
		env[envInsecure] = strconv.FormatBool(*o.InsecureSkipTLSVerify)
	}
	return env
}

func writeOptions(w io.Writer, format string, o *connection.Options) error {
	switch format {
	case config.OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toPrintable(o))
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(toPrintable(o))
	case config.OutputDotenv:
		out, err := godotenv.Marshal(dotenv(o))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	return fmt.Errorf("unsupported output format %q, expected one of json, yaml or dotenv", format)
}

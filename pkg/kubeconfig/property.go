package kubeconfig

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/afero"
)

// Property names credential material which can be given either as a file path
// or inline as base64 data under the "<property>-data" key.
type Property string

const (
	CertificateAuthority Property = "certificate-authority"
	ClientCertificate    Property = "client-certificate"
	ClientKey            Property = "client-key"
)

// DataKey returns the key holding the inline form of the property.
func (p Property) DataKey() string {
	return string(p) + "-data"
}

// Record is a kubeconfig record holding credential properties.
type Record interface {
	// Property returns the file path and inline data configured for name.
	Property(name Property) (path string, data string)
}

// Property implements Record.
func (c *Cluster) Property(name Property) (string, string) {
	if name == CertificateAuthority {
		return c.CertificateAuthority, c.CertificateAuthorityData
	}
	return "", ""
}

// Property implements Record.
func (a *AuthInfo) Property(name Property) (string, string) {
	switch name {
	case ClientCertificate:
		return a.ClientCertificate, a.ClientCertificateData
	case ClientKey:
		return a.ClientKey, a.ClientKeyData
	}
	return "", ""
}

// Materializer reads credential material referenced by kubeconfig records.
type Materializer struct {
	Fs afero.Fs
}

// NewMaterializer returns a Materializer reading from the OS filesystem.
func NewMaterializer() *Materializer {
	return &Materializer{Fs: afero.NewOsFs()}
}

// ResolveProperty returns the bytes of the named property.
//
// A file path takes precedence over inline data. The boolean is false when the
// record configures neither.
func (m *Materializer) ResolveProperty(name Property, rec Record) ([]byte, bool, error) {
	path, data := rec.Property(name)
	if path != "" {
		b, err := afero.ReadFile(m.Fs, path)
		if err != nil {
			return nil, false, fmt.Errorf("reading %s from %q: %w", name, path, err)
		}
		return b, true, nil
	}
	if data != "" {
		b, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, false, fmt.Errorf("decoding %s: %w", name.DataKey(), err)
		}
		return b, true, nil
	}
	return nil, false, nil
}

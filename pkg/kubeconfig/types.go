// Copyright 2023 Volvo Car Corporation
// SPDX-License-Identifier: Apache-2.0

package kubeconfig

// These types follow k8s.io/client-go/tools/clientcmd/api but keep the on-disk
// shape of a kubeconfig: named entries are ordered slices rather than maps, and
// all credential material stays as the string found in the file.

// Preferences holds general information to be use for cli interactions.
type Preferences struct {
	// +optional
	Colors bool `json:"colors,omitempty"`
	// +optional
	Extensions interface{} `json:"extensions,omitempty"`
}

// Cluster contains information about how to communicate with a kubernetes cluster
type Cluster struct {
	// Server is the address of the kubernetes cluster (https://hostname:port).
	Server string `json:"server"`
	// +optional
	TLSServerName string `json:"tls-server-name,omitempty"`
	// InsecureSkipTLSVerify skips the validity check for the server's certificate.
	// +optional
	InsecureSkipTLSVerify bool `json:"insecure-skip-tls-verify,omitempty"`
	// CertificateAuthority is the path to a cert file for the certificate authority.
	// +optional
	CertificateAuthority string `json:"certificate-authority,omitempty"`
	// CertificateAuthorityData contains base64 PEM-encoded certificate authority certificates.
	// +optional
	CertificateAuthorityData string `json:"certificate-authority-data,omitempty"`
	// +optional
	ProxyURL string `json:"proxy-url,omitempty"`
	// +optional
	Extensions interface{} `json:"extensions,omitempty"`
}

// AuthInfo contains information that describes identity information.
// It is the "user" record of a kubeconfig.
type AuthInfo struct {
	// +optional
	ClientCertificate string `json:"client-certificate,omitempty"`
	// +optional
	ClientCertificateData string `json:"client-certificate-data,omitempty"`
	// +optional
	ClientKey string `json:"client-key,omitempty"`
	// +optional
	ClientKeyData string `json:"client-key-data,omitempty" datapolicy:"security-key"`
	// Token is the bearer token for authentication to the kubernetes cluster.
	// +optional
	Token string `json:"token,omitempty" datapolicy:"token"`
	// +optional
	Username string `json:"username,omitempty"`
	// +optional
	Password string `json:"password,omitempty" datapolicy:"password"`
	// AuthProvider specifies a custom authentication plugin for the kubernetes cluster.
	// +optional
	AuthProvider *AuthProviderConfig `json:"auth-provider,omitempty"`
	// Exec specifies a custom exec-based authentication plugin for the kubernetes cluster.
	// +optional
	Exec *ExecConfig `json:"exec,omitempty"`
	// +optional
	Extensions interface{} `json:"extensions,omitempty"`
}

// AuthProviderConfig holds the configuration for a specified auth provider.
// Well known config keys are id-token, access-token and expiry.
type AuthProviderConfig struct {
	Name string `json:"name"`
	// +optional
	Config map[string]string `json:"config,omitempty"`
}

// Context is a tuple of references to a cluster, a user and a namespace.
type Context struct {
	Cluster string `json:"cluster"`
	User    string `json:"user"`
	// +optional
	Namespace string `json:"namespace,omitempty"`
	// +optional
	Extensions interface{} `json:"extensions,omitempty"`
}

// ExecConfig specifies a command to provide client credentials. The command is exec'd
// and outputs an ExecCredential on stdout.
type ExecConfig struct {
	// Command to execute.
	Command string `json:"command"`
	// Arguments to pass to the command when executing it.
	// +optional
	Args []string `json:"args"`
	// Env defines additional environment variables to expose to the process. These
	// are unioned with the host's environment.
	// +optional
	Env []ExecEnvVar `json:"env"`
	// Preferred input version of the ExecInfo.
	APIVersion string `json:"apiVersion,omitempty"`
	// InstallHint is shown to the user when the executable doesn't seem to be present.
	InstallHint string `json:"installHint,omitempty"`
	// +optional
	ProvideClusterInfo bool `json:"provideClusterInfo,omitempty"`
	// +optional
	InteractiveMode ExecInteractiveMode `json:"interactiveMode,omitempty"`
}

// ExecInteractiveMode is a string that describes an exec plugin's relationship with standard input.
type ExecInteractiveMode string

const (
	NeverExecInteractiveMode       ExecInteractiveMode = "Never"
	IfAvailableExecInteractiveMode ExecInteractiveMode = "IfAvailable"
	AlwaysExecInteractiveMode      ExecInteractiveMode = "Always"
)

// ExecEnvVar is used for setting environment variables when executing an exec-based credential plugin.
type ExecEnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

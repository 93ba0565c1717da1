package connection

import (
	"context"

	"github.com/common-fate/clio"
	"github.com/common-fate/kubeconn/pkg/kubeauth"
	"github.com/common-fate/kubeconn/pkg/kubeconfig"
	"github.com/pkg/errors"
)

// Builder composes connection profiles from a kubeconfig.
type Builder struct {
	Properties *kubeconfig.Materializer
	Tokens     *kubeauth.Resolver
	// Group overrides the Group constant when set.
	Group string
}

// NewBuilder returns a Builder reading credential files from disk and running
// exec plugins as child processes.
func NewBuilder() *Builder {
	return &Builder{
		Properties: kubeconfig.NewMaterializer(),
		Tokens:     kubeauth.NewResolver(),
	}
}

// Build resolves the connection profile of the current context.
// Fields set in overrides are kept as they are.
func (b *Builder) Build(ctx context.Context, cfg *kubeconfig.Config, overrides Options) (*Options, error) {
	return b.BuildFor(ctx, cfg, cfg.CurrentContext, overrides)
}

// BuildFor resolves the connection profile of the named context.
//
// It fails when the context, its cluster or its user can't be found, when a
// stored access token has expired, when an exec plugin fails or when a
// referenced credential file can't be read. A user without any usable
// credential is not an error: the profile is returned without auth and a
// warning is logged.
func (b *Builder) BuildFor(ctx context.Context, cfg *kubeconfig.Config, contextName string, overrides Options) (*Options, error) {
	user, err := cfg.ResolveUser(contextName)
	if err != nil {
		return nil, err
	}
	cluster, err := cfg.ResolveCluster(contextName)
	if err != nil {
		return nil, err
	}

	url, err := cfg.APIURLFor(contextName)
	if err != nil {
		return nil, err
	}
	namespace, err := cfg.NamespaceFor(contextName)
	if err != nil {
		return nil, err
	}

	derived := Options{
		Group:     b.group(),
		URL:       url,
		Namespace: namespace,
	}

	ca, ok, err := b.Properties.ResolveProperty(kubeconfig.CertificateAuthority, &cluster.Cluster)
	if err != nil {
		return nil, errors.Wrapf(err, "cluster %q", cluster.Name)
	}
	if ok {
		derived.CA = ca
	} else {
		clio.Warnf("No certificate authority found for cluster %s, TLS verification is disabled", cluster.Name)
		insecure, strict := true, false
		derived.InsecureSkipTLSVerify = &insecure
		derived.StrictSSL = &strict
	}

	if err := b.resolveAuth(ctx, user, &derived); err != nil {
		return nil, err
	}

	clio.Debugw("resolved connection options", "context", contextName, "cluster", cluster.Name, "user", user.Name, "url", derived.URL)

	return withOverrides(overrides, derived), nil
}

func (b *Builder) resolveAuth(ctx context.Context, user *kubeconfig.UserConfig, opts *Options) error {
	token, err := b.Tokens.Resolve(ctx, &user.User)
	if err != nil {
		return errors.Wrapf(err, "user %q", user.Name)
	}
	if token != nil {
		opts.Auth = &Auth{Bearer: token.Value}
		return nil
	}

	if user.User.Username != "" && user.User.Password != "" {
		opts.Auth = &Auth{User: user.User.Username, Password: user.User.Password}
		return nil
	}

	cert, ok, err := b.Properties.ResolveProperty(kubeconfig.ClientCertificate, &user.User)
	if err != nil {
		return errors.Wrapf(err, "user %q", user.Name)
	}
	if !ok {
		clio.Warnf("Unable to find a %s for user %s, requests to the cluster will likely fail to authenticate", kubeconfig.ClientCertificate, user.Name)
	}
	opts.Cert = cert

	key, ok, err := b.Properties.ResolveProperty(kubeconfig.ClientKey, &user.User)
	if err != nil {
		return errors.Wrapf(err, "user %q", user.Name)
	}
	if !ok {
		clio.Warnf("Unable to find a %s for user %s, requests to the cluster will likely fail to authenticate", kubeconfig.ClientKey, user.Name)
	}
	opts.Key = key

	return nil
}

func (b *Builder) group() string {
	if b.Group != "" {
		return b.Group
	}
	return Group
}

package kubeconfig

import (
	"regexp"
	"strings"
)

// DefaultNamespace is used when the selected context doesn't set a namespace.
const DefaultNamespace = "default"

var schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// ResolveContext returns the context with the given name.
func (c *Config) ResolveContext(name string) (Context, error) {
	ctx := c.GetContext(name)
	if ctx == nil {
		return Context{}, &LookupError{Kind: LookupContext, Name: name, Context: name}
	}
	return ctx.Context, nil
}

// ResolveCluster returns the cluster referenced by the named context.
func (c *Config) ResolveCluster(contextName string) (*ClusterConfig, error) {
	ctx, err := c.ResolveContext(contextName)
	if err != nil {
		return nil, err
	}
	cl := c.GetCluster(ctx.Cluster)
	if cl == nil {
		return nil, &LookupError{Kind: LookupCluster, Name: ctx.Cluster, Context: contextName}
	}
	return cl, nil
}

// ResolveUser returns the user referenced by the named context.
func (c *Config) ResolveUser(contextName string) (*UserConfig, error) {
	ctx, err := c.ResolveContext(contextName)
	if err != nil {
		return nil, err
	}
	u := c.GetUser(ctx.User)
	if u == nil {
		return nil, &LookupError{Kind: LookupUser, Name: ctx.User, Context: contextName}
	}
	return u, nil
}

// APIURL returns the normalized server URL of the current context's cluster.
func (c *Config) APIURL() (string, error) {
	return c.APIURLFor(c.CurrentContext)
}

// APIURLFor returns the normalized server URL of the named context's cluster.
func (c *Config) APIURLFor(contextName string) (string, error) {
	cl, err := c.ResolveCluster(contextName)
	if err != nil {
		return "", err
	}
	return NormalizeServerURL(cl.Cluster.Server), nil
}

// NormalizeServerURL strips one trailing slash and adds an http:// scheme when
// none is present. It never upgrades a URL to https.
func NormalizeServerURL(server string) string {
	u := strings.TrimSuffix(server, "/")
	if !schemePrefix.MatchString(u) {
		u = "http://" + u
	}
	return u
}

// Namespace returns the namespace of the current context.
func (c *Config) Namespace() (string, error) {
	return c.NamespaceFor(c.CurrentContext)
}

// NamespaceFor returns the namespace of the named context, or DefaultNamespace.
func (c *Config) NamespaceFor(contextName string) (string, error) {
	ctx, err := c.ResolveContext(contextName)
	if err != nil {
		return "", err
	}
	if ctx.Namespace == "" {
		return DefaultNamespace, nil
	}
	return ctx.Namespace, nil
}

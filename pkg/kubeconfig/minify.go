package kubeconfig

// Minify returns a config holding only the named context with its cluster and
// user, with current-context set to it.
func (c *Config) Minify(contextName string) (*Config, error) {
	ctx := c.GetContext(contextName)
	if ctx == nil {
		return nil, &LookupError{Kind: LookupContext, Name: contextName, Context: contextName}
	}
	cl, err := c.ResolveCluster(contextName)
	if err != nil {
		return nil, err
	}
	u, err := c.ResolveUser(contextName)
	if err != nil {
		return nil, err
	}

	m := New()
	m.Preferences = c.Preferences
	m.CurrentContext = contextName
	if err := m.AddContext(ctx); err != nil {
		return nil, err
	}
	if err := m.AddCluster(cl); err != nil {
		return nil, err
	}
	if err := m.AddUser(u); err != nil {
		return nil, err
	}
	return m, nil
}

package kubeconn

import (
	"github.com/common-fate/kubeconn/pkg/config"
	"github.com/common-fate/kubeconn/pkg/connection"
	"github.com/common-fate/kubeconn/pkg/kubeconfig"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

// session is what every command needs to resolve a context.
type session struct {
	settings    *config.Config
	kubeconfig  *kubeconfig.Config
	contextName string
	builder     *connection.Builder
}

func newSession(c *cli.Context) (*session, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	env, err := kubeconfig.EnvironmentFromOS()
	if err != nil {
		return nil, err
	}
	if c.IsSet("kubeconfig") {
		env.KubeConfig = c.String("kubeconfig")
	}

	fs := afero.NewOsFs()
	kc, err := kubeconfig.LoadFromEnvironment(fs, env)
	if err != nil {
		return nil, cliError(err)
	}

	timeout, err := settings.ExecTimeoutDuration()
	if err != nil {
		return nil, err
	}
	builder := connection.NewBuilder()
	builder.Properties.Fs = fs
	builder.Tokens.Timeout = timeout
	builder.Group = settings.Group

	contextName := kc.CurrentContext
	if c.IsSet("context") {
		contextName = c.String("context")
		if !kc.ContextExists(contextName) {
			return nil, cliError(&kubeconfig.LookupError{Kind: kubeconfig.LookupContext, Name: contextName, Context: contextName})
		}
	}

	return &session{
		settings:    settings,
		kubeconfig:  kc,
		contextName: contextName,
		builder:     builder,
	}, nil
}

func (s *session) build(c *cli.Context, overrides connection.Options) (*connection.Options, error) {
	opts, err := s.builder.BuildFor(c.Context, s.kubeconfig, s.contextName, overrides)
	if err != nil {
		return nil, cliError(err)
	}
	return opts, nil
}

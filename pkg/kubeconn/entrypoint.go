package kubeconn

import (
	"github.com/common-fate/clio"
	"github.com/common-fate/kubeconn/internal/build"
	"github.com/common-fate/kubeconn/pkg/config"
	"github.com/urfave/cli/v2"
)

func GetCliApp() *cli.App {
	flags := []cli.Flag{
		&cli.BoolFlag{Name: "verbose", Usage: "Log debug messages"},
		&cli.StringFlag{Name: "kubeconfig", Usage: "Path list of kubeconfig files, overrides the KUBECONFIG environment variable"},
		&cli.StringFlag{Name: "context", Usage: "The kubeconfig context to resolve, defaults to current-context"},
	}

	app := &cli.App{
		Flags:       flags,
		Name:        build.BinaryName(),
		Usage:       "Resolve connection options for a Kubernetes cluster from your kubeconfig",
		UsageText:   "kubeconn [global options] command [command options] [arguments...]",
		Version:     build.Version,
		HideVersion: false,
		Commands: []*cli.Command{
			&OptionsCommand,
			&TokenCommand,
			&ContextsCommand,
			&ExportCommand,
			&ViewCommand,
			&SettingsCommand,
		},
		EnableBashCompletion: true,
		Before: func(c *cli.Context) error {
			clio.SetLevelFromEnv("KUBECONN_LOG")
			if c.Bool("verbose") {
				clio.SetLevelFromString("debug")
			}
			if err := config.SetupConfigFolder(); err != nil {
				return err
			}
			return nil
		},
	}

	return app
}

package kubeconn

import (
	"github.com/common-fate/kubeconn/pkg/connection"
	"github.com/urfave/cli/v2"
)

var OptionsCommand = cli.Command{
	Name:  "options",
	Usage: "Print the resolved connection options for a context",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output format: json, yaml or dotenv"},
		&cli.StringFlag{Name: "namespace", Aliases: []string{"n"}, Usage: "Override the namespace of the context"},
		&cli.StringFlag{Name: "url", Usage: "Override the API server URL"},
		&cli.StringFlag{Name: "group", Usage: "Override the API group"},
		&cli.BoolFlag{Name: "insecure-skip-tls-verify", Usage: "Override TLS verification of the API server"},
	},
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}

		opts, err := s.build(c, overridesFromFlags(c))
		if err != nil {
			return err
		}

		format := c.String("output")
		if format == "" {
			format = s.settings.DefaultOutput
		}
		return writeOptions(c.App.Writer, format, opts)
	},
}

// overridesFromFlags only sets the fields whose flags were passed.
func overridesFromFlags(c *cli.Context) connection.Options {
	var o connection.Options
	if c.IsSet("namespace") {
		o.Namespace = c.String("namespace")
	}
	if c.IsSet("url") {
		o.URL = c.String("url")
	}
	if c.IsSet("group") {
		o.Group = c.String("group")
	}
	if c.IsSet("insecure-skip-tls-verify") {
		insecure := c.Bool("insecure-skip-tls-verify")
		strict := !insecure
		o.InsecureSkipTLSVerify = &insecure
		o.StrictSSL = &strict
	}
	return o
}

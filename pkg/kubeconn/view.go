package kubeconn

import (
	"github.com/urfave/cli/v2"
)

var ViewCommand = cli.Command{
	Name:  "view",
	Usage: "Print the merged kubeconfig as kubeconn sees it",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "minify", Usage: "Only keep the selected context with its cluster and user"},
	},
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}

		kc := s.kubeconfig
		if c.Bool("minify") {
			kc, err = kc.Minify(s.contextName)
			if err != nil {
				return cliError(err)
			}
		}

		out, err := kc.Marshal()
		if err != nil {
			return err
		}
		_, err = c.App.Writer.Write(out)
		return err
	},
}

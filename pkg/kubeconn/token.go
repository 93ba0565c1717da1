package kubeconn

import (
	"fmt"
	"time"

	"github.com/common-fate/clio"
	"github.com/common-fate/kubeconn/pkg/kubeauth"
	"github.com/hako/durafmt"
	"github.com/urfave/cli/v2"
)

var TokenCommand = cli.Command{
	Name:  "token",
	Usage: "Print the bearer token of a context's user",
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}

		user, err := s.kubeconfig.ResolveUser(s.contextName)
		if err != nil {
			return cliError(err)
		}
		if m := kubeauth.DecodeMethod(&user.User); !m.IsToken() {
			return fmt.Errorf("user %s of context %s authenticates with %s, not a bearer token", user.Name, s.contextName, m.Kind)
		}
		token, err := s.builder.Tokens.Resolve(c.Context, &user.User)
		if err != nil {
			return cliError(err)
		}

		if token.Expiry != nil {
			clio.Infof("Token from %s expires in %s", token.Kind, durafmt.Parse(time.Until(*token.Expiry)).LimitFirstN(2).String())
		} else {
			clio.Debugw("token has no expiry", "kind", token.Kind)
		}

		fmt.Fprintln(c.App.Writer, token.Value)
		return nil
	},
}

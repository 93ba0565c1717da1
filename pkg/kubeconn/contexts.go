package kubeconn

import (
	"os"

	"github.com/common-fate/clio"
	"github.com/common-fate/kubeconn/pkg/kubeauth"
	"github.com/common-fate/kubeconn/pkg/kubeconfig"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var ContextsCommand = cli.Command{
	Name:  "contexts",
	Usage: "List the contexts in your kubeconfig and how each one authenticates",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "validate", Usage: "Check that every context references an existing cluster and user"},
	},
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}

		if c.Bool("validate") {
			for _, validate := range []kubeconfig.ValidationFunc{kubeconfig.WithEntries, kubeconfig.WithUniqueNames, kubeconfig.WithValidContexts} {
				if err := validate(s.kubeconfig); err != nil {
					return err
				}
			}
			clio.Success("kubeconfig is valid")
		}

		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"CURRENT", "NAME", "CLUSTER", "USER", "NAMESPACE", "AUTH"})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(true)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetTablePadding("\t")
		table.SetNoWhiteSpace(true)
		table.AppendBulk(contextRows(s.kubeconfig, s.contextName))
		table.Render()
		return nil
	},
}

// contextRows describes each context without running any exec plugin.
func contextRows(kc *kubeconfig.Config, selected string) [][]string {
	rows := make([][]string, 0, len(kc.Contexts))
	for _, ctx := range kc.Contexts {
		if ctx == nil {
			continue
		}
		current := ""
		if ctx.Name == selected {
			current = "*"
		}
		namespace := ctx.Context.Namespace
		if namespace == "" {
			namespace = kubeconfig.DefaultNamespace
		}

		auth := color.RedString("user not found")
		if u := kc.GetUser(ctx.Context.User); u != nil {
			auth = string(kubeauth.DecodeMethod(&u.User).Kind)
		}
		cluster := ctx.Context.Cluster
		if kc.GetCluster(cluster) == nil {
			cluster = color.RedString(cluster + " (not found)")
		}

		rows = append(rows, []string{current, ctx.Name, cluster, ctx.Context.User, namespace, auth})
	}
	return rows
}

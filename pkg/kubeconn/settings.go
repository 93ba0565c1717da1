package kubeconn

import (
	"fmt"
	"os"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/common-fate/clio"
	"github.com/common-fate/kubeconn/pkg/config"
	"github.com/common-fate/kubeconn/pkg/testable"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var SettingsCommand = cli.Command{
	Name:        "settings",
	Usage:       "Manage kubeconn settings",
	Subcommands: []*cli.Command{&PrintSettingsCommand, &SetSettingCommand},
	Action:      PrintSettingsCommand.Action,
}

var PrintSettingsCommand = cli.Command{
	Name:  "print",
	Usage: "List kubeconn settings",
	Action: func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"SETTING", "VALUE"})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(true)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetRowLine(true)
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetTablePadding("\t")
		table.SetNoWhiteSpace(true)
		table.AppendBulk(settingRows(cfg))
		table.Render()
		return nil
	},
}

var SetSettingCommand = cli.Command{
	Name:  "set",
	Usage: "Set a value in settings",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "setting", Aliases: []string{"s"}, Usage: "The name of the setting, e.g 'ExecTimeout'"},
		&cli.StringFlag{Name: "value", Aliases: []string{"v"}, Usage: "The value to set the setting to"},
	},
	Action: func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fields := settingFields(cfg)

		name := c.String("setting")
		if name == "" {
			names := make([]string, 0, len(fields))
			for k := range fields {
				names = append(names, k)
			}
			sort.Strings(names)
			err = testable.AskOne(&survey.Select{Message: "Select the setting to change", Options: names}, &name)
			if err != nil {
				return err
			}
		}

		field, ok := fields[name]
		if !ok {
			return fmt.Errorf("the selected field %s is not a valid setting", name)
		}

		value := c.String("value")
		if !c.IsSet("value") {
			err = testable.AskOne(&survey.Input{Message: fmt.Sprintf("Enter new value for %s:", name), Default: *field}, &value)
			if err != nil {
				return err
			}
		}

		*field = value
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		clio.Successf("Set %s to: %s", name, value)
		return nil
	},
}

func settingFields(cfg *config.Config) map[string]*string {
	return map[string]*string{
		"ExecTimeout":   &cfg.ExecTimeout,
		"DefaultOutput": &cfg.DefaultOutput,
		"Group":         &cfg.Group,
	}
}

func settingRows(cfg *config.Config) [][]string {
	fields := settingFields(cfg)
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n, *fields[n]})
	}
	return rows
}

package kubeconn

import (
	"os"

	"github.com/common-fate/clio"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var ExportCommand = cli.Command{
	Name:  "export",
	Usage: "Write the resolved connection options of a context to a dotenv file",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Value: ".env", Usage: "The dotenv file to update"},
		&cli.StringFlag{Name: "namespace", Aliases: []string{"n"}, Usage: "Override the namespace of the context"},
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

		path := c.String("file")
		return exportDotenv(path, dotenv(opts))
	},
}

// exportDotenv merges vars into the dotenv file at path, creating it if needed.
// Variables already in the file which kubeconn doesn't manage are kept.
func exportDotenv(path string, vars map[string]string) error {
	existing := map[string]string{}
	if _, err := os.Stat(path); err == nil {
		existing, err = godotenv.Read(path)
		if err != nil {
			return err
		}
	}

	for _, k := range []string{envToken, envUsername, envPassword, envCA, envCert, envKey, envInsecure} {
		delete(existing, k)
	}
	for k, v := range vars {
		existing[k] = v
	}

	if err := godotenv.Write(existing, path); err != nil {
		return err
	}
	clio.Successf("Exported connection options to %s", path)
	return nil
}

package kubeconn

import (
	"errors"
	"fmt"

	"github.com/common-fate/clio/clierr"
	"github.com/common-fate/kubeconn/pkg/kubeauth"
	"github.com/common-fate/kubeconn/pkg/kubeconfig"
)

// cliError adds remediation hints to resolution errors.
func cliError(err error) error {
	var notFound *kubeconfig.ConfigNotFoundError
	if errors.As(err, &notFound) {
		return clierr.New(err.Error(),
			clierr.Infof("Create a kubeconfig at %s or set %s to a list of kubeconfig files", notFound.Path, kubeconfig.EnvVar),
		)
	}

	var parseErr *kubeconfig.ParseError
	if errors.As(err, &parseErr) {
		return clierr.New(err.Error(), clierr.Infof("Check that %s is a valid YAML kubeconfig", parseErr.Path))
	}

	var lookupErr *kubeconfig.LookupError
	if errors.As(err, &lookupErr) {
		return clierr.New(err.Error(), clierr.Info("Run 'kubeconn contexts --validate' to list the contexts in your kubeconfig"))
	}

	var execErr *kubeauth.ExecError
	if errors.As(err, &execErr) {
		msgs := []clierr.Printer{clierr.Error(execErr.Err)}
		if execErr.InstallHint != "" {
			msgs = append(msgs, clierr.Info(execErr.InstallHint))
		}
		return clierr.New(fmt.Sprintf("exec credential plugin failed: %s", execErr.CommandLine), msgs...)
	}

	if errors.Is(err, kubeauth.ErrCredentialExpired) {
		return clierr.New(err.Error(), clierr.Info("Re-authenticate against your cluster, for example by running any kubectl command, then try again"))
	}

	return err
}

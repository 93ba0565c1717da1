package kubeauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/common-fate/kubeconn/pkg/kubeconfig"
	"github.com/pkg/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	clientauthv1beta1 "k8s.io/client-go/pkg/apis/clientauthentication/v1beta1"
)

const (
	execInfoEnv           = "KUBERNETES_EXEC_INFO"
	defaultExecAPIVersion = "client.authentication.k8s.io/v1beta1"
)

// Command is a process to run for an exec credential plugin.
type Command struct {
	// Name is the executable, looked up on PATH when it holds no separator.
	Name string
	Args []string
	// Env is added to the environment of the current process.
	Env []string
	// Interactive connects the process to the terminal's stdin.
	Interactive bool
}

// Argv returns the command followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String returns the space joined command line.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// CommandRunner runs a command to completion and returns its standard output.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands as child processes.
// Arguments are passed to the process directly, without a shell.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, c Command) ([]byte, error) {
	argv0, err := exec.LookPath(c.Name)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, argv0, c.Args...)
	cmd.Env = append(os.Environ(), c.Env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if c.Interactive {
		cmd.Stdin = os.Stdin
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// ExecCommand builds the plugin command for an exec config.
func ExecCommand(cfg *kubeconfig.ExecConfig) (Command, error) {
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = defaultExecAPIVersion
	}
	interactive := cfg.InteractiveMode == kubeconfig.AlwaysExecInteractiveMode

	info, err := json.Marshal(clientauthv1beta1.ExecCredential{
		TypeMeta: metav1.TypeMeta{APIVersion: apiVersion, Kind: "ExecCredential"},
		Spec:     clientauthv1beta1.ExecCredentialSpec{Interactive: interactive},
	})
	if err != nil {
		return Command{}, errors.Wrap(err, "encoding exec info")
	}

	env := make([]string, 0, len(cfg.Env)+1)
	for _, e := range cfg.Env {
		env = append(env, e.Name+"="+e.Value)
	}
	env = append(env, execInfoEnv+"="+string(info))

	return Command{
		Name:        cfg.Command,
		Args:        cfg.Args,
		Env:         env,
		Interactive: interactive,
	}, nil
}

// parseExecCredential reads the ExecCredential printed by a plugin.
func parseExecCredential(out []byte) (*clientauthv1beta1.ExecCredentialStatus, error) {
	var cred clientauthv1beta1.ExecCredential
	if err := json.Unmarshal(out, &cred); err != nil {
		return nil, fmt.Errorf("decoding plugin output as JSON: %w", err)
	}
	if cred.Status == nil || cred.Status.Token == "" {
		return nil, errors.New("plugin output has no status.token")
	}
	return cred.Status, nil
}

func quoteCommand(c Command) string {
	return shellescape.QuoteCommand(c.Argv())
}

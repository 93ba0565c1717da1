package kubeconn

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKubeconfig = `apiVersion: v1
kind: Config
current-context: dev
contexts:
- name: dev
  context:
    cluster: dev
    user: dev-user
    namespace: team-a
- name: broken
  context:
    cluster: missing
    user: dev-user
clusters:
- name: dev
  cluster:
    server: https://dev.example.com/
    certificate-authority-data: Q0E=
users:
- name: dev-user
  user:
    token: abc
`

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runAppWith(t, testKubeconfig, args...)
}

func runAppWith(t *testing.T, kubeconfig string, args ...string) (string, error) {
	t.Helper()
	withHome(t)
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(kubeconfig), 0600))

	var out bytes.Buffer
	app := GetCliApp()
	app.Writer = &out
	err := app.Run(append([]string{"kubeconn", "--kubeconfig", path}, args...))
	return out.String(), err
}

func TestOptionsCommand(t *testing.T) {
	out, err := runApp(t, "options", "-n", "custom")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{
		"group":     "k8s.io",
		"url":       "https://dev.example.com",
		"namespace": "custom",
		"ca":        "CA",
		"auth":      map[string]any{"bearer": "abc"},
	}, got)
}

func TestOptionsCommandUnknownContext(t *testing.T) {
	_, err := runApp(t, "--context", "broken", "options")
	assert.ErrorContains(t, err, `cluster not found: "missing" (referenced by context "broken")`)
}

func TestTokenCommand(t *testing.T) {
	out, err := runApp(t, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)
}

func TestViewMinify(t *testing.T) {
	out, err := runApp(t, "view", "--minify")
	require.NoError(t, err)
	assert.Contains(t, out, "current-context: dev")
	assert.Contains(t, out, "server: https://dev.example.com/")
	assert.NotContains(t, out, "name: broken")
}

func TestUnknownContextFlag(t *testing.T) {
	_, err := runApp(t, "--context", "nope", "token")
	assert.EqualError(t, err, `context not found: "nope"`)
}

func TestTokenCommandWithoutBearerToken(t *testing.T) {
	const basic = `current-context: dev
contexts:
- name: dev
  context:
    cluster: dev
    user: admin
clusters:
- name: dev
  cluster:
    server: https://dev.example.com
users:
- name: admin
  user:
    username: admin
    password: secret
`
	out, err := runAppWith(t, basic, "token")
	assert.EqualError(t, err, "user admin of context dev authenticates with basic, not a bearer token")
	assert.Empty(t, out)
}

func TestContextsValidateRejectsEmptyEntries(t *testing.T) {
	const nullUser = testKubeconfig + "- null\n"
	_, err := runAppWith(t, nullUser, "contexts", "--validate")
	assert.EqualError(t, err, "user entry 1 is empty")
}

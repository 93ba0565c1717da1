package kubeauth

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/common-fate/kubeconn/pkg/kubeconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records the command it was asked to run and returns a canned result.
type fakeRunner struct {
	out []byte
	err error
	got *Command
}

func (f *fakeRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	f.got = &cmd
	return f.out, f.err
}

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestResolver(r CommandRunner) *Resolver {
	return &Resolver{Runner: r, Now: func() time.Time { return now }}
}

func TestResolveStaticTokens(t *testing.T) {
	r := newTestResolver(&fakeRunner{err: errors.New("must not run")})

	tok, err := r.Resolve(context.Background(), &kubeconfig.AuthInfo{
		Token: "static",
		AuthProvider: &kubeconfig.AuthProviderConfig{Config: map[string]string{
			"access-token": "access",
			"expiry":       "2000-01-01T00:00:00Z",
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "static", tok.Value)
	assert.Equal(t, StaticToken, tok.Kind)

	tok, err = r.Resolve(context.Background(), &kubeconfig.AuthInfo{
		AuthProvider: &kubeconfig.AuthProviderConfig{Config: map[string]string{"id-token": "id"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "id", tok.Value)
}

func TestResolveAccessToken(t *testing.T) {
	tests := []struct {
		name        string
		expiry      string
		wantErr     error
		wantAnyErr  bool
		wantExpires bool
	}{
		{name: "not expired", expiry: "2024-06-01T13:00:00Z", wantExpires: true},
		{name: "no expiry", expiry: ""},
		{name: "expired", expiry: "2024-06-01T11:59:59Z", wantErr: ErrCredentialExpired},
		{name: "expired with fractional seconds", expiry: "2024-05-01T11:00:00.123456Z", wantErr: ErrCredentialExpired},
		{name: "invalid expiry", expiry: "tomorrow", wantAnyErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(nil)
			cfg := map[string]string{"access-token": "access"}
			if tt.expiry != "" {
				cfg["expiry"] = tt.expiry
			}
			tok, err := r.Resolve(context.Background(), &kubeconfig.AuthInfo{
				AuthProvider: &kubeconfig.AuthProviderConfig{Name: "oidc", Config: cfg},
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tok)
				return
			}
			if tt.wantAnyErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "access", tok.Value)
			assert.Equal(t, AccessToken, tok.Kind)
			assert.Equal(t, tt.wantExpires, tok.Expiry != nil)
		})
	}
}

func TestResolveExecToken(t *testing.T) {
	execCfg := &kubeconfig.ExecConfig{
		Command: "aws",
		Args:    []string{"eks", "get-token", "--cluster-name", "my cluster"},
		Env:     []kubeconfig.ExecEnvVar{{Name: "AWS_PROFILE", Value: "dev"}},
	}

	tests := []struct {
		name       string
		runner     *fakeRunner
		want       string
		wantExpiry bool
		wantErr    bool
	}{
		{
			name:   "ok",
			runner: &fakeRunner{out: []byte(`{"status":{"token":"abc"}}`)},
			want:   "abc",
		},
		{
			name:       "ok with expiry",
			runner:     &fakeRunner{out: []byte(`{"kind":"ExecCredential","apiVersion":"client.authentication.k8s.io/v1beta1","status":{"token":"abc","expirationTimestamp":"2024-06-01T12:15:00Z"}}`)},
			want:       "abc",
			wantExpiry: true,
		},
		{
			name:    "non zero exit",
			runner:  &fakeRunner{err: errors.New("exit status 1")},
			wantErr: true,
		},
		{
			name:    "not json",
			runner:  &fakeRunner{out: []byte("token: abc")},
			wantErr: true,
		},
		{
			name:    "missing token",
			runner:  &fakeRunner{out: []byte(`{"status":{}}`)},
			wantErr: true,
		},
		{
			name:    "expired exec credential",
			runner:  &fakeRunner{out: []byte(`{"status":{"token":"abc","expirationTimestamp":"2024-06-01T11:00:00Z"}}`)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(tt.runner)
			tok, err := r.Resolve(context.Background(), &kubeconfig.AuthInfo{Exec: execCfg})
			if tt.wantErr {
				var execErr *ExecError
				require.True(t, errors.As(err, &execErr), "expected an ExecError, got %v", err)
				assert.Equal(t, `aws eks get-token --cluster-name 'my cluster'`, execErr.CommandLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tok.Value)
			assert.Equal(t, Exec, tok.Kind)
			assert.Equal(t, tt.wantExpiry, tok.Expiry != nil)

			// arguments are passed as a vector in declared order
			require.NotNil(t, tt.runner.got)
			assert.Equal(t, "aws", tt.runner.got.Name)
			assert.Equal(t, execCfg.Args, tt.runner.got.Args)
			assert.Equal(t, "aws eks get-token --cluster-name my cluster", tt.runner.got.String())
			assert.Contains(t, tt.runner.got.Env, "AWS_PROFILE=dev")
		})
	}
}

func TestResolveExecExpiredIsCredentialExpired(t *testing.T) {
	r := newTestResolver(&fakeRunner{out: []byte(`{"status":{"token":"abc","expirationTimestamp":"2024-06-01T11:00:00Z"}}`)})
	_, err := r.Resolve(context.Background(), &kubeconfig.AuthInfo{Exec: &kubeconfig.ExecConfig{Command: "plugin"}})
	assert.ErrorIs(t, err, ErrCredentialExpired)
}

func TestResolveExecInstallHint(t *testing.T) {
	r := newTestResolver(&fakeRunner{err: fmt.Errorf("lookup: %w", exec.ErrNotFound)})
	_, err := r.Resolve(context.Background(), &kubeconfig.AuthInfo{Exec: &kubeconfig.ExecConfig{
		Command:     "gke-gcloud-auth-plugin",
		InstallHint: "install gke-gcloud-auth-plugin",
	}})

	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "install gke-gcloud-auth-plugin", execErr.InstallHint)
}

func TestResolveNonTokenUsers(t *testing.T) {
	r := newTestResolver(&fakeRunner{err: errors.New("must not run")})
	for _, u := range []*kubeconfig.AuthInfo{
		{},
		{Username: "u", Password: "p"},
		{ClientCertificate: "/c.crt", ClientKey: "/c.key"},
	} {
		tok, err := r.Resolve(context.Background(), u)
		assert.NoError(t, err)
		assert.Nil(t, tok)
	}
}

func TestExecCommandInfoEnv(t *testing.T) {
	cmd, err := ExecCommand(&kubeconfig.ExecConfig{Command: "plugin", InteractiveMode: kubeconfig.AlwaysExecInteractiveMode})
	require.NoError(t, err)
	assert.True(t, cmd.Interactive)
	require.Len(t, cmd.Env, 1)
	assert.Contains(t, cmd.Env[0], `KUBERNETES_EXEC_INFO=`)
	assert.Contains(t, cmd.Env[0], `"apiVersion":"client.authentication.k8s.io/v1beta1"`)
	assert.Contains(t, cmd.Env[0], `"interactive":true`)
}

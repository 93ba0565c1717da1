package kubeconfig

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const primaryConfig = `
apiVersion: v1
kind: Config
current-context: primary
contexts:
- name: primary
  context:
    cluster: primary-cluster
    user: primary-user
clusters:
- name: primary-cluster
  cluster:
    server: https://primary.example.com
users:
- name: primary-user
  user:
    token: primary-token
`

const secondaryConfig = `
current-context: secondary
contexts:
- name: secondary
  context:
    cluster: secondary-cluster
    user: secondary-user
clusters:
- name: secondary-cluster
  cluster:
    server: https://secondary.example.com
users:
- name: secondary-user
  user:
    token: secondary-token
preferences:
  colors: true
`

const partialConfig = `
current-context: primary
`

func writeFiles(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for p, content := range files {
		require.NoError(t, afero.WriteFile(fs, p, []byte(content), 0600))
	}
	return fs
}

func TestLoadFromEnvironment(t *testing.T) {
	tests := []struct {
		name           string
		files          map[string]string
		env            Environment
		wantContext    string
		wantClusters   []string
		wantColors     bool
		wantErr        error
		wantParseError bool
	}{
		{
			name:         "default path",
			files:        map[string]string{"/home/me/.kube/config": primaryConfig},
			env:          Environment{HomeDir: "/home/me", GOOS: "linux"},
			wantContext:  "primary",
			wantClusters: []string{"primary-cluster"},
		},
		{
			name:    "default path missing",
			files:   map[string]string{},
			env:     Environment{HomeDir: "/home/me", GOOS: "linux"},
			wantErr: ErrConfigNotFound,
		},
		{
			name: "first listed file wins",
			files: map[string]string{
				"/a/config": primaryConfig,
				"/b/config": secondaryConfig,
			},
			env:          Environment{KubeConfig: "/a/config:/b/config", HomeDir: "/home/me", GOOS: "linux"},
			wantContext:  "primary",
			wantClusters: []string{"primary-cluster"},
			// only the second file sets preferences, so it fills them in
			wantColors: true,
		},
		{
			name: "later files fill missing keys",
			files: map[string]string{
				"/a/config": partialConfig,
				"/b/config": secondaryConfig,
			},
			env:          Environment{KubeConfig: "/a/config:/b/config", GOOS: "darwin"},
			wantContext:  "primary",
			wantClusters: []string{"secondary-cluster"},
			wantColors:   true,
		},
		{
			name: "windows delimiter",
			files: map[string]string{
				`C:\a\config`: secondaryConfig,
				`C:\b\config`: primaryConfig,
			},
			env:          Environment{KubeConfig: `C:\a\config;C:\b\config`, GOOS: "windows"},
			wantContext:  "secondary",
			wantClusters: []string{"secondary-cluster"},
			wantColors:   true,
		},
		{
			name: "empty segments are skipped",
			files: map[string]string{
				"/a/config": primaryConfig,
			},
			env:          Environment{KubeConfig: ":/a/config:", GOOS: "linux"},
			wantContext:  "primary",
			wantClusters: []string{"primary-cluster"},
		},
		{
			name:           "malformed document",
			files:          map[string]string{"/home/me/.kube/config": "clusters: [oops"},
			env:            Environment{HomeDir: "/home/me", GOOS: "linux"},
			wantParseError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := writeFiles(t, tt.files)
			got, err := LoadFromEnvironment(fs, tt.env)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantParseError {
				var pe *ParseError
				assert.True(t, errors.As(err, &pe), "expected a ParseError, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantContext, got.CurrentContext)
			var clusters []string
			for _, c := range got.Clusters {
				clusters = append(clusters, c.Name)
			}
			assert.Equal(t, tt.wantClusters, clusters)
			assert.Equal(t, tt.wantColors, got.Preferences.Colors)
		})
	}
}

func TestLoadFromEnvironmentMissingListedFile(t *testing.T) {
	fs := writeFiles(t, map[string]string{"/a/config": primaryConfig})
	_, err := LoadFromEnvironment(fs, Environment{KubeConfig: "/a/config:/missing", GOOS: "linux"})
	assert.Error(t, err)
}

func TestConfigNotFoundErrorNamesPath(t *testing.T) {
	_, err := LoadFromEnvironment(afero.NewMemMapFs(), Environment{HomeDir: "/home/me", GOOS: "linux"})
	var nf *ConfigNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "/home/me/.kube/config", nf.Path)
	assert.Contains(t, err.Error(), "/home/me/.kube/config")
}

func TestPathListSeparator(t *testing.T) {
	assert.Equal(t, ";", PathListSeparator("windows"))
	assert.Equal(t, ":", PathListSeparator("linux"))
	assert.Equal(t, ":", PathListSeparator("darwin"))
}

func TestLoadWithValidation(t *testing.T) {
	const dangling = `
contexts:
- name: broken
  context:
    cluster: nowhere
    user: nobody
`
	fs := writeFiles(t, map[string]string{"/config": dangling})

	_, err := Load(fs, "/config")
	assert.NoError(t, err)

	_, err = Load(fs, "/config", WithValidContexts)
	assert.EqualError(t, err, `load kubeconfig: config "/config" invalid: context "broken" references unknown cluster "nowhere"`)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(New()))

	c := New()
	c.CurrentContext = "x"
	assert.False(t, IsEmpty(c))
}

func TestLoadFromEnvironmentEmptyFile(t *testing.T) {
	fs := writeFiles(t, map[string]string{"/home/me/.kube/config": ""})

	c, err := LoadFromEnvironment(fs, Environment{HomeDir: "/home/me", GOOS: "linux"})
	require.NoError(t, err)
	assert.True(t, IsEmpty(c))

	_, err = c.APIURL()
	assert.ErrorIs(t, err, ErrNotFound)
}

package kubeconfig

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/common-fate/clio"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// EnvVar is the environment variable holding a list of kubeconfig paths.
const EnvVar = "KUBECONFIG"

// Environment holds everything the loader would otherwise read from the process
// environment. Use EnvironmentFromOS to populate it for real invocations.
type Environment struct {
	// KubeConfig is the raw value of the KUBECONFIG variable.
	KubeConfig string
	// HomeDir is used to locate the default kubeconfig.
	HomeDir string
	// GOOS selects the path list delimiter.
	GOOS string
}

// EnvironmentFromOS builds an Environment from the running process.
func EnvironmentFromOS() (Environment, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Environment{}, errors.Wrap(err, "resolving home directory")
	}
	return Environment{
		KubeConfig: os.Getenv(EnvVar),
		HomeDir:    home,
		GOOS:       runtime.GOOS,
	}, nil
}

// PathListSeparator returns the delimiter used in KUBECONFIG for the given platform.
func PathListSeparator(goos string) string {
	if goos == "windows" {
		return ";"
	}
	return ":"
}

// DefaultPath returns the kubeconfig location used when KUBECONFIG is not set.
func (e Environment) DefaultPath() string {
	return filepath.Join(e.HomeDir, ".kube", "config")
}

// Paths returns the kubeconfig files listed in KUBECONFIG, in order.
func (e Environment) Paths() []string {
	if e.KubeConfig == "" {
		return nil
	}
	var paths []string
	for _, p := range strings.Split(e.KubeConfig, PathListSeparator(e.GOOS)) {
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

// LoadFromEnvironment loads the kubeconfig described by env.
//
// When KUBECONFIG lists files they are all loaded and merged, the first
// listed file winning on conflicts. Otherwise the default file under the home
// directory is loaded and a ConfigNotFoundError is returned if it is missing.
func LoadFromEnvironment(fs afero.Fs, env Environment) (*Config, error) {
	if paths := env.Paths(); len(paths) > 0 {
		clio.Debugw("loading kubeconfig from environment", "env", EnvVar, "paths", paths)

		configs := make([]*Config, 0, len(paths))
		for _, p := range paths {
			c, err := Load(fs, p)
			if err != nil {
				return nil, err
			}
			configs = append(configs, c)
		}
		merged, err := Merge(configs...)
		if err != nil {
			return nil, err
		}
		warnIfEmpty(merged, env.KubeConfig)
		return merged, nil
	}

	p := env.DefaultPath()
	if !fileExists(fs, p) {
		return nil, &ConfigNotFoundError{Path: p}
	}
	clio.Debugw("loading default kubeconfig", "path", p)
	c, err := Load(fs, p)
	if err != nil {
		return nil, err
	}
	warnIfEmpty(c, p)
	return c, nil
}

func warnIfEmpty(c *Config, source string) {
	if IsEmpty(c) {
		clio.Warnf("The kubeconfig at %s defines no contexts, clusters or users", source)
	}
}

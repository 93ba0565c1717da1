// Copyright 2023 Volvo Car Corporation
// SPDX-License-Identifier: Apache-2.0

package kubeconfig

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/afero"
)

// Load loads a kubeconfig file from the given path.
//
// Unlike a strict loader, a document holding only some of the top-level keys is
// accepted: when several files are merged, later files fill in what is missing.
func Load(fs afero.Fs, path string, validate ...ValidationFunc) (*Config, error) {
	if !fileExists(fs, path) {
		return nil, fmt.Errorf("load kubeconfig: file %q does not exist", path)
	}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf(
			"load kubeconfig: failed to read file %q: %w",
			path,
			err,
		)
	}

	c := New()

	if err = c.Unmarshal(b); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	for _, v := range validate {
		if verr := v(c); verr != nil {
			return nil, fmt.Errorf(
				"load kubeconfig: config %q invalid: %w",
				path,
				verr,
			)
		}
	}

	return c, nil
}

// IsEmpty reports whether the config holds nothing beyond the defaults of New.
func IsEmpty(c *Config) bool {
	return c == nil || cmp.Equal(c, New(), cmpopts.EquateEmpty())
}

func fileExists(fs afero.Fs, filename string) bool {
	info, err := fs.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

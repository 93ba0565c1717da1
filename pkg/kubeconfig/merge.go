// Copyright 2023 Volvo Car Corporation
// SPDX-License-Identifier: Apache-2.0

package kubeconfig

import (
	"errors"
	"fmt"

	"github.com/imdario/mergo"
)

// Merge merges multiple kubeconfig files into one.
//
// The first file wins: a later file only fills top-level keys which are still
// empty in the merged result. Entry lists are never combined, so when two
// files both define clusters only the clusters of the first one are kept.
func Merge(cc ...*Config) (*Config, error) {
	if len(cc) == 0 {
		return nil, errors.New("no config to merge")
	}

	r := New()
	for _, c := range cc {
		if c == nil {
			continue
		}
		if err := mergo.Merge(r, c); err != nil {
			return nil, fmt.Errorf("merge: %w", err)
		}
	}

	return r, nil
}

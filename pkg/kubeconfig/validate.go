// Copyright 2023 Volvo Car Corporation
// SPDX-License-Identifier: Apache-2.0

package kubeconfig

import (
	"fmt"
)

// ValidationFunc is used to validate a kubeconfig.
type ValidationFunc func(*Config) error

// WithValidContexts checks that each context has a valid cluster and user.
func WithValidContexts(c *Config) error {
	if err := withoutEmptyEntries(c); err != nil {
		return err
	}
	clusterSet := make(map[string]struct{})
	userSet := make(map[string]struct{})

	for _, cluster := range c.Clusters {
		clusterSet[cluster.Name] = struct{}{}
	}
	for _, user := range c.Users {
		userSet[user.Name] = struct{}{}
	}
	for _, ctx := range c.Contexts {
		if _, ok := clusterSet[ctx.Context.Cluster]; !ok {
			return fmt.Errorf(
				"context %q references unknown cluster %q",
				ctx.Name,
				ctx.Context.Cluster,
			)
		}
		if _, ok := userSet[ctx.Context.User]; !ok {
			return fmt.Errorf(
				"context %q references unknown user %q",
				ctx.Name,
				ctx.Context.User,
			)
		}
	}
	return nil
}

// WithUniqueNames checks that names within contexts, clusters and users are unique.
func WithUniqueNames(c *Config) error {
	check := func(kind string, names []string) error {
		seen := make(map[string]struct{}, len(names))
		for _, n := range names {
			if _, ok := seen[n]; ok {
				return fmt.Errorf("duplicate %s name %q", kind, n)
			}
			seen[n] = struct{}{}
		}
		return nil
	}

	if err := withoutEmptyEntries(c); err != nil {
		return err
	}

	var clusters, users, contexts []string
	for _, cl := range c.Clusters {
		clusters = append(clusters, cl.Name)
	}
	for _, u := range c.Users {
		users = append(users, u.Name)
	}
	for _, ctx := range c.Contexts {
		contexts = append(contexts, ctx.Name)
	}
	if err := check("cluster", clusters); err != nil {
		return err
	}
	if err := check("user", users); err != nil {
		return err
	}
	return check("context", contexts)
}

// WithEntries checks that the config defines at least one cluster, user and context.
func WithEntries(c *Config) error {
	if c == nil {
		return fmt.Errorf("config %w", errIsNil)
	}
	var ee []error
	if len(c.Clusters) == 0 {
		ee = append(ee, fmt.Errorf("no clusters defined"))
	}
	if len(c.Users) == 0 {
		ee = append(ee, fmt.Errorf("no users defined"))
	}
	if len(c.Contexts) == 0 {
		ee = append(ee, fmt.Errorf("no contexts defined"))
	}
	if len(ee) > 0 {
		var err error
		for i, e := range ee {
			if i == 0 {
				err = e
			} else {
				err = fmt.Errorf("%v + %w", e, err)
			}
		}
		return err
	}
	return nil
}

// withoutEmptyEntries rejects list items that decoded to nil, such as "- " or "- null".
func withoutEmptyEntries(c *Config) error {
	for i, cl := range c.Clusters {
		if cl == nil {
			return fmt.Errorf("cluster entry %d is empty", i)
		}
	}
	for i, u := range c.Users {
		if u == nil {
			return fmt.Errorf("user entry %d is empty", i)
		}
	}
	for i, ctx := range c.Contexts {
		if ctx == nil {
			return fmt.Errorf("context entry %d is empty", i)
		}
	}
	return nil
}

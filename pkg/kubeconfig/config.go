// Copyright 2023 Volvo Car Corporation
// SPDX-License-Identifier: Apache-2.0

package kubeconfig

import (
	"fmt"
	"reflect"
)

const (
	version = "v1"
	kind    = "Config"
)

// New creates a new kubeconfig.
func New() *Config {
	return &Config{
		APIVersion: version,
		Kind:       kind,
		Clusters:   []*ClusterConfig{},
		Users:      []*UserConfig{},
		Contexts:   []*ContextConfig{},
	}
}

// Config is a kubeconfig.
type Config struct {
	Kind           string           `json:"kind"`
	APIVersion     string           `json:"apiVersion"`
	Preferences    Preferences      `json:"preferences"`
	CurrentContext string           `json:"current-context"`
	Clusters       []*ClusterConfig `json:"clusters"`
	Contexts       []*ContextConfig `json:"contexts"`
	Users          []*UserConfig    `json:"users"`
}

// UserConfig is a user in a kubeconfig.
type UserConfig struct {
	Name string   `json:"name"`
	User AuthInfo `json:"user"`
}

// ContextConfig is a context in a kubeconfig.
type ContextConfig struct {
	Name    string  `json:"name"`
	Context Context `json:"context"`
}

// ClusterConfig is a cluster in a kubeconfig.
type ClusterConfig struct {
	Name    string  `json:"name"`
	Cluster Cluster `json:"cluster"`
}

// AddCluster adds a cluster to the kubeconfig.
func (c *Config) AddCluster(cluster *ClusterConfig) error {
	if cluster == nil {
		return fmt.Errorf("add cluster: %w", errIsNil)
	}
	if reflect.ValueOf(cluster.Cluster).IsZero() {
		return fmt.Errorf("add cluster: %w", errIsEmpty)
	}

	c.Clusters = append(c.Clusters, cluster)
	return nil
}

// AddUser adds a user to the kubeconfig.
func (c *Config) AddUser(user *UserConfig) error {
	if user == nil {
		return fmt.Errorf("add user: %w", errIsNil)
	}
	c.Users = append(c.Users, user)
	return nil
}

// AddContext adds a context to the kubeconfig.
func (c *Config) AddContext(context *ContextConfig) error {
	if context == nil {
		return fmt.Errorf("add context: %w", errIsNil)
	}
	if reflect.ValueOf(context.Context).IsZero() {
		return fmt.Errorf("add context: %w", errIsEmpty)
	}

	c.Contexts = append(c.Contexts, context)
	return nil
}

// GetCluster returns the first cluster with the provided name, or nil.
func (c *Config) GetCluster(name string) *ClusterConfig {
	for _, cl := range c.Clusters {
		if cl != nil && cl.Name == name {
			return cl
		}
	}

	return nil
}

// GetUser returns the first user with the provided name, or nil.
func (c *Config) GetUser(name string) *UserConfig {
	for _, u := range c.Users {
		if u != nil && u.Name == name {
			return u
		}
	}

	return nil
}

// GetContext returns the first context with the provided name, or nil.
func (c *Config) GetContext(name string) *ContextConfig {
	for _, ctx := range c.Contexts {
		if ctx != nil && ctx.Name == name {
			return ctx
		}
	}

	return nil
}

// ContextExists returns true if the context with provided name exists
func (c *Config) ContextExists(name string) bool {
	return c.GetContext(name) != nil
}

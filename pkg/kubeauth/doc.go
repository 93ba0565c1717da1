// Package kubeauth derives the bearer token for a kubeconfig user.
//
// A user record is decoded once into a Method, which names the single auth
// shape that applies to it. Tokens are never cached: every call to
// Resolver.Resolve re-reads the record and, for exec plugins, runs the
// plugin again.
package kubeauth

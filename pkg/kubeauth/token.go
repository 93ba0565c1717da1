package kubeauth

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/common-fate/clio"
	"github.com/common-fate/kubeconn/pkg/kubeconfig"
	"github.com/pkg/errors"
)

// Token is a bearer token derived from a user record.
type Token struct {
	Value string
	Kind  Kind
	// Expiry is set when the source of the token declares one.
	Expiry *time.Time
}

// Resolver derives bearer tokens from kubeconfig users.
type Resolver struct {
	Runner CommandRunner
	// Now returns the time used for expiry checks.
	Now func() time.Time
	// Timeout bounds exec plugins. Zero lets a plugin run until it exits.
	Timeout time.Duration
}

// NewResolver returns a Resolver which runs exec plugins as child processes.
func NewResolver() *Resolver {
	return &Resolver{Runner: ExecRunner{}, Now: time.Now}
}

// Resolve returns the bearer token of the user, or nil when the user doesn't
// authenticate with a token.
//
// An expired access token and any exec plugin failure are returned as errors;
// they are never treated as a missing token.
func (r *Resolver) Resolve(ctx context.Context, u *kubeconfig.AuthInfo) (*Token, error) {
	m := DecodeMethod(u)
	clio.Debugw("decoded user auth method", "kind", m.Kind)

	switch m.Kind {
	case StaticToken, IDToken:
		return &Token{Value: m.Token, Kind: m.Kind}, nil
	case AccessToken:
		return r.accessToken(m)
	case Exec:
		return r.execToken(ctx, m.Exec)
	}
	return nil, nil
}

func (r *Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Resolver) accessToken(m Method) (*Token, error) {
	t := &Token{Value: m.Token, Kind: AccessToken}
	if m.Expiry == "" {
		return t, nil
	}
	expiry, err := ParseExpiry(m.Expiry)
	if err != nil {
		return nil, err
	}
	if expiry.Before(r.now()) {
		return nil, &ExpiredError{Kind: AccessToken, Expiry: expiry}
	}
	t.Expiry = &expiry
	return t, nil
}

// ParseExpiry parses an auth-provider expiry timestamp.
func ParseExpiry(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05Z07:00", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid auth-provider expiry %q", s)
}

func (r *Resolver) execToken(ctx context.Context, cfg *kubeconfig.ExecConfig) (*Token, error) {
	cmd, err := ExecCommand(cfg)
	if err != nil {
		return nil, err
	}
	line := quoteCommand(cmd)

	runner := r.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	clio.Debugw("running exec credential plugin", "command", line, "timeout", r.Timeout)
	out, err := runner.Run(ctx, cmd)
	if err != nil {
		execErr := &ExecError{CommandLine: line, Err: err}
		if errors.Is(err, exec.ErrNotFound) {
			execErr.InstallHint = cfg.InstallHint
		}
		if ctx.Err() == context.DeadlineExceeded {
			execErr.Err = fmt.Errorf("timed out after %s: %w", r.Timeout, err)
		}
		return nil, execErr
	}

	status, err := parseExecCredential(out)
	if err != nil {
		return nil, &ExecError{CommandLine: line, Err: err}
	}

	t := &Token{Value: status.Token, Kind: Exec}
	if status.ExpirationTimestamp != nil && !status.ExpirationTimestamp.IsZero() {
		expiry := status.ExpirationTimestamp.Time
		if expiry.Before(r.now()) {
			return nil, &ExecError{CommandLine: line, Err: &ExpiredError{Kind: Exec, Expiry: expiry}}
		}
		t.Expiry = &expiry
	}
	return t, nil
}

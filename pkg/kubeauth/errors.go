package kubeauth

import (
	"errors"
	"fmt"
	"time"
)

// ErrCredentialExpired is returned when a stored token has already expired.
// The user needs to re-authenticate outside of kubeconn.
var ErrCredentialExpired = errors.New("the access token has expired")

// ExpiredError records when an expired credential stopped being valid.
type ExpiredError struct {
	Kind   Kind
	Expiry time.Time
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("%s: %s expired at %s. Make sure you can access your cluster and try again", ErrCredentialExpired, e.Kind, e.Expiry.Format(time.RFC3339))
}

func (e *ExpiredError) Unwrap() error { return ErrCredentialExpired }

// ExecError is returned when an exec credential plugin fails to produce a token.
type ExecError struct {
	// CommandLine is the plugin command line, quoted for display.
	CommandLine string
	// InstallHint is copied from the kubeconfig when the binary could not be found.
	InstallHint string
	Err         error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("exec credential plugin %s: %s", e.CommandLine, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

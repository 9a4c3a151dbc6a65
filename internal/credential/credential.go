// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credential acquires the API token used to authenticate lookups.
// Environment access is injected as a lookup function so callers can test
// the acquisition path without touching real process environment state.
package credential

import (
	"errors"
	"fmt"
)

// EnvVar is the environment variable the token is read from.
const EnvVar = "API_TOKEN"

// ErrMissing reports that the token environment variable is unset or empty.
var ErrMissing = errors.New("credential missing")

// LookupFunc reports the value of an environment variable and whether it is
// set. os.LookupEnv satisfies this signature.
type LookupFunc func(key string) (string, bool)

// Token returns the API token from the environment via lookup. An unset
// variable is an error naming the expectation that failed. An empty value
// is treated the same as unset: an empty token can never authenticate.
func Token(lookup LookupFunc) (string, error) {
	v, ok := lookup(EnvVar)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: expected the %s environment variable to be set", ErrMissing, EnvVar)
	}
	return v, nil
}

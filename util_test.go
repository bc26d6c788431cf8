package bspline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertValidationError(t *testing.T, fn func() error) {
	t.Helper()
	err := fn()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("got error %v, want a *ValidationError", err)
	}
}

func assertConfigError(t *testing.T, fn func() error) {
	t.Helper()
	err := fn()
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Errorf("got error %v, want a *ConfigurationError", err)
	}
}

func assertDomainError(t *testing.T, fn func() error) {
	t.Helper()
	err := fn()
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Errorf("got error %v, want a *DomainError", err)
	}
}

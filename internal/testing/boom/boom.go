// Package boom provides a sentinel error for tests.
package boom

import (
	"errors"

	"github.com/stretchr/testify/require"
)

// Error is returned by test doubles to simulate an unexpected failure.
var Error = errors.New("boom!")

// ErrorIs asserts that err wraps Error. It satisfies
// require.ErrorAssertionFunc.
func ErrorIs(t require.TestingT, err error, msgAndArgs ...any) {
	require.ErrorIs(t, err, Error, msgAndArgs...)
}

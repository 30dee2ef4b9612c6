package deptbrain_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/deptbrain"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := deptbrain.Errorf(deptbrain.ENOTFOUND, "faculty file %q not found", "test")

	assert.Equal(t, deptbrain.ENOTFOUND, deptbrain.ErrorCode(err))
	assert.Equal(t, "faculty file \"test\" not found", deptbrain.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, deptbrain.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, deptbrain.EINTERNAL, deptbrain.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, deptbrain.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", deptbrain.ErrorMessage(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := deptbrain.Errorf(deptbrain.EUNAVAILABLE, "vector store is not configured")
	wrapped := &wrapError{inner}

	assert.Equal(t, deptbrain.EUNAVAILABLE, deptbrain.ErrorCode(wrapped))
	assert.Equal(t, "vector store is not configured", deptbrain.ErrorMessage(wrapped))
}

type wrapError struct{ err error }

func (w *wrapError) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrapError) Unwrap() error { return w.err }

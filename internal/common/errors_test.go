package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "bad knob", ErrInvalidInput)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
	assert.Contains(t, err.Error(), "bad knob")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "load"))

	wrapped := WrapError(ErrNotFound, "load")
	require.Error(t, wrapped)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "load")
}

func TestGRPCHelperCodes(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{InvalidArgumentError("benchmark_path is required"), codes.InvalidArgument},
		{InvalidArgumentErrorf("min_similarity %v out of range", 1.5), codes.InvalidArgument},
		{NotFoundError("run not found"), codes.NotFound},
		{InternalError("create run failed"), codes.Internal},
		{InternalErrorf("%s failed", "get reports"), codes.Internal},
	}
	for _, tc := range cases {
		st, ok := status.FromError(tc.err)
		require.True(t, ok)
		assert.Equal(t, tc.code, st.Code(), st.Message())
	}
}

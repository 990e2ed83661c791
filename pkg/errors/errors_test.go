package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, CodeLLMCallFailed, "llm generate failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "4005")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsCode(t *testing.T) {
	err := New(CodeMalformedOutline, "bad outline")
	assert.True(t, IsCode(err, CodeMalformedOutline))
	assert.False(t, IsCode(err, CodeEmptyDirectory))

	// 错误链中间有 fmt 包装也能识别
	wrapped := fmt.Errorf("run failed: %w", err)
	assert.True(t, IsCode(wrapped, CodeMalformedOutline))

	assert.False(t, IsCode(stderrors.New("plain"), CodeMalformedOutline))
	assert.False(t, IsCode(nil, CodeMalformedOutline))
}

func TestAsAppError(t *testing.T) {
	appErr := New(CodeStorageError, "write failed").WithDetail("/tmp/out")
	got := AsAppError(fmt.Errorf("wrap: %w", appErr))
	require.NotNil(t, got)
	assert.Equal(t, CodeStorageError, got.Code)
	assert.Equal(t, "/tmp/out", got.Detail)

	unknown := AsAppError(stderrors.New("plain"))
	assert.Equal(t, CodeUnknown, unknown.Code)
}

func TestWithError(t *testing.T) {
	cause := stderrors.New("disk full")
	err := New(CodeStorageError, "write failed").WithError(cause)
	assert.ErrorIs(t, err, cause)
}

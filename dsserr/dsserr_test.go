package dsserr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dss-extensions/dss-go/dsserr"
)

func TestErrorFormat(t *testing.T) {
	err := dsserr.New(302, "Object \"line.x\" not found")
	require.Error(t, err)
	assert.Equal(t, `(DSSError#302) Object "line.x" not found`, err.Error())
}

func TestNewZeroIsNil(t *testing.T) {
	assert.NoError(t, dsserr.New(0, "ignored"))
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("solve: %w", dsserr.New(485, "Max Control Iterations Exceeded"))

	var e *dsserr.Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, int32(485), e.Number)
	assert.Equal(t, int32(485), dsserr.Number(wrapped))
	assert.True(t, errors.Is(wrapped, &dsserr.Error{Number: 485}))
	assert.False(t, errors.Is(wrapped, &dsserr.Error{Number: 486}))
}

func TestNumberOfLocalError(t *testing.T) {
	err := fmt.Errorf("batch: %w", dsserr.ErrDisposed)
	assert.Equal(t, int32(0), dsserr.Number(err))
	assert.ErrorIs(t, err, dsserr.ErrDisposed)
}

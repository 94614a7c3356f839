package report

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/fpkit/pkg/fp/guard"
)

func TestRecorder_CollectsFailures(t *testing.T) {
	t.Parallel()

	rec := NewRecorder[string]()
	parse := guard.Try(strconv.Atoi, rec.Callback())

	parse("1")
	parse("a")
	parse("b")

	failures := rec.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "a", failures[0].Input)
	assert.Equal(t, "b", failures[1].Input)
	assert.NotEqual(t, uuid.Nil, failures[0].ID)
	assert.NotEqual(t, failures[0].ID, failures[1].ID)
	assert.False(t, failures[0].At.IsZero())

	var numErr *strconv.NumError
	assert.ErrorAs(t, failures[0].Err, &numErr)

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
}

func TestLog_WritesWarning(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	cb := Log[int](zap.New(core), "step failed")

	cb(7, errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "step failed", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.EqualValues(t, 7, fields["input"])
	assert.Equal(t, "boom", fields["error"])
}

func TestTee(t *testing.T) {
	t.Parallel()

	a, b := NewRecorder[int](), NewRecorder[int]()
	cb := Tee(a.Callback(), nil, b.Callback(), Nop[int]())

	cb(1, errors.New("x"))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}

package altdss

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dss-extensions/dss-go/dsserr"
)

// gcEngine collects garbage in the middle of a batch read and records how
// many batches had been released at that point.
type gcEngine struct {
	*fakeEngine
	releasedDuringRead int32
}

func (e *gcEngine) BatchFloat64(b RawBatch, prop int32) ([]float64, error) {
	for range 5 {
		runtime.GC()
		time.Sleep(time.Millisecond)
	}
	e.releasedDuringRead = e.disposed.Load()
	return e.fakeEngine.BatchFloat64(b, prop)
}

func TestBatchAliveDuringEngineCall(t *testing.T) {
	e := &gcEngine{fakeEngine: newFakeEngine("Line")}
	a := New(e, nil)

	// The batch is unreachable from the test once Length starts.
	read := func() ([]float64, error) {
		b, err := a.Line.NewBatch("l1", "l2")
		if err != nil {
			return nil, err
		}
		return b.Length()
	}
	lengths, err := read()
	require.NoError(t, err)
	assert.Len(t, lengths, 2)
	assert.Zero(t, e.releasedDuringRead)
}

func TestBatchFinalizer(t *testing.T) {
	a, e := newTestDSS(t)

	func() {
		b, err := a.Load.NewBatch("a", "b")
		require.NoError(t, err)
		require.Equal(t, 2, b.Len())
	}()

	assert.Eventually(t, func() bool {
		runtime.GC()
		return e.disposed.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestBatchFinalizerAfterDispose(t *testing.T) {
	a, e := newTestDSS(t)

	func() {
		b, err := a.Load.NewBatch("a", "b")
		require.NoError(t, err)
		b.Dispose()
	}()

	for range 3 {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, int32(1), e.disposed.Load())
}

func TestBatchLengthChecks(t *testing.T) {
	a, _ := newTestDSS(t)
	b, err := a.Capacitor.NewBatch("c1", "c2", "c3")
	require.NoError(t, err)
	defer b.Dispose()

	const intProp, strProp = 4, 5

	err = b.SetInt32s(intProp, []int32{1, 2})
	assert.ErrorIs(t, err, dsserr.ErrLengthMismatch)
	err = b.ApplyInt32s(intProp, BatchOp_Increment, []int32{1, 2, 3, 4})
	assert.ErrorIs(t, err, dsserr.ErrLengthMismatch)
	err = b.SetStrings(strProp, []string{"x"})
	assert.ErrorIs(t, err, dsserr.ErrLengthMismatch)
	err = b.SetStrings(strProp, nil)
	assert.ErrorIs(t, err, dsserr.ErrLengthMismatch)

	// nothing was written
	ints, err := b.Int32(intProp)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 0}, ints)
	strs, err := b.String(strProp)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", ""}, strs)

	require.NoError(t, b.SetStrings(strProp, []string{"x", "y", "z"}))
	strs, err = b.String(strProp)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, strs)
}

func TestBatchApplyInt32s(t *testing.T) {
	a, _ := newTestDSS(t)
	b, err := a.Capacitor.NewBatch("c1", "c2", "c3")
	require.NoError(t, err)
	defer b.Dispose()

	const prop = 4
	require.NoError(t, b.SetInt32(prop, 2))
	require.NoError(t, b.ApplyInt32s(prop, BatchOp_Multiply, []int32{1, 2, 3}))
	got, err := b.Int32(prop)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 4, 6}, got)

	require.NoError(t, b.ApplyInt32s(prop, BatchOp_Increment, []int32{-2, 0, 1}))
	got, err = b.Int32(prop)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 4, 7}, got)

	require.NoError(t, b.SetInt32s(prop, []int32{9, 8, 7}))
	got, err = b.Int32(prop)
	require.NoError(t, err)
	assert.Equal(t, []int32{9, 8, 7}, got)
}

func TestRawBatchCheckLen(t *testing.T) {
	raw := RawBatch{Count: 3}
	assert.NoError(t, raw.CheckLen(3))
	assert.ErrorIs(t, raw.CheckLen(2), dsserr.ErrLengthMismatch)
	assert.ErrorIs(t, raw.CheckLen(0), dsserr.ErrLengthMismatch)
	assert.NoError(t, RawBatch{}.CheckLen(0))
}

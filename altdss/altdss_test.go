package altdss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dss-extensions/dss-go/dsserr"
	"github.com/dss-extensions/dss-go/enums"
)

func newTestDSS(t *testing.T) (*AltDSS, *fakeEngine) {
	t.Helper()
	e := newFakeEngine("Line", "LineCode", "Load", "LoadShape", "Monitor", "Capacitor", "Transformer")
	return New(e, nil), e
}

func TestFindAndNew(t *testing.T) {
	a, _ := newTestDSS(t)

	ld, err := a.Load.New("LD1", true)
	require.NoError(t, err)
	require.False(t, ld.IsNil())

	found, err := a.Load.Find("ld1")
	require.NoError(t, err)
	assert.Equal(t, ld.Handle(), found.Handle())

	full, err := found.FullName()
	require.NoError(t, err)
	assert.Equal(t, "Load.ld1", full)

	_, err = a.Load.Find("nope")
	assert.ErrorIs(t, err, dsserr.ErrNotFound)

	_, err = a.Load.At(2)
	assert.ErrorIs(t, err, dsserr.ErrNotFound)
}

func TestUnknownClass(t *testing.T) {
	a, _ := newTestDSS(t)

	_, err := a.Storage.Count()
	assert.ErrorIs(t, err, dsserr.ErrUnknownClass)

	_, err = a.Class("Fuse")
	assert.ErrorIs(t, err, dsserr.ErrUnknownClass)

	cls, err := a.Class("load")
	require.NoError(t, err)
	assert.Equal(t, "Load", cls.Name)
}

func TestSeqAndNames(t *testing.T) {
	a, _ := newTestDSS(t)
	for _, n := range []string{"a", "b", "c"} {
		_, err := a.Line.New(n, false)
		require.NoError(t, err)
	}

	n, err := a.Line.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	names, err := a.Line.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)

	var seen int
	for l, err := range a.Line.Seq() {
		require.NoError(t, err)
		idx, err := l.Index()
		require.NoError(t, err)
		seen++
		assert.Equal(t, int32(seen), idx)
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestTypedProperties(t *testing.T) {
	a, _ := newTestDSS(t)
	ld, err := a.Load.New("ld1", false)
	require.NoError(t, err)

	require.NoError(t, ld.SetKW(12.5))
	require.NoError(t, ld.SetBus1("b2.1.2"))
	require.NoError(t, ld.SetModel(enums.LoadModels_ConstZ))
	require.NoError(t, ld.SetZIPV([]float64{0.2, 0.3, 0.5, 0.2, 0.3, 0.5, 0.8}))

	kw, err := ld.KW()
	require.NoError(t, err)
	assert.Equal(t, 12.5, kw)

	bus, err := ld.Bus1()
	require.NoError(t, err)
	assert.Equal(t, "b2.1.2", bus)

	model, err := ld.Model()
	require.NoError(t, err)
	assert.Equal(t, enums.LoadModels_ConstZ, model)

	zipv, err := ld.ZIPV()
	require.NoError(t, err)
	assert.Len(t, zipv, 7)
}

func TestMatrixProperty(t *testing.T) {
	a, _ := newTestDSS(t)
	l, err := a.Line.New("l1", false)
	require.NoError(t, err)

	// Row-major input; stored column by column.
	in := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, l.SetRMatrix(in))

	raw, err := l.Float64s(lineRMatrix)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 2, 4}, raw)

	out, err := l.RMatrix()
	require.NoError(t, err)
	assert.True(t, mat.Equal(in, out))
}

func TestGetSetByName(t *testing.T) {
	a, _ := newTestDSS(t)
	ld, err := a.Load.New("ld1", false)
	require.NoError(t, err)
	require.NoError(t, ld.SetKW(1))

	require.NoError(t, ld.Set("KW", "42"))
	v, err := ld.Get("kw")
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	kw, err := ld.KW()
	require.NoError(t, err)
	assert.Equal(t, 42.0, kw)

	err = ld.Set("nosuch", "1")
	assert.ErrorIs(t, err, dsserr.ErrUnknownProperty)
	assert.ErrorContains(t, err, "Load.nosuch")
}

func TestEdit(t *testing.T) {
	a, e := newTestDSS(t)
	ld, err := a.Load.New("ld1", false)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = ld.Edit(func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, e.edits)
	assert.Equal(t, 1, e.endEdits, "edit is closed even when fn fails")

	e.failEdit = boom
	called := false
	err = ld.Edit(func() error { called = true; return nil })
	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}

func TestObjectReferences(t *testing.T) {
	a, _ := newTestDSS(t)
	lc, err := a.LineCode.New("336acsr", false)
	require.NoError(t, err)
	l, err := a.Line.New("l1", false)
	require.NoError(t, err)

	ref, err := l.LineCode()
	require.NoError(t, err)
	assert.True(t, ref.IsNil())

	require.NoError(t, l.SetLineCode(lc))
	ref, err = l.LineCode()
	require.NoError(t, err)
	require.False(t, ref.IsNil())
	assert.Equal(t, lineCodeClass, ref.Class())

	name, err := ref.Name()
	require.NoError(t, err)
	assert.Equal(t, "336acsr", name)

	obj, err := a.Object("linecode.336ACSR")
	require.NoError(t, err)
	assert.Equal(t, lc.Handle(), obj.Handle())

	_, err = a.Object("linecode")
	assert.ErrorIs(t, err, dsserr.ErrNotFound)
}

func TestMonitorElement(t *testing.T) {
	a, _ := newTestDSS(t)
	l, err := a.Line.New("l1", false)
	require.NoError(t, err)
	m, err := a.Monitor.New("m1", false)
	require.NoError(t, err)

	require.NoError(t, m.SetElement(l.Obj))
	require.NoError(t, m.SetMode(enums.MonitorModes_Power|enums.MonitorModes_Sequence))

	el, err := m.Element()
	require.NoError(t, err)
	full, err := el.FullName()
	require.NoError(t, err)
	assert.Equal(t, "Line.l1", full)

	mode, err := m.Mode()
	require.NoError(t, err)
	assert.Equal(t, enums.MonitorModes(17), mode)
}

func TestBatchOperations(t *testing.T) {
	a, _ := newTestDSS(t)
	b, err := a.Load.NewBatch("a", "b", "c")
	require.NoError(t, err)
	defer b.Dispose()

	require.Equal(t, 3, b.Len())
	require.NoError(t, b.SetKWEach([]float64{1, 2, 3}))
	require.NoError(t, b.ScaleKW(2))

	kw, err := b.KW()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, kw)

	require.NoError(t, b.ApplyFloat64(loadKW, BatchOp_Increment, 1))
	kw, err = b.KW()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5, 7}, kw)

	err = b.SetKWEach([]float64{1, 2})
	assert.ErrorIs(t, err, dsserr.ErrLengthMismatch)

	names, err := b.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)

	loads, err := b.Loads()
	require.NoError(t, err)
	require.Len(t, loads, 3)
	v, err := loads[2].KW()
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestBatchSetByName(t *testing.T) {
	a, _ := newTestDSS(t)
	b, err := a.Load.NewBatch("a", "b")
	require.NoError(t, err)
	require.NoError(t, b.SetKW(0))

	require.NoError(t, b.Set("kW", "5"))
	got, err := b.Get("kw")
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "5"}, got)

	assert.ErrorIs(t, b.Set("nosuch", "1"), dsserr.ErrUnknownProperty)
}

func TestBatchDispose(t *testing.T) {
	a, e := newTestDSS(t)
	b, err := a.Line.NewBatch("l1", "l2")
	require.NoError(t, err)

	b.Dispose()
	b.Dispose()
	assert.Equal(t, int32(1), e.disposed.Load())
	assert.Equal(t, 0, b.Len())

	_, err = b.Length()
	assert.ErrorIs(t, err, dsserr.ErrDisposed)
	assert.ErrorIs(t, b.SetLength(1), dsserr.ErrDisposed)
	_, err = b.Objs()
	assert.ErrorIs(t, err, dsserr.ErrDisposed)
}

func TestBatchSelection(t *testing.T) {
	a, _ := newTestDSS(t)
	for _, n := range []string{"feeder_1", "feeder_2", "tie"} {
		l, err := a.Line.New(n, false)
		require.NoError(t, err)
		require.NoError(t, l.SetEnabled(n != "feeder_2"))
	}

	all, err := a.Line.Batch()
	require.NoError(t, err)
	assert.Equal(t, 3, all.Len())

	m, err := a.Line.Match("^FEEDER")
	require.NoError(t, err)
	names, err := m.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"feeder_1", "feeder_2"}, names)

	en, err := a.Line.Class().Property("enabled")
	require.NoError(t, err)
	w, err := a.Line.Where(en.Index, 1)
	require.NoError(t, err)
	names, err = w.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"feeder_1", "tie"}, names)

	bi, err := a.Line.ByIndex(3, 1)
	require.NoError(t, err)
	names, err = bi.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"tie", "feeder_1"}, names)
}

func TestBatchObjects(t *testing.T) {
	a, _ := newTestDSS(t)
	ls, err := a.LoadShape.New("day", false)
	require.NoError(t, err)
	b, err := a.Load.NewBatch("a", "b")
	require.NoError(t, err)

	lds, err := b.Loads()
	require.NoError(t, err)
	require.NoError(t, lds[0].SetDaily(ls))

	refs, err := b.Objects(loadDaily)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.False(t, refs[0].IsNil())
	assert.True(t, refs[1].IsNil())

	require.NoError(t, b.SetDaily(ls))
	refs, err = b.Objects(loadDaily)
	require.NoError(t, err)
	assert.False(t, refs[1].IsNil())
}

func TestBatchEdit(t *testing.T) {
	a, e := newTestDSS(t)
	b, err := a.Capacitor.NewBatch("c1", "c2")
	require.NoError(t, err)

	err = b.Edit(func() error { return b.SetInt32(capNumSteps, 2) })
	require.NoError(t, err)
	assert.Equal(t, 1, e.edits)
	assert.Equal(t, 1, e.endEdits)

	steps, err := b.NumSteps()
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 2}, steps)
}

func TestLoadShapeMult(t *testing.T) {
	a, _ := newTestDSS(t)
	ls, err := a.LoadShape.New("day", false)
	require.NoError(t, err)

	require.NoError(t, ls.SetPMult([]float64{0.5, 0.8, 1.0}))
	n, err := ls.NPts()
	require.NoError(t, err)
	assert.Equal(t, int32(3), n)
}

func TestTransformerConns(t *testing.T) {
	a, _ := newTestDSS(t)
	tr, err := a.Transformer.New("t1", false)
	require.NoError(t, err)

	require.NoError(t, tr.SetConns([]Connection{Delta, Wye}))
	conns, err := tr.Conns()
	require.NoError(t, err)
	assert.Equal(t, []Connection{Delta, Wye}, conns)
}

func TestJSON(t *testing.T) {
	a, _ := newTestDSS(t)
	b, err := a.Load.NewBatch("x", "y")
	require.NoError(t, err)
	s, err := b.ToJSON(0)
	require.NoError(t, err)
	assert.JSONEq(t, `["x","y"]`, s)
}

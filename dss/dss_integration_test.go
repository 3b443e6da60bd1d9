//go:build integration

package dss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dss-extensions/dss-go/dssconfig"
	"github.com/dss-extensions/dss-go/dsserr"
	"github.com/dss-extensions/dss-go/enums"
	"github.com/dss-extensions/dss-go/logging"
)

var testCircuit = []string{
	"clear",
	"new circuit.test basekv=12.47 pu=1.0 bus1=src",
	"new linecode.lc1 nphases=3 r1=0.1 x1=0.2 r0=0.3 x0=0.6 units=km",
	"new line.l1 bus1=src bus2=b2 linecode=lc1 length=1 units=km",
	"new line.l2 bus1=b2 bus2=b3 linecode=lc1 length=0.5 units=km",
	"new loadshape.daily npts=4 interval=6 mult=(0.5 0.8 1.0 0.7)",
	"new load.ld1 bus1=b2 kv=12.47 kw=500 pf=0.95",
	"new load.ld2 bus1=b3 kv=12.47 kw=300 pf=0.9",
	"set voltagebases=[12.47]",
	"calcvoltagebases",
	"solve",
}

var prime *IDSS

// newEngine returns a fresh context holding the solved test circuit.
func newEngine(t *testing.T) *IDSS {
	t.Helper()
	if prime == nil {
		var err error
		prime, err = New(dssconfig.Config{}, WithLogger(logging.Discard()))
		require.NoError(t, err)
	}
	d, err := prime.NewContext()
	require.NoError(t, err)
	t.Cleanup(func() { d.Dispose() })
	require.NoError(t, d.Text.Commands(testCircuit))
	return d
}

func TestCircuitBasics(t *testing.T) {
	d := newEngine(t)
	c := &d.ActiveCircuit

	name, err := c.Name()
	require.NoError(t, err)
	assert.Equal(t, "test", name)

	n, err := c.NumBuses()
	require.NoError(t, err)
	assert.Equal(t, int32(3), n)

	converged, err := c.Solution.Get_Converged()
	require.NoError(t, err)
	assert.True(t, converged)

	buses, err := c.AllBusNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "b2", "b3"}, buses)

	vpu, err := c.AllBusVmagPu()
	require.NoError(t, err)
	require.Len(t, vpu, 9)
	for _, v := range vpu {
		assert.InDelta(t, 1.0, v, 0.1)
	}
}

func TestIterable(t *testing.T) {
	d := newEngine(t)
	lines := &d.ActiveCircuit.Lines

	count, err := lines.Count()
	require.NoError(t, err)
	assert.Equal(t, int32(2), count)

	names, err := lines.AllNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"l1", "l2"}, names)

	var seen []string
	for name, err := range lines.Items() {
		require.NoError(t, err)
		seen = append(seen, name)
	}
	assert.Equal(t, names, seen)

	idx, err := lines.First()
	require.NoError(t, err)
	assert.Equal(t, int32(1), idx)
	idx, err = lines.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(2), idx)
	idx, err = lines.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(0), idx)

	require.NoError(t, lines.Set_Name("l2"))
	length, err := lines.Get_Length()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, length, 1e-9)
}

func TestBusAccessors(t *testing.T) {
	d := newEngine(t)
	c := &d.ActiveCircuit

	bus, err := c.BusByName("b2")
	require.NoError(t, err)
	name, err := bus.Name()
	require.NoError(t, err)
	assert.Equal(t, "b2", name)

	bus, err = c.BusByIndex(2)
	require.NoError(t, err)
	name, err = bus.Name()
	require.NoError(t, err)
	assert.Equal(t, "b3", name)

	_, err = c.BusByName("nowhere")
	assert.ErrorIs(t, err, dsserr.ErrNotFound)

	idx, err := c.SetActiveBus("src")
	require.NoError(t, err)
	assert.Equal(t, int32(0), idx)
}

func TestEngineErrors(t *testing.T) {
	d := newEngine(t)

	err := d.Text.Set_Command("new nosuchclass.x")
	require.Error(t, err)
	var dssErr *dsserr.Error
	require.True(t, errors.As(err, &dssErr))
	assert.NotZero(t, dssErr.Number)

	// the error state is reset after being reported
	_, err = d.ActiveCircuit.Name()
	assert.NoError(t, err)
}

func TestCktElementMatrices(t *testing.T) {
	d := newEngine(t)

	elem, err := d.ActiveCircuit.CktElementByName("line.l1")
	require.NoError(t, err)
	name, err := elem.Name()
	require.NoError(t, err)
	assert.Equal(t, "Line.l1", name)

	y, err := elem.YprimDense()
	require.NoError(t, err)
	r, c := y.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 6, c)
	assert.Equal(t, y.At(0, 1), y.At(1, 0))
}

func TestCompressedY(t *testing.T) {
	d := newEngine(t)

	full, err := d.ActiveCircuit.SystemYDense()
	require.NoError(t, err)
	var csc CSC
	csc, err = d.YMatrix.CompressedY(false)
	require.NoError(t, err)
	expanded, err := csc.CDense()
	require.NoError(t, err)

	r, c := full.Dims()
	require.Equal(t, csc.N, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, real(full.At(i, j)), real(expanded.At(i, j)), 1e-6)
			assert.InDelta(t, imag(full.At(i, j)), imag(expanded.At(i, j)), 1e-6)
		}
	}
}

func TestObjAndClassicViewsAgree(t *testing.T) {
	d := newEngine(t)
	loads := &d.ActiveCircuit.Loads

	batch, err := d.Obj().Load.Batch()
	require.NoError(t, err)
	defer batch.Dispose()
	assert.Equal(t, 2, batch.Len())

	kw, err := batch.KW()
	require.NoError(t, err)
	assert.Equal(t, []float64{500, 300}, kw)

	require.NoError(t, batch.ScaleKW(2))
	require.NoError(t, loads.Set_Name("ld2"))
	v, err := loads.Get_kW()
	require.NoError(t, err)
	assert.InDelta(t, 600, v, 1e-9)

	require.NoError(t, loads.Set_kW(100))
	ld2, err := d.Obj().Load.Find("ld2")
	require.NoError(t, err)
	v, err = ld2.KW()
	require.NoError(t, err)
	assert.InDelta(t, 100, v, 1e-9)

	shape, err := d.Obj().LoadShape.Find("daily")
	require.NoError(t, err)
	require.NoError(t, ld2.SetDaily(shape))
	got, err := ld2.Daily()
	require.NoError(t, err)
	name, err := got.Name()
	require.NoError(t, err)
	assert.Equal(t, "daily", name)

	_, err = d.Obj().Load.Find("missing")
	assert.ErrorIs(t, err, dsserr.ErrNotFound)
}

func TestContexts(t *testing.T) {
	a := newEngine(t)
	b := newEngine(t)
	assert.NotEqual(t, a.ID(), b.ID())

	require.NoError(t, b.Text.Set_Command("new circuit.other"))
	nameA, err := a.ActiveCircuit.Name()
	require.NoError(t, err)
	nameB, err := b.ActiveCircuit.Name()
	require.NoError(t, err)
	assert.Equal(t, "test", nameA)
	assert.Equal(t, "other", nameB)

	require.NoError(t, b.Dispose())
	require.NoError(t, b.Dispose())
	require.NoError(t, prime.Dispose())
}

func TestConfigure(t *testing.T) {
	d := newEngine(t)

	on := true
	require.NoError(t, d.Configure(dssconfig.Config{
		AllowChangeDir:    &on,
		PropertyNameStyle: "lowercase",
	}))
	allow, err := d.Get_AllowChangeDir()
	require.NoError(t, err)
	assert.True(t, allow)

	old, err := d.Get_CompatFlags()
	require.NoError(t, err)
	t.Cleanup(func() { d.Set_CompatFlags(old) })
	require.NoError(t, d.Configure(dssconfig.Config{CompatFlags: "ActiveLine"}))
	flags, err := d.Get_CompatFlags()
	require.NoError(t, err)
	assert.Equal(t, enums.CompatFlags_ActiveLine, flags&enums.CompatFlags_ActiveLine)

	require.NoError(t, d.Set_PropertyNameStyle(enums.DSSPropertyNameStyle_Modern))
}

func TestISources(t *testing.T) {
	d := newEngine(t)
	require.NoError(t, d.Text.Set_Command("new isource.i1 bus1=b3 amps=10 angle=30"))
	src := &d.ActiveCircuit.ISources

	count, err := src.Count()
	require.NoError(t, err)
	assert.Equal(t, int32(1), count)

	var names []string
	for name, err := range src.Items() {
		require.NoError(t, err)
		names = append(names, name)
	}
	assert.Equal(t, []string{"i1"}, names)

	require.NoError(t, src.Set_Name("i1"))
	amps, err := src.Get_Amps()
	require.NoError(t, err)
	assert.InDelta(t, 10, amps, 1e-9)
	require.NoError(t, src.Set_AngleDeg(-30))
	angle, err := src.Get_AngleDeg()
	require.NoError(t, err)
	assert.InDelta(t, -30, angle, 1e-9)
}

func TestCallsAfterDispose(t *testing.T) {
	d := newEngine(t)
	lines, err := d.Obj().Line.Batch()
	require.NoError(t, err)
	defer lines.Dispose()
	ld1, err := d.Obj().Load.Find("ld1")
	require.NoError(t, err)

	require.NoError(t, d.Dispose())
	require.NoError(t, d.Dispose())

	assert.ErrorIs(t, d.Text.Set_Command("solve"), dsserr.ErrDisposed)
	_, err = d.ActiveCircuit.Name()
	assert.ErrorIs(t, err, dsserr.ErrDisposed)
	_, err = d.ActiveCircuit.Lines.Count()
	assert.ErrorIs(t, err, dsserr.ErrDisposed)
	_, err = d.ActiveCircuit.AllBusVmagPu()
	assert.ErrorIs(t, err, dsserr.ErrDisposed)

	_, err = ld1.KW()
	assert.ErrorIs(t, err, dsserr.ErrDisposed)
	assert.ErrorIs(t, ld1.SetKW(1), dsserr.ErrDisposed)
	_, err = lines.Length()
	assert.ErrorIs(t, err, dsserr.ErrDisposed)
	_, err = d.Obj().Load.Find("ld1")
	assert.ErrorIs(t, err, dsserr.ErrDisposed)
}

func TestObjKeepsActiveClass(t *testing.T) {
	d := newEngine(t)
	_, err := d.SetActiveClass("Line")
	require.NoError(t, err)

	n, err := d.Obj().LoadShape.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	name, err := d.ActiveClass.Get_Name()
	require.NoError(t, err)
	assert.Equal(t, "Line", name)
}

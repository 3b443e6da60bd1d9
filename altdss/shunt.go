package altdss

import "gonum.org/v1/gonum/mat"

const (
	capBus1      int32 = 1
	capBus2      int32 = 2
	capPhases    int32 = 3
	capKvar      int32 = 4
	capKV        int32 = 5
	capConn      int32 = 6
	capCMatrix   int32 = 7
	capCuf       int32 = 8
	capR         int32 = 9
	capXL        int32 = 10
	capHarm      int32 = 11
	capNumSteps  int32 = 12
	capStates    int32 = 13
	capNormAmps  int32 = 14
	capEmergAmps int32 = 15
	capBaseFreq  int32 = 19
	capEnabled   int32 = 20
	capLike      int32 = 21
)

var capacitorClass = newClass("Capacitor",
	Property{"bus1", capBus1, KindString},
	Property{"bus2", capBus2, KindString},
	Property{"phases", capPhases, KindInt32},
	Property{"kvar", capKvar, KindFloat64Array},
	Property{"kv", capKV, KindFloat64},
	Property{"conn", capConn, KindInt32},
	Property{"cmatrix", capCMatrix, KindFloat64Array},
	Property{"cuf", capCuf, KindFloat64Array},
	Property{"R", capR, KindFloat64Array},
	Property{"XL", capXL, KindFloat64Array},
	Property{"Harm", capHarm, KindFloat64Array},
	Property{"Numsteps", capNumSteps, KindInt32},
	Property{"states", capStates, KindInt32Array},
	Property{"normamps", capNormAmps, KindFloat64},
	Property{"emergamps", capEmergAmps, KindFloat64},
	Property{"basefreq", capBaseFreq, KindFloat64},
	Property{"enabled", capEnabled, KindInt32},
	Property{"like", capLike, KindString},
)

// Capacitor is a shunt or series capacitor bank with one or more steps.
type Capacitor struct{ Obj }

func (c Capacitor) Bus1() (string, error)     { return c.String(capBus1) }
func (c Capacitor) SetBus1(v string) error    { return c.SetString(capBus1, v) }
func (c Capacitor) Phases() (int32, error)    { return c.Int32(capPhases) }
func (c Capacitor) SetPhases(v int32) error   { return c.SetInt32(capPhases, v) }
func (c Capacitor) KV() (float64, error)      { return c.Float64(capKV) }
func (c Capacitor) SetKV(v float64) error     { return c.SetFloat64(capKV, v) }
func (c Capacitor) Kvar() ([]float64, error)  { return c.Float64s(capKvar) }
func (c Capacitor) SetKvar(v []float64) error { return c.SetFloat64s(capKvar, v) }
func (c Capacitor) NumSteps() (int32, error)  { return c.Int32(capNumSteps) }
func (c Capacitor) SetNumSteps(v int32) error { return c.SetInt32(capNumSteps, v) }
func (c Capacitor) States() ([]int32, error)  { return c.Int32s(capStates) }
func (c Capacitor) SetStates(v []int32) error { return c.SetInt32s(capStates, v) }

func (c Capacitor) Conn() (Connection, error) {
	v, err := c.Int32(capConn)
	return Connection(v), err
}

func (c Capacitor) SetConn(v Connection) error { return c.SetInt32(capConn, int32(v)) }

// TotalKvar sums the rating of all steps.
func (c Capacitor) TotalKvar() (float64, error) {
	steps, err := c.Kvar()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range steps {
		sum += v
	}
	return sum, nil
}

// CapacitorBatch is a batch of capacitors.
type CapacitorBatch struct{ *Batch }

func (b CapacitorBatch) KV() ([]float64, error)     { return b.Float64(capKV) }
func (b CapacitorBatch) NumSteps() ([]int32, error) { return b.Int32(capNumSteps) }
func (b CapacitorBatch) Bus1() ([]string, error)    { return b.String(capBus1) }
func (b CapacitorBatch) SetEnabled(v bool) error    { return b.SetInt32(capEnabled, boolInt(v)) }

func (b CapacitorBatch) Capacitors() ([]Capacitor, error) {
	objs, err := b.Objs()
	if err != nil {
		return nil, err
	}
	res := make([]Capacitor, len(objs))
	for i, o := range objs {
		res[i] = Capacitor{o}
	}
	return res, nil
}

const (
	reactorBus1     int32 = 1
	reactorBus2     int32 = 2
	reactorPhases   int32 = 3
	reactorKvar     int32 = 4
	reactorKV       int32 = 5
	reactorConn     int32 = 6
	reactorRMatrix  int32 = 7
	reactorXMatrix  int32 = 8
	reactorParallel int32 = 9
	reactorR        int32 = 10
	reactorX        int32 = 11
)

var reactorClass = newClass("Reactor",
	Property{"bus1", reactorBus1, KindString},
	Property{"bus2", reactorBus2, KindString},
	Property{"phases", reactorPhases, KindInt32},
	Property{"kvar", reactorKvar, KindFloat64},
	Property{"kv", reactorKV, KindFloat64},
	Property{"conn", reactorConn, KindInt32},
	Property{"Rmatrix", reactorRMatrix, KindFloat64Array},
	Property{"Xmatrix", reactorXMatrix, KindFloat64Array},
	Property{"Parallel", reactorParallel, KindInt32},
	Property{"R", reactorR, KindFloat64},
	Property{"X", reactorX, KindFloat64},
)

type Reactor struct{ Obj }

func (r Reactor) Bus1() (string, error)   { return r.String(reactorBus1) }
func (r Reactor) SetBus1(v string) error  { return r.SetString(reactorBus1, v) }
func (r Reactor) Bus2() (string, error)   { return r.String(reactorBus2) }
func (r Reactor) SetBus2(v string) error  { return r.SetString(reactorBus2, v) }
func (r Reactor) Phases() (int32, error)  { return r.Int32(reactorPhases) }
func (r Reactor) SetPhases(v int32) error { return r.SetInt32(reactorPhases, v) }
func (r Reactor) Kvar() (float64, error)  { return r.Float64(reactorKvar) }
func (r Reactor) SetKvar(v float64) error { return r.SetFloat64(reactorKvar, v) }
func (r Reactor) KV() (float64, error)    { return r.Float64(reactorKV) }
func (r Reactor) SetKV(v float64) error   { return r.SetFloat64(reactorKV, v) }
func (r Reactor) R() (float64, error)     { return r.Float64(reactorR) }
func (r Reactor) SetR(v float64) error    { return r.SetFloat64(reactorR, v) }
func (r Reactor) X() (float64, error)     { return r.Float64(reactorX) }
func (r Reactor) SetX(v float64) error    { return r.SetFloat64(reactorX, v) }

func (r Reactor) Parallel() (bool, error) {
	v, err := r.Int32(reactorParallel)
	return v != 0, err
}

func (r Reactor) SetParallel(v bool) error { return r.SetInt32(reactorParallel, boolInt(v)) }

func (r Reactor) RMatrix() (*mat.Dense, error) { return denseProp(r.Obj, reactorRMatrix) }
func (r Reactor) XMatrix() (*mat.Dense, error) { return denseProp(r.Obj, reactorXMatrix) }

func (r Reactor) SetRMatrix(m mat.Matrix) error { return r.SetFloat64s(reactorRMatrix, flatten(m)) }
func (r Reactor) SetXMatrix(m mat.Matrix) error { return r.SetFloat64s(reactorXMatrix, flatten(m)) }

type ReactorBatch struct{ *Batch }

func (b ReactorBatch) Kvar() ([]float64, error) { return b.Float64(reactorKvar) }
func (b ReactorBatch) SetKvar(v float64) error  { return b.SetFloat64(reactorKvar, v) }

func (b ReactorBatch) Reactors() ([]Reactor, error) {
	objs, err := b.Objs()
	if err != nil {
		return nil, err
	}
	res := make([]Reactor, len(objs))
	for i, o := range objs {
		res[i] = Reactor{o}
	}
	return res, nil
}

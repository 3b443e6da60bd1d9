package altdss

import "github.com/dss-extensions/dss-go/enums"

const (
	genPhases    int32 = 1
	genBus1      int32 = 2
	genKV        int32 = 3
	genKW        int32 = 4
	genPF        int32 = 5
	genKvar      int32 = 6
	genModel     int32 = 7
	genVminpu    int32 = 8
	genVmaxpu    int32 = 9
	genYearly    int32 = 10
	genDaily     int32 = 11
	genDuty      int32 = 12
	genDispMode  int32 = 13
	genDispValue int32 = 14
	genConn      int32 = 15
	genStatus    int32 = 16
	genClass     int32 = 17
	genVpu       int32 = 18
	genMaxKvar   int32 = 19
	genMinKvar   int32 = 20
	genPVFactor  int32 = 21
	genForceOn   int32 = 22
	genKVA       int32 = 23
)

var generatorClass = newClass("Generator",
	Property{"phases", genPhases, KindInt32},
	Property{"bus1", genBus1, KindString},
	Property{"kv", genKV, KindFloat64},
	Property{"kW", genKW, KindFloat64},
	Property{"pf", genPF, KindFloat64},
	Property{"kvar", genKvar, KindFloat64},
	Property{"model", genModel, KindInt32},
	Property{"Vminpu", genVminpu, KindFloat64},
	Property{"Vmaxpu", genVmaxpu, KindFloat64},
	Property{"yearly", genYearly, KindObject},
	Property{"daily", genDaily, KindObject},
	Property{"duty", genDuty, KindObject},
	Property{"dispmode", genDispMode, KindInt32},
	Property{"dispvalue", genDispValue, KindFloat64},
	Property{"conn", genConn, KindInt32},
	Property{"status", genStatus, KindInt32},
	Property{"class", genClass, KindInt32},
	Property{"Vpu", genVpu, KindFloat64},
	Property{"maxkvar", genMaxKvar, KindFloat64},
	Property{"minkvar", genMinKvar, KindFloat64},
	Property{"pvfactor", genPVFactor, KindFloat64},
	Property{"forceon", genForceOn, KindInt32},
	Property{"kVA", genKVA, KindFloat64},
)

type Generator struct{ Obj }

func (g Generator) Bus1() (string, error)      { return g.String(genBus1) }
func (g Generator) SetBus1(v string) error     { return g.SetString(genBus1, v) }
func (g Generator) Phases() (int32, error)     { return g.Int32(genPhases) }
func (g Generator) SetPhases(v int32) error    { return g.SetInt32(genPhases, v) }
func (g Generator) KV() (float64, error)       { return g.Float64(genKV) }
func (g Generator) SetKV(v float64) error      { return g.SetFloat64(genKV, v) }
func (g Generator) KW() (float64, error)       { return g.Float64(genKW) }
func (g Generator) SetKW(v float64) error      { return g.SetFloat64(genKW, v) }
func (g Generator) Kvar() (float64, error)     { return g.Float64(genKvar) }
func (g Generator) SetKvar(v float64) error    { return g.SetFloat64(genKvar, v) }
func (g Generator) PF() (float64, error)       { return g.Float64(genPF) }
func (g Generator) SetPF(v float64) error      { return g.SetFloat64(genPF, v) }
func (g Generator) KVA() (float64, error)      { return g.Float64(genKVA) }
func (g Generator) SetKVA(v float64) error     { return g.SetFloat64(genKVA, v) }
func (g Generator) Model() (int32, error)      { return g.Int32(genModel) }
func (g Generator) SetModel(v int32) error     { return g.SetInt32(genModel, v) }
func (g Generator) Vpu() (float64, error)      { return g.Float64(genVpu) }
func (g Generator) SetVpu(v float64) error     { return g.SetFloat64(genVpu, v) }
func (g Generator) MaxKvar() (float64, error)  { return g.Float64(genMaxKvar) }
func (g Generator) SetMaxKvar(v float64) error { return g.SetFloat64(genMaxKvar, v) }
func (g Generator) MinKvar() (float64, error)  { return g.Float64(genMinKvar) }
func (g Generator) SetMinKvar(v float64) error { return g.SetFloat64(genMinKvar, v) }

func (g Generator) Status() (enums.GeneratorStatus, error) {
	v, err := g.Int32(genStatus)
	return enums.GeneratorStatus(v), err
}

func (g Generator) SetStatus(v enums.GeneratorStatus) error { return g.SetInt32(genStatus, int32(v)) }

func (g Generator) ForceOn() (bool, error) {
	v, err := g.Int32(genForceOn)
	return v != 0, err
}

func (g Generator) SetForceOn(v bool) error { return g.SetInt32(genForceOn, boolInt(v)) }

func (g Generator) Daily() (LoadShape, error) {
	o, err := g.Object(genDaily)
	return LoadShape{o}, err
}

func (g Generator) SetDaily(v LoadShape) error { return g.SetObject(genDaily, v.Obj) }

type GeneratorBatch struct{ *Batch }

func (b GeneratorBatch) KW() ([]float64, error)      { return b.Float64(genKW) }
func (b GeneratorBatch) SetKW(v float64) error       { return b.SetFloat64(genKW, v) }
func (b GeneratorBatch) SetKWEach(v []float64) error { return b.SetFloat64s(genKW, v) }
func (b GeneratorBatch) ScaleKW(f float64) error     { return b.ApplyFloat64(genKW, BatchOp_Multiply, f) }
func (b GeneratorBatch) Kvar() ([]float64, error)    { return b.Float64(genKvar) }
func (b GeneratorBatch) PF() ([]float64, error)      { return b.Float64(genPF) }
func (b GeneratorBatch) SetPF(v float64) error       { return b.SetFloat64(genPF, v) }

func (b GeneratorBatch) Generators() ([]Generator, error) {
	objs, err := b.Objs()
	if err != nil {
		return nil, err
	}
	res := make([]Generator, len(objs))
	for i, o := range objs {
		res[i] = Generator{o}
	}
	return res, nil
}

const (
	vsrcBus1      int32 = 1
	vsrcBaseKV    int32 = 2
	vsrcPu        int32 = 3
	vsrcAngle     int32 = 4
	vsrcFrequency int32 = 5
	vsrcPhases    int32 = 6
	vsrcMVAsc3    int32 = 7
	vsrcMVAsc1    int32 = 8
	vsrcX1R1      int32 = 9
	vsrcX0R0      int32 = 10
	vsrcIsc3      int32 = 11
	vsrcIsc1      int32 = 12
	vsrcR1        int32 = 13
	vsrcX1        int32 = 14
	vsrcR0        int32 = 15
	vsrcX0        int32 = 16
	vsrcBus2      int32 = 19
)

var vsourceClass = newClass("Vsource",
	Property{"bus1", vsrcBus1, KindString},
	Property{"basekv", vsrcBaseKV, KindFloat64},
	Property{"pu", vsrcPu, KindFloat64},
	Property{"angle", vsrcAngle, KindFloat64},
	Property{"frequency", vsrcFrequency, KindFloat64},
	Property{"phases", vsrcPhases, KindInt32},
	Property{"MVAsc3", vsrcMVAsc3, KindFloat64},
	Property{"MVAsc1", vsrcMVAsc1, KindFloat64},
	Property{"x1r1", vsrcX1R1, KindFloat64},
	Property{"x0r0", vsrcX0R0, KindFloat64},
	Property{"Isc3", vsrcIsc3, KindFloat64},
	Property{"Isc1", vsrcIsc1, KindFloat64},
	Property{"R1", vsrcR1, KindFloat64},
	Property{"X1", vsrcX1, KindFloat64},
	Property{"R0", vsrcR0, KindFloat64},
	Property{"X0", vsrcX0, KindFloat64},
	Property{"bus2", vsrcBus2, KindString},
)

// Vsource is an ideal voltage source behind a short-circuit impedance.
type Vsource struct{ Obj }

func (s Vsource) Bus1() (string, error)        { return s.String(vsrcBus1) }
func (s Vsource) SetBus1(v string) error       { return s.SetString(vsrcBus1, v) }
func (s Vsource) BaseKV() (float64, error)     { return s.Float64(vsrcBaseKV) }
func (s Vsource) SetBaseKV(v float64) error    { return s.SetFloat64(vsrcBaseKV, v) }
func (s Vsource) Pu() (float64, error)         { return s.Float64(vsrcPu) }
func (s Vsource) SetPu(v float64) error        { return s.SetFloat64(vsrcPu, v) }
func (s Vsource) Angle() (float64, error)      { return s.Float64(vsrcAngle) }
func (s Vsource) SetAngle(v float64) error     { return s.SetFloat64(vsrcAngle, v) }
func (s Vsource) Frequency() (float64, error)  { return s.Float64(vsrcFrequency) }
func (s Vsource) SetFrequency(v float64) error { return s.SetFloat64(vsrcFrequency, v) }
func (s Vsource) Phases() (int32, error)       { return s.Int32(vsrcPhases) }
func (s Vsource) SetPhases(v int32) error      { return s.SetInt32(vsrcPhases, v) }
func (s Vsource) MVAsc3() (float64, error)     { return s.Float64(vsrcMVAsc3) }
func (s Vsource) SetMVAsc3(v float64) error    { return s.SetFloat64(vsrcMVAsc3, v) }
func (s Vsource) MVAsc1() (float64, error)     { return s.Float64(vsrcMVAsc1) }
func (s Vsource) SetMVAsc1(v float64) error    { return s.SetFloat64(vsrcMVAsc1, v) }

type VsourceBatch struct{ *Batch }

func (b VsourceBatch) Pu() ([]float64, error) { return b.Float64(vsrcPu) }
func (b VsourceBatch) SetPu(v float64) error  { return b.SetFloat64(vsrcPu, v) }

const (
	pvPhases      int32 = 1
	pvBus1        int32 = 2
	pvKV          int32 = 3
	pvIrradiance  int32 = 4
	pvPmpp        int32 = 5
	pvPctPmpp     int32 = 6
	pvTemperature int32 = 7
	pvPF          int32 = 8
	pvConn        int32 = 9
	pvKvar        int32 = 10
	pvKVA         int32 = 11
	pvYearly      int32 = 23
	pvDaily       int32 = 24
)

var pvSystemClass = newClass("PVSystem",
	Property{"phases", pvPhases, KindInt32},
	Property{"bus1", pvBus1, KindString},
	Property{"kv", pvKV, KindFloat64},
	Property{"irradiance", pvIrradiance, KindFloat64},
	Property{"Pmpp", pvPmpp, KindFloat64},
	Property{"pctPmpp", pvPctPmpp, KindFloat64},
	Property{"Temperature", pvTemperature, KindFloat64},
	Property{"pf", pvPF, KindFloat64},
	Property{"conn", pvConn, KindInt32},
	Property{"kvar", pvKvar, KindFloat64},
	Property{"kVA", pvKVA, KindFloat64},
	Property{"yearly", pvYearly, KindObject},
	Property{"daily", pvDaily, KindObject},
)

type PVSystem struct{ Obj }

func (p PVSystem) Bus1() (string, error)          { return p.String(pvBus1) }
func (p PVSystem) SetBus1(v string) error         { return p.SetString(pvBus1, v) }
func (p PVSystem) Phases() (int32, error)         { return p.Int32(pvPhases) }
func (p PVSystem) SetPhases(v int32) error        { return p.SetInt32(pvPhases, v) }
func (p PVSystem) KV() (float64, error)           { return p.Float64(pvKV) }
func (p PVSystem) SetKV(v float64) error          { return p.SetFloat64(pvKV, v) }
func (p PVSystem) Irradiance() (float64, error)   { return p.Float64(pvIrradiance) }
func (p PVSystem) SetIrradiance(v float64) error  { return p.SetFloat64(pvIrradiance, v) }
func (p PVSystem) Pmpp() (float64, error)         { return p.Float64(pvPmpp) }
func (p PVSystem) SetPmpp(v float64) error        { return p.SetFloat64(pvPmpp, v) }
func (p PVSystem) KVA() (float64, error)          { return p.Float64(pvKVA) }
func (p PVSystem) SetKVA(v float64) error         { return p.SetFloat64(pvKVA, v) }
func (p PVSystem) PF() (float64, error)           { return p.Float64(pvPF) }
func (p PVSystem) SetPF(v float64) error          { return p.SetFloat64(pvPF, v) }
func (p PVSystem) Temperature() (float64, error)  { return p.Float64(pvTemperature) }
func (p PVSystem) SetTemperature(v float64) error { return p.SetFloat64(pvTemperature, v) }

func (p PVSystem) Daily() (LoadShape, error) {
	o, err := p.Object(pvDaily)
	return LoadShape{o}, err
}

func (p PVSystem) SetDaily(v LoadShape) error { return p.SetObject(pvDaily, v.Obj) }

type PVSystemBatch struct{ *Batch }

func (b PVSystemBatch) Irradiance() ([]float64, error) { return b.Float64(pvIrradiance) }
func (b PVSystemBatch) SetIrradiance(v float64) error  { return b.SetFloat64(pvIrradiance, v) }
func (b PVSystemBatch) Pmpp() ([]float64, error)       { return b.Float64(pvPmpp) }
func (b PVSystemBatch) SetPF(v float64) error          { return b.SetFloat64(pvPF, v) }

// StorageState is the dispatch state of a storage element.
type StorageState int32

const (
	StorageCharging    StorageState = -1
	StorageIdling      StorageState = 0
	StorageDischarging StorageState = 1
)

const (
	storPhases     int32 = 1
	storBus1       int32 = 2
	storKV         int32 = 3
	storConn       int32 = 4
	storKW         int32 = 5
	storKvar       int32 = 6
	storPF         int32 = 7
	storKVA        int32 = 8
	storKWRated    int32 = 19
	storKWhRated   int32 = 21
	storKWhStored  int32 = 22
	storPctStored  int32 = 23
	storPctReserve int32 = 24
	storState      int32 = 25
)

var storageClass = newClass("Storage",
	Property{"phases", storPhases, KindInt32},
	Property{"bus1", storBus1, KindString},
	Property{"kv", storKV, KindFloat64},
	Property{"conn", storConn, KindInt32},
	Property{"kW", storKW, KindFloat64},
	Property{"kvar", storKvar, KindFloat64},
	Property{"pf", storPF, KindFloat64},
	Property{"kVA", storKVA, KindFloat64},
	Property{"kWrated", storKWRated, KindFloat64},
	Property{"kWhrated", storKWhRated, KindFloat64},
	Property{"kWhstored", storKWhStored, KindFloat64},
	Property{"pctstored", storPctStored, KindFloat64},
	Property{"pctreserve", storPctReserve, KindFloat64},
	Property{"State", storState, KindInt32},
)

type Storage struct{ Obj }

func (s Storage) Bus1() (string, error)         { return s.String(storBus1) }
func (s Storage) SetBus1(v string) error        { return s.SetString(storBus1, v) }
func (s Storage) Phases() (int32, error)        { return s.Int32(storPhases) }
func (s Storage) SetPhases(v int32) error       { return s.SetInt32(storPhases, v) }
func (s Storage) KV() (float64, error)          { return s.Float64(storKV) }
func (s Storage) SetKV(v float64) error         { return s.SetFloat64(storKV, v) }
func (s Storage) KW() (float64, error)          { return s.Float64(storKW) }
func (s Storage) SetKW(v float64) error         { return s.SetFloat64(storKW, v) }
func (s Storage) KWRated() (float64, error)     { return s.Float64(storKWRated) }
func (s Storage) SetKWRated(v float64) error    { return s.SetFloat64(storKWRated, v) }
func (s Storage) KWhRated() (float64, error)    { return s.Float64(storKWhRated) }
func (s Storage) SetKWhRated(v float64) error   { return s.SetFloat64(storKWhRated, v) }
func (s Storage) KWhStored() (float64, error)   { return s.Float64(storKWhStored) }
func (s Storage) SetKWhStored(v float64) error  { return s.SetFloat64(storKWhStored, v) }
func (s Storage) PctStored() (float64, error)   { return s.Float64(storPctStored) }
func (s Storage) SetPctStored(v float64) error  { return s.SetFloat64(storPctStored, v) }
func (s Storage) PctReserve() (float64, error)  { return s.Float64(storPctReserve) }
func (s Storage) SetPctReserve(v float64) error { return s.SetFloat64(storPctReserve, v) }

func (s Storage) State() (StorageState, error) {
	v, err := s.Int32(storState)
	return StorageState(v), err
}

func (s Storage) SetState(v StorageState) error { return s.SetInt32(storState, int32(v)) }

type StorageBatch struct{ *Batch }

func (b StorageBatch) PctStored() ([]float64, error) { return b.Float64(storPctStored) }
func (b StorageBatch) KW() ([]float64, error)        { return b.Float64(storKW) }
func (b StorageBatch) SetKW(v float64) error         { return b.SetFloat64(storKW, v) }

// SetState dispatches every element of the batch to the same state.
func (b StorageBatch) SetState(v StorageState) error { return b.SetInt32(storState, int32(v)) }

package altdss

import "github.com/dss-extensions/dss-go/enums"

const (
	loadPhases    int32 = 1
	loadBus1      int32 = 2
	loadKV        int32 = 3
	loadKW        int32 = 4
	loadPF        int32 = 5
	loadModel     int32 = 6
	loadYearly    int32 = 7
	loadDaily     int32 = 8
	loadDuty      int32 = 9
	loadGrowth    int32 = 10
	loadConn      int32 = 11
	loadKvar      int32 = 12
	loadRneut     int32 = 13
	loadXneut     int32 = 14
	loadStatus    int32 = 15
	loadClassProp int32 = 16
	loadVminpu    int32 = 17
	loadVmaxpu    int32 = 18
	loadVminnorm  int32 = 19
	loadVminemerg int32 = 20
	loadXfkVA     int32 = 21
	loadAllocFact int32 = 22
	loadKVA       int32 = 23
	loadPctMean   int32 = 24
	loadPctStddev int32 = 25
	loadCVRwatts  int32 = 26
	loadCVRvars   int32 = 27
	loadKWh       int32 = 28
	loadKWhDays   int32 = 29
	loadCfactor   int32 = 30
	loadCVRcurve  int32 = 31
	loadNumCust   int32 = 32
	loadZIPV      int32 = 33
	loadRelWeight int32 = 35
	loadVlowpu    int32 = 36
	loadSpectrum  int32 = 39
	loadBaseFreq  int32 = 40
	loadEnabled   int32 = 41
	loadLike      int32 = 42
)

var loadClass = newClass("Load",
	Property{"phases", loadPhases, KindInt32},
	Property{"bus1", loadBus1, KindString},
	Property{"kV", loadKV, KindFloat64},
	Property{"kW", loadKW, KindFloat64},
	Property{"pf", loadPF, KindFloat64},
	Property{"model", loadModel, KindInt32},
	Property{"yearly", loadYearly, KindObject},
	Property{"daily", loadDaily, KindObject},
	Property{"duty", loadDuty, KindObject},
	Property{"growth", loadGrowth, KindObject},
	Property{"conn", loadConn, KindInt32},
	Property{"kvar", loadKvar, KindFloat64},
	Property{"Rneut", loadRneut, KindFloat64},
	Property{"Xneut", loadXneut, KindFloat64},
	Property{"status", loadStatus, KindInt32},
	Property{"class", loadClassProp, KindInt32},
	Property{"Vminpu", loadVminpu, KindFloat64},
	Property{"Vmaxpu", loadVmaxpu, KindFloat64},
	Property{"Vminnorm", loadVminnorm, KindFloat64},
	Property{"Vminemerg", loadVminemerg, KindFloat64},
	Property{"xfkVA", loadXfkVA, KindFloat64},
	Property{"allocationfactor", loadAllocFact, KindFloat64},
	Property{"kVA", loadKVA, KindFloat64},
	Property{"pctmean", loadPctMean, KindFloat64},
	Property{"pctstddev", loadPctStddev, KindFloat64},
	Property{"CVRwatts", loadCVRwatts, KindFloat64},
	Property{"CVRvars", loadCVRvars, KindFloat64},
	Property{"kWh", loadKWh, KindFloat64},
	Property{"kWhdays", loadKWhDays, KindFloat64},
	Property{"Cfactor", loadCfactor, KindFloat64},
	Property{"CVRcurve", loadCVRcurve, KindObject},
	Property{"NumCust", loadNumCust, KindInt32},
	Property{"ZIPV", loadZIPV, KindFloat64Array},
	Property{"RelWeight", loadRelWeight, KindFloat64},
	Property{"Vlowpu", loadVlowpu, KindFloat64},
	Property{"spectrum", loadSpectrum, KindObject},
	Property{"basefreq", loadBaseFreq, KindFloat64},
	Property{"enabled", loadEnabled, KindInt32},
	Property{"like", loadLike, KindString},
)

// Load is a load connected to one bus.
type Load struct{ Obj }

func (l Load) Bus1() (string, error)      { return l.String(loadBus1) }
func (l Load) SetBus1(v string) error     { return l.SetString(loadBus1, v) }
func (l Load) Phases() (int32, error)     { return l.Int32(loadPhases) }
func (l Load) SetPhases(v int32) error    { return l.SetInt32(loadPhases, v) }
func (l Load) KV() (float64, error)       { return l.Float64(loadKV) }
func (l Load) SetKV(v float64) error      { return l.SetFloat64(loadKV, v) }
func (l Load) KW() (float64, error)       { return l.Float64(loadKW) }
func (l Load) SetKW(v float64) error      { return l.SetFloat64(loadKW, v) }
func (l Load) Kvar() (float64, error)     { return l.Float64(loadKvar) }
func (l Load) SetKvar(v float64) error    { return l.SetFloat64(loadKvar, v) }
func (l Load) PF() (float64, error)       { return l.Float64(loadPF) }
func (l Load) SetPF(v float64) error      { return l.SetFloat64(loadPF, v) }
func (l Load) KVA() (float64, error)      { return l.Float64(loadKVA) }
func (l Load) Vminpu() (float64, error)   { return l.Float64(loadVminpu) }
func (l Load) SetVminpu(v float64) error  { return l.SetFloat64(loadVminpu, v) }
func (l Load) Vmaxpu() (float64, error)   { return l.Float64(loadVmaxpu) }
func (l Load) SetVmaxpu(v float64) error  { return l.SetFloat64(loadVmaxpu, v) }
func (l Load) NumCust() (int32, error)    { return l.Int32(loadNumCust) }
func (l Load) SetNumCust(v int32) error   { return l.SetInt32(loadNumCust, v) }
func (l Load) ZIPV() ([]float64, error)   { return l.Float64s(loadZIPV) }
func (l Load) SetZIPV(v []float64) error  { return l.SetFloat64s(loadZIPV, v) }
func (l Load) LoadClass() (int32, error)  { return l.Int32(loadClassProp) }
func (l Load) SetLoadClass(v int32) error { return l.SetInt32(loadClassProp, v) }

func (l Load) AllocationFactor() (float64, error) { return l.Float64(loadAllocFact) }

func (l Load) Model() (enums.LoadModels, error) {
	v, err := l.Int32(loadModel)
	return enums.LoadModels(v), err
}

func (l Load) SetModel(v enums.LoadModels) error { return l.SetInt32(loadModel, int32(v)) }

func (l Load) Status() (enums.LoadStatus, error) {
	v, err := l.Int32(loadStatus)
	return enums.LoadStatus(v), err
}

func (l Load) SetStatus(v enums.LoadStatus) error { return l.SetInt32(loadStatus, int32(v)) }

func (l Load) Daily() (LoadShape, error) {
	o, err := l.Object(loadDaily)
	return LoadShape{o}, err
}

func (l Load) SetDaily(v LoadShape) error { return l.SetObject(loadDaily, v.Obj) }

func (l Load) Yearly() (LoadShape, error) {
	o, err := l.Object(loadYearly)
	return LoadShape{o}, err
}

func (l Load) SetYearly(v LoadShape) error { return l.SetObject(loadYearly, v.Obj) }

// LoadBatch is a batch of loads. Scaling kW and kvar on a batch is the
// usual way to apply load multipliers to a group of loads.
type LoadBatch struct{ *Batch }

func (b LoadBatch) KW() ([]float64, error)        { return b.Float64(loadKW) }
func (b LoadBatch) SetKW(v float64) error         { return b.SetFloat64(loadKW, v) }
func (b LoadBatch) SetKWEach(v []float64) error   { return b.SetFloat64s(loadKW, v) }
func (b LoadBatch) ScaleKW(f float64) error       { return b.ApplyFloat64(loadKW, BatchOp_Multiply, f) }
func (b LoadBatch) Kvar() ([]float64, error)      { return b.Float64(loadKvar) }
func (b LoadBatch) SetKvar(v float64) error       { return b.SetFloat64(loadKvar, v) }
func (b LoadBatch) SetKvarEach(v []float64) error { return b.SetFloat64s(loadKvar, v) }
func (b LoadBatch) ScaleKvar(f float64) error     { return b.ApplyFloat64(loadKvar, BatchOp_Multiply, f) }
func (b LoadBatch) PF() ([]float64, error)        { return b.Float64(loadPF) }
func (b LoadBatch) KV() ([]float64, error)        { return b.Float64(loadKV) }
func (b LoadBatch) Bus1() ([]string, error)       { return b.String(loadBus1) }
func (b LoadBatch) NumCust() ([]int32, error)     { return b.Int32(loadNumCust) }

func (b LoadBatch) SetModel(v enums.LoadModels) error { return b.SetInt32(loadModel, int32(v)) }

func (b LoadBatch) SetDaily(v LoadShape) error { return b.SetObject(loadDaily, v.Obj) }

func (b LoadBatch) Loads() ([]Load, error) {
	objs, err := b.Objs()
	if err != nil {
		return nil, err
	}
	res := make([]Load, len(objs))
	for i, o := range objs {
		res[i] = Load{o}
	}
	return res, nil
}

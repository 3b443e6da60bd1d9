package altdss

import "github.com/dss-extensions/dss-go/enums"

const (
	xfPhases      int32 = 1
	xfWindings    int32 = 2
	xfWdg         int32 = 3
	xfBus         int32 = 4
	xfConn        int32 = 5
	xfKV          int32 = 6
	xfKVA         int32 = 7
	xfTap         int32 = 8
	xfPctR        int32 = 9
	xfRneut       int32 = 10
	xfXneut       int32 = 11
	xfBuses       int32 = 12
	xfConns       int32 = 13
	xfKVs         int32 = 14
	xfKVAs        int32 = 15
	xfTaps        int32 = 16
	xfXHL         int32 = 17
	xfXHT         int32 = 18
	xfXLT         int32 = 19
	xfXscArray    int32 = 20
	xfPctLoadLoss int32 = 26
	xfPctNoLoad   int32 = 27
	xfNormHkVA    int32 = 28
	xfEmergHkVA   int32 = 29
	xfSub         int32 = 30
	xfMaxTap      int32 = 31
	xfMinTap      int32 = 32
	xfNumTaps     int32 = 33
	xfSubName     int32 = 34
	xfPctImag     int32 = 35
	xfPctRs       int32 = 37
	xfBank        int32 = 38
	xfXfmrCode    int32 = 39
	xfCore        int32 = 46
	xfRdcOhms     int32 = 47
	xfNormAmps    int32 = 50
	xfEmergAmps   int32 = 51
	xfBaseFreq    int32 = 55
	xfEnabled     int32 = 56
	xfLike        int32 = 57
)

var transformerClass = newClass("Transformer",
	Property{"phases", xfPhases, KindInt32},
	Property{"windings", xfWindings, KindInt32},
	Property{"wdg", xfWdg, KindInt32},
	Property{"bus", xfBus, KindString},
	Property{"conn", xfConn, KindInt32},
	Property{"kV", xfKV, KindFloat64},
	Property{"kVA", xfKVA, KindFloat64},
	Property{"tap", xfTap, KindFloat64},
	Property{"pctR", xfPctR, KindFloat64},
	Property{"Rneut", xfRneut, KindFloat64},
	Property{"Xneut", xfXneut, KindFloat64},
	Property{"buses", xfBuses, KindStringArray},
	Property{"conns", xfConns, KindInt32Array},
	Property{"kVs", xfKVs, KindFloat64Array},
	Property{"kVAs", xfKVAs, KindFloat64Array},
	Property{"taps", xfTaps, KindFloat64Array},
	Property{"XHL", xfXHL, KindFloat64},
	Property{"XHT", xfXHT, KindFloat64},
	Property{"XLT", xfXLT, KindFloat64},
	Property{"Xscarray", xfXscArray, KindFloat64Array},
	Property{"pctloadloss", xfPctLoadLoss, KindFloat64},
	Property{"pctnoloadloss", xfPctNoLoad, KindFloat64},
	Property{"normhkVA", xfNormHkVA, KindFloat64},
	Property{"emerghkVA", xfEmergHkVA, KindFloat64},
	Property{"sub", xfSub, KindInt32},
	Property{"MaxTap", xfMaxTap, KindFloat64Array},
	Property{"MinTap", xfMinTap, KindFloat64Array},
	Property{"NumTaps", xfNumTaps, KindInt32Array},
	Property{"subname", xfSubName, KindString},
	Property{"pctimag", xfPctImag, KindFloat64},
	Property{"pctRs", xfPctRs, KindFloat64Array},
	Property{"bank", xfBank, KindString},
	Property{"XfmrCode", xfXfmrCode, KindObject},
	Property{"Core", xfCore, KindInt32},
	Property{"RdcOhms", xfRdcOhms, KindFloat64Array},
	Property{"normamps", xfNormAmps, KindFloat64},
	Property{"emergamps", xfEmergAmps, KindFloat64},
	Property{"basefreq", xfBaseFreq, KindFloat64},
	Property{"enabled", xfEnabled, KindInt32},
	Property{"like", xfLike, KindString},
)

// Connection is the winding or element connection, as stored by the engine.
type Connection int32

const (
	Wye   Connection = 0
	Delta Connection = 1
)

// Transformer is a multi-winding transformer. Per-winding values are read
// and written as arrays with one entry per winding.
type Transformer struct{ Obj }

func (t Transformer) Phases() (int32, error)          { return t.Int32(xfPhases) }
func (t Transformer) SetPhases(v int32) error         { return t.SetInt32(xfPhases, v) }
func (t Transformer) Windings() (int32, error)        { return t.Int32(xfWindings) }
func (t Transformer) SetWindings(v int32) error       { return t.SetInt32(xfWindings, v) }
func (t Transformer) Buses() ([]string, error)        { return t.Strings(xfBuses) }
func (t Transformer) SetBuses(v []string) error       { return t.SetStrings(xfBuses, v) }
func (t Transformer) KVs() ([]float64, error)         { return t.Float64s(xfKVs) }
func (t Transformer) SetKVs(v []float64) error        { return t.SetFloat64s(xfKVs, v) }
func (t Transformer) KVAs() ([]float64, error)        { return t.Float64s(xfKVAs) }
func (t Transformer) SetKVAs(v []float64) error       { return t.SetFloat64s(xfKVAs, v) }
func (t Transformer) Taps() ([]float64, error)        { return t.Float64s(xfTaps) }
func (t Transformer) SetTaps(v []float64) error       { return t.SetFloat64s(xfTaps, v) }
func (t Transformer) PctRs() ([]float64, error)       { return t.Float64s(xfPctRs) }
func (t Transformer) SetPctRs(v []float64) error      { return t.SetFloat64s(xfPctRs, v) }
func (t Transformer) XHL() (float64, error)           { return t.Float64(xfXHL) }
func (t Transformer) SetXHL(v float64) error          { return t.SetFloat64(xfXHL, v) }
func (t Transformer) XHT() (float64, error)           { return t.Float64(xfXHT) }
func (t Transformer) SetXHT(v float64) error          { return t.SetFloat64(xfXHT, v) }
func (t Transformer) XLT() (float64, error)           { return t.Float64(xfXLT) }
func (t Transformer) SetXLT(v float64) error          { return t.SetFloat64(xfXLT, v) }
func (t Transformer) XscArray() ([]float64, error)    { return t.Float64s(xfXscArray) }
func (t Transformer) PctNoLoadLoss() (float64, error) { return t.Float64(xfPctNoLoad) }
func (t Transformer) PctImag() (float64, error)       { return t.Float64(xfPctImag) }
func (t Transformer) Bank() (string, error)           { return t.String(xfBank) }
func (t Transformer) SetBank(v string) error          { return t.SetString(xfBank, v) }

// Conns returns the winding connections.
func (t Transformer) Conns() ([]Connection, error) {
	v, err := t.Int32s(xfConns)
	if err != nil {
		return nil, err
	}
	res := make([]Connection, len(v))
	for i, c := range v {
		res[i] = Connection(c)
	}
	return res, nil
}

func (t Transformer) SetConns(v []Connection) error {
	raw := make([]int32, len(v))
	for i, c := range v {
		raw[i] = int32(c)
	}
	return t.SetInt32s(xfConns, raw)
}

func (t Transformer) Core() (enums.CoreType, error) {
	v, err := t.Int32(xfCore)
	return enums.CoreType(v), err
}

func (t Transformer) SetCore(v enums.CoreType) error { return t.SetInt32(xfCore, int32(v)) }

// TransformerBatch is a batch of transformers.
type TransformerBatch struct{ *Batch }

func (b TransformerBatch) PctNoLoadLoss() ([]float64, error) { return b.Float64(xfPctNoLoad) }
func (b TransformerBatch) SetPctNoLoadLoss(v float64) error  { return b.SetFloat64(xfPctNoLoad, v) }
func (b TransformerBatch) XHL() ([]float64, error)           { return b.Float64(xfXHL) }
func (b TransformerBatch) SetXHL(v float64) error            { return b.SetFloat64(xfXHL, v) }
func (b TransformerBatch) Windings() ([]int32, error)        { return b.Int32(xfWindings) }
func (b TransformerBatch) Phases() ([]int32, error)          { return b.Int32(xfPhases) }

func (b TransformerBatch) Transformers() ([]Transformer, error) {
	objs, err := b.Objs()
	if err != nil {
		return nil, err
	}
	res := make([]Transformer, len(objs))
	for i, o := range objs {
		res[i] = Transformer{o}
	}
	return res, nil
}

package altdss

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dss-extensions/dss-go/enums"
	"github.com/dss-extensions/dss-go/internal/codec"
)

const (
	lineBus1      int32 = 1
	lineBus2      int32 = 2
	lineLineCode  int32 = 3
	lineLength    int32 = 4
	linePhases    int32 = 5
	lineR1        int32 = 6
	lineX1        int32 = 7
	lineR0        int32 = 8
	lineX0        int32 = 9
	lineC1        int32 = 10
	lineC0        int32 = 11
	lineRMatrix   int32 = 12
	lineXMatrix   int32 = 13
	lineCMatrix   int32 = 14
	lineSwitch    int32 = 15
	lineRg        int32 = 16
	lineXg        int32 = 17
	lineRho       int32 = 18
	lineGeometry  int32 = 19
	lineUnits     int32 = 20
	lineSpacing   int32 = 21
	lineB1        int32 = 26
	lineB0        int32 = 27
	lineNormAmps  int32 = 31
	lineEmergAmps int32 = 32
	lineFaultRate int32 = 33
	linePctPerm   int32 = 34
	lineRepair    int32 = 35
	lineBaseFreq  int32 = 36
	lineEnabled   int32 = 37
	lineLike      int32 = 38
)

var lineClass = newClass("Line",
	Property{"bus1", lineBus1, KindString},
	Property{"bus2", lineBus2, KindString},
	Property{"linecode", lineLineCode, KindObject},
	Property{"length", lineLength, KindFloat64},
	Property{"phases", linePhases, KindInt32},
	Property{"r1", lineR1, KindFloat64},
	Property{"x1", lineX1, KindFloat64},
	Property{"r0", lineR0, KindFloat64},
	Property{"x0", lineX0, KindFloat64},
	Property{"C1", lineC1, KindFloat64},
	Property{"C0", lineC0, KindFloat64},
	Property{"rmatrix", lineRMatrix, KindFloat64Array},
	Property{"xmatrix", lineXMatrix, KindFloat64Array},
	Property{"cmatrix", lineCMatrix, KindFloat64Array},
	Property{"Switch", lineSwitch, KindInt32},
	Property{"Rg", lineRg, KindFloat64},
	Property{"Xg", lineXg, KindFloat64},
	Property{"rho", lineRho, KindFloat64},
	Property{"geometry", lineGeometry, KindObject},
	Property{"units", lineUnits, KindInt32},
	Property{"spacing", lineSpacing, KindObject},
	Property{"B1", lineB1, KindFloat64},
	Property{"B0", lineB0, KindFloat64},
	Property{"normamps", lineNormAmps, KindFloat64},
	Property{"emergamps", lineEmergAmps, KindFloat64},
	Property{"faultrate", lineFaultRate, KindFloat64},
	Property{"pctperm", linePctPerm, KindFloat64},
	Property{"repair", lineRepair, KindFloat64},
	Property{"basefreq", lineBaseFreq, KindFloat64},
	Property{"enabled", lineEnabled, KindInt32},
	Property{"like", lineLike, KindString},
)

// Line is a multi-phase line or cable segment.
type Line struct{ Obj }

func (l Line) Bus1() (string, error)        { return l.String(lineBus1) }
func (l Line) SetBus1(v string) error       { return l.SetString(lineBus1, v) }
func (l Line) Bus2() (string, error)        { return l.String(lineBus2) }
func (l Line) SetBus2(v string) error       { return l.SetString(lineBus2, v) }
func (l Line) Length() (float64, error)     { return l.Float64(lineLength) }
func (l Line) SetLength(v float64) error    { return l.SetFloat64(lineLength, v) }
func (l Line) Phases() (int32, error)       { return l.Int32(linePhases) }
func (l Line) SetPhases(v int32) error      { return l.SetInt32(linePhases, v) }
func (l Line) R1() (float64, error)         { return l.Float64(lineR1) }
func (l Line) SetR1(v float64) error        { return l.SetFloat64(lineR1, v) }
func (l Line) X1() (float64, error)         { return l.Float64(lineX1) }
func (l Line) SetX1(v float64) error        { return l.SetFloat64(lineX1, v) }
func (l Line) R0() (float64, error)         { return l.Float64(lineR0) }
func (l Line) SetR0(v float64) error        { return l.SetFloat64(lineR0, v) }
func (l Line) X0() (float64, error)         { return l.Float64(lineX0) }
func (l Line) SetX0(v float64) error        { return l.SetFloat64(lineX0, v) }
func (l Line) NormAmps() (float64, error)   { return l.Float64(lineNormAmps) }
func (l Line) SetNormAmps(v float64) error  { return l.SetFloat64(lineNormAmps, v) }
func (l Line) EmergAmps() (float64, error)  { return l.Float64(lineEmergAmps) }
func (l Line) SetEmergAmps(v float64) error { return l.SetFloat64(lineEmergAmps, v) }

func (l Line) Units() (enums.LineUnits, error) {
	v, err := l.Int32(lineUnits)
	return enums.LineUnits(v), err
}

func (l Line) SetUnits(v enums.LineUnits) error { return l.SetInt32(lineUnits, int32(v)) }

// Switch reports whether the line is modeled as a switch.
func (l Line) Switch() (bool, error) {
	v, err := l.Int32(lineSwitch)
	return v != 0, err
}

func (l Line) SetSwitch(v bool) error { return l.SetInt32(lineSwitch, boolInt(v)) }

func (l Line) Enabled() (bool, error) {
	v, err := l.Int32(lineEnabled)
	return v != 0, err
}

func (l Line) SetEnabled(v bool) error { return l.SetInt32(lineEnabled, boolInt(v)) }

// LineCode returns the line code, or a LineCode with a nil Obj when the
// impedances are given directly.
func (l Line) LineCode() (LineCode, error) {
	o, err := l.Object(lineLineCode)
	return LineCode{o}, err
}

func (l Line) SetLineCode(v LineCode) error { return l.SetObject(lineLineCode, v.Obj) }

// RMatrix is the series resistance matrix, ohms per unit length.
func (l Line) RMatrix() (*mat.Dense, error) { return denseProp(l.Obj, lineRMatrix) }

// XMatrix is the series reactance matrix, ohms per unit length.
func (l Line) XMatrix() (*mat.Dense, error) { return denseProp(l.Obj, lineXMatrix) }

// CMatrix is the shunt capacitance matrix, nF per unit length.
func (l Line) CMatrix() (*mat.Dense, error) { return denseProp(l.Obj, lineCMatrix) }

func (l Line) SetRMatrix(m mat.Matrix) error { return l.SetFloat64s(lineRMatrix, flatten(m)) }
func (l Line) SetXMatrix(m mat.Matrix) error { return l.SetFloat64s(lineXMatrix, flatten(m)) }
func (l Line) SetCMatrix(m mat.Matrix) error { return l.SetFloat64s(lineCMatrix, flatten(m)) }

// LineBatch is a batch of lines.
type LineBatch struct{ *Batch }

func (b LineBatch) Length() ([]float64, error)        { return b.Float64(lineLength) }
func (b LineBatch) SetLength(v float64) error         { return b.SetFloat64(lineLength, v) }
func (b LineBatch) SetLengths(v []float64) error      { return b.SetFloat64s(lineLength, v) }
func (b LineBatch) ScaleLength(f float64) error       { return b.ApplyFloat64(lineLength, BatchOp_Multiply, f) }
func (b LineBatch) Phases() ([]int32, error)          { return b.Int32(linePhases) }
func (b LineBatch) Bus1() ([]string, error)           { return b.String(lineBus1) }
func (b LineBatch) Bus2() ([]string, error)           { return b.String(lineBus2) }
func (b LineBatch) NormAmps() ([]float64, error)      { return b.Float64(lineNormAmps) }
func (b LineBatch) SetNormAmps(v float64) error       { return b.SetFloat64(lineNormAmps, v) }
func (b LineBatch) SetNormAmpsEach(v []float64) error { return b.SetFloat64s(lineNormAmps, v) }

func (b LineBatch) SetEnabled(v bool) error { return b.SetInt32(lineEnabled, boolInt(v)) }

func (b LineBatch) SetLineCode(v LineCode) error { return b.SetObject(lineLineCode, v.Obj) }

func (b LineBatch) Lines() ([]Line, error) {
	objs, err := b.Objs()
	if err != nil {
		return nil, err
	}
	res := make([]Line, len(objs))
	for i, o := range objs {
		res[i] = Line{o}
	}
	return res, nil
}

const (
	lineCodeNPhases   int32 = 1
	lineCodeR1        int32 = 2
	lineCodeX1        int32 = 3
	lineCodeR0        int32 = 4
	lineCodeX0        int32 = 5
	lineCodeC1        int32 = 6
	lineCodeC0        int32 = 7
	lineCodeUnits     int32 = 8
	lineCodeRMatrix   int32 = 9
	lineCodeXMatrix   int32 = 10
	lineCodeCMatrix   int32 = 11
	lineCodeBaseFreq  int32 = 12
	lineCodeNormAmps  int32 = 13
	lineCodeEmergAmps int32 = 14
	lineCodeKron      int32 = 18
	lineCodeNeutral   int32 = 22
	lineCodeLike      int32 = 28
)

var lineCodeClass = newClass("LineCode",
	Property{"nphases", lineCodeNPhases, KindInt32},
	Property{"r1", lineCodeR1, KindFloat64},
	Property{"x1", lineCodeX1, KindFloat64},
	Property{"r0", lineCodeR0, KindFloat64},
	Property{"x0", lineCodeX0, KindFloat64},
	Property{"C1", lineCodeC1, KindFloat64},
	Property{"C0", lineCodeC0, KindFloat64},
	Property{"units", lineCodeUnits, KindInt32},
	Property{"rmatrix", lineCodeRMatrix, KindFloat64Array},
	Property{"xmatrix", lineCodeXMatrix, KindFloat64Array},
	Property{"cmatrix", lineCodeCMatrix, KindFloat64Array},
	Property{"baseFreq", lineCodeBaseFreq, KindFloat64},
	Property{"normamps", lineCodeNormAmps, KindFloat64},
	Property{"emergamps", lineCodeEmergAmps, KindFloat64},
	Property{"Kron", lineCodeKron, KindInt32},
	Property{"neutral", lineCodeNeutral, KindInt32},
	Property{"like", lineCodeLike, KindString},
)

type LineCode struct{ Obj }

func (c LineCode) NPhases() (int32, error)     { return c.Int32(lineCodeNPhases) }
func (c LineCode) SetNPhases(v int32) error    { return c.SetInt32(lineCodeNPhases, v) }
func (c LineCode) R1() (float64, error)        { return c.Float64(lineCodeR1) }
func (c LineCode) SetR1(v float64) error       { return c.SetFloat64(lineCodeR1, v) }
func (c LineCode) X1() (float64, error)        { return c.Float64(lineCodeX1) }
func (c LineCode) SetX1(v float64) error       { return c.SetFloat64(lineCodeX1, v) }
func (c LineCode) NormAmps() (float64, error)  { return c.Float64(lineCodeNormAmps) }
func (c LineCode) SetNormAmps(v float64) error { return c.SetFloat64(lineCodeNormAmps, v) }

func (c LineCode) Units() (enums.LineUnits, error) {
	v, err := c.Int32(lineCodeUnits)
	return enums.LineUnits(v), err
}

func (c LineCode) SetUnits(v enums.LineUnits) error { return c.SetInt32(lineCodeUnits, int32(v)) }

func (c LineCode) RMatrix() (*mat.Dense, error) { return denseProp(c.Obj, lineCodeRMatrix) }
func (c LineCode) XMatrix() (*mat.Dense, error) { return denseProp(c.Obj, lineCodeXMatrix) }
func (c LineCode) CMatrix() (*mat.Dense, error) { return denseProp(c.Obj, lineCodeCMatrix) }

type LineCodeBatch struct{ *Batch }

func (b LineCodeBatch) NormAmps() ([]float64, error) { return b.Float64(lineCodeNormAmps) }
func (b LineCodeBatch) SetNormAmps(v float64) error  { return b.SetFloat64(lineCodeNormAmps, v) }

func denseProp(o Obj, prop int32) (*mat.Dense, error) {
	v, err := o.Float64s(prop)
	if err != nil {
		return nil, err
	}
	return codec.Dense(v)
}

// flatten writes m column by column.
func flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	res := make([]float64, 0, r*c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			res = append(res, m.At(i, j))
		}
	}
	return res
}

func boolInt(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

package altdss

const (
	lsNPts      int32 = 1
	lsInterval  int32 = 2
	lsMult      int32 = 3
	lsHour      int32 = 4
	lsMean      int32 = 5
	lsStdDev    int32 = 6
	lsAction    int32 = 10
	lsQMult     int32 = 11
	lsUseActual int32 = 12
	lsPMax      int32 = 13
	lsQMax      int32 = 14
	lsSInterval int32 = 15
	lsMInterval int32 = 16
	lsPBase     int32 = 17
)

var loadShapeClass = newClass("LoadShape",
	Property{"npts", lsNPts, KindInt32},
	Property{"interval", lsInterval, KindFloat64},
	Property{"mult", lsMult, KindFloat64Array},
	Property{"hour", lsHour, KindFloat64Array},
	Property{"mean", lsMean, KindFloat64},
	Property{"stddev", lsStdDev, KindFloat64},
	Property{"action", lsAction, KindString},
	Property{"qmult", lsQMult, KindFloat64Array},
	Property{"UseActual", lsUseActual, KindInt32},
	Property{"Pmax", lsPMax, KindFloat64},
	Property{"Qmax", lsQMax, KindFloat64},
	Property{"sinterval", lsSInterval, KindFloat64},
	Property{"minterval", lsMInterval, KindFloat64},
	Property{"Pbase", lsPBase, KindFloat64},
)

// LoadShape is a time series of multipliers. An interval of zero means the
// points are irregular and Hour holds their times.
type LoadShape struct{ Obj }

func (s LoadShape) NPts() (int32, error)         { return s.Int32(lsNPts) }
func (s LoadShape) SetNPts(v int32) error        { return s.SetInt32(lsNPts, v) }
func (s LoadShape) Interval() (float64, error)   { return s.Float64(lsInterval) }
func (s LoadShape) SetInterval(v float64) error  { return s.SetFloat64(lsInterval, v) }
func (s LoadShape) SInterval() (float64, error)  { return s.Float64(lsSInterval) }
func (s LoadShape) SetSInterval(v float64) error { return s.SetFloat64(lsSInterval, v) }
func (s LoadShape) MInterval() (float64, error)  { return s.Float64(lsMInterval) }
func (s LoadShape) SetMInterval(v float64) error { return s.SetFloat64(lsMInterval, v) }
func (s LoadShape) PMult() ([]float64, error)    { return s.Float64s(lsMult) }
func (s LoadShape) QMult() ([]float64, error)    { return s.Float64s(lsQMult) }
func (s LoadShape) SetQMult(v []float64) error   { return s.SetFloat64s(lsQMult, v) }
func (s LoadShape) Hour() ([]float64, error)     { return s.Float64s(lsHour) }
func (s LoadShape) SetHour(v []float64) error    { return s.SetFloat64s(lsHour, v) }
func (s LoadShape) Mean() (float64, error)       { return s.Float64(lsMean) }
func (s LoadShape) StdDev() (float64, error)     { return s.Float64(lsStdDev) }
func (s LoadShape) PMax() (float64, error)       { return s.Float64(lsPMax) }
func (s LoadShape) SetPMax(v float64) error      { return s.SetFloat64(lsPMax, v) }
func (s LoadShape) QMax() (float64, error)       { return s.Float64(lsQMax) }
func (s LoadShape) SetQMax(v float64) error      { return s.SetFloat64(lsQMax, v) }
func (s LoadShape) PBase() (float64, error)      { return s.Float64(lsPBase) }
func (s LoadShape) SetPBase(v float64) error     { return s.SetFloat64(lsPBase, v) }

// SetPMult replaces the multipliers. npts follows the new length.
func (s LoadShape) SetPMult(v []float64) error {
	return s.Edit(func() error {
		if err := s.SetInt32(lsNPts, int32(len(v))); err != nil {
			return err
		}
		return s.SetFloat64s(lsMult, v)
	})
}

func (s LoadShape) UseActual() (bool, error) {
	v, err := s.Int32(lsUseActual)
	return v != 0, err
}

func (s LoadShape) SetUseActual(v bool) error { return s.SetInt32(lsUseActual, boolInt(v)) }

// Normalize scales the multipliers so that the peak is 1.0.
func (s LoadShape) Normalize() error { return s.Set("action", "normalize") }

type LoadShapeBatch struct{ *Batch }

func (b LoadShapeBatch) NPts() ([]int32, error)       { return b.Int32(lsNPts) }
func (b LoadShapeBatch) Interval() ([]float64, error) { return b.Float64(lsInterval) }
func (b LoadShapeBatch) SetInterval(v float64) error  { return b.SetFloat64(lsInterval, v) }

package altdss

import "github.com/dss-extensions/dss-go/enums"

const (
	monElement  int32 = 1
	monTerminal int32 = 2
	monMode     int32 = 3
	monAction   int32 = 4
	monResidual int32 = 5
	monVIPolar  int32 = 6
	monPPolar   int32 = 7
)

var monitorClass = newClass("Monitor",
	Property{"element", monElement, KindObject},
	Property{"terminal", monTerminal, KindInt32},
	Property{"mode", monMode, KindInt32},
	Property{"action", monAction, KindString},
	Property{"residual", monResidual, KindInt32},
	Property{"VIPolar", monVIPolar, KindInt32},
	Property{"PPolar", monPPolar, KindInt32},
)

// Monitor samples voltages, currents or powers at a terminal of a circuit
// element during the solution.
type Monitor struct{ Obj }

func (m Monitor) Element() (Obj, error)     { return m.Object(monElement) }
func (m Monitor) SetElement(v Obj) error    { return m.SetObject(monElement, v) }
func (m Monitor) Terminal() (int32, error)  { return m.Int32(monTerminal) }
func (m Monitor) SetTerminal(v int32) error { return m.SetInt32(monTerminal, v) }

func (m Monitor) Mode() (enums.MonitorModes, error) {
	v, err := m.Int32(monMode)
	return enums.MonitorModes(v), err
}

func (m Monitor) SetMode(v enums.MonitorModes) error { return m.SetInt32(monMode, int32(v)) }

// Reset clears the recorded samples.
func (m Monitor) Reset() error { return m.Set("action", "clear") }

// Save writes the buffer to the monitor's file.
func (m Monitor) Save() error { return m.Set("action", "save") }

type MonitorBatch struct{ *Batch }

func (b MonitorBatch) Terminal() ([]int32, error) { return b.Int32(monTerminal) }

func (b MonitorBatch) SetMode(v enums.MonitorModes) error { return b.SetInt32(monMode, int32(v)) }

// Reset clears every monitor in the batch.
func (b MonitorBatch) Reset() error { return b.SetString(monAction, "clear") }

const (
	emElement     int32 = 1
	emTerminal    int32 = 2
	emAction      int32 = 3
	emOption      int32 = 4
	emKVANormal   int32 = 5
	emKVAEmerg    int32 = 6
	emPeakCurrent int32 = 7
	emZoneList    int32 = 8
)

var energyMeterClass = newClass("EnergyMeter",
	Property{"element", emElement, KindObject},
	Property{"terminal", emTerminal, KindInt32},
	Property{"action", emAction, KindString},
	Property{"option", emOption, KindStringArray},
	Property{"kVAnormal", emKVANormal, KindFloat64},
	Property{"kVAemerg", emKVAEmerg, KindFloat64},
	Property{"peakcurrent", emPeakCurrent, KindFloat64Array},
	Property{"Zonelist", emZoneList, KindStringArray},
)

// EnergyMeter accumulates energy and losses over the zone downstream of
// its terminal.
type EnergyMeter struct{ Obj }

func (m EnergyMeter) Element() (Obj, error)            { return m.Object(emElement) }
func (m EnergyMeter) SetElement(v Obj) error           { return m.SetObject(emElement, v) }
func (m EnergyMeter) Terminal() (int32, error)         { return m.Int32(emTerminal) }
func (m EnergyMeter) SetTerminal(v int32) error        { return m.SetInt32(emTerminal, v) }
func (m EnergyMeter) KVANormal() (float64, error)      { return m.Float64(emKVANormal) }
func (m EnergyMeter) SetKVANormal(v float64) error     { return m.SetFloat64(emKVANormal, v) }
func (m EnergyMeter) KVAEmerg() (float64, error)       { return m.Float64(emKVAEmerg) }
func (m EnergyMeter) SetKVAEmerg(v float64) error      { return m.SetFloat64(emKVAEmerg, v) }
func (m EnergyMeter) PeakCurrent() ([]float64, error)  { return m.Float64s(emPeakCurrent) }
func (m EnergyMeter) SetPeakCurrent(v []float64) error { return m.SetFloat64s(emPeakCurrent, v) }
func (m EnergyMeter) ZoneList() ([]string, error)      { return m.Strings(emZoneList) }
func (m EnergyMeter) SetZoneList(v []string) error     { return m.SetStrings(emZoneList, v) }

// Reset zeroes the registers.
func (m EnergyMeter) Reset() error { return m.Set("action", "reset") }

type EnergyMeterBatch struct{ *Batch }

func (b EnergyMeterBatch) KVANormal() ([]float64, error) { return b.Float64(emKVANormal) }
func (b EnergyMeterBatch) Reset() error                  { return b.SetString(emAction, "reset") }

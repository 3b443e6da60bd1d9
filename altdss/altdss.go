package altdss

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dss-extensions/dss-go/dsserr"
	"github.com/dss-extensions/dss-go/logging"
)

// AltDSS groups the class collections of one engine context.
type AltDSS struct {
	e   Engine
	log logging.Logger

	mu      sync.Mutex
	classes map[string]*Class
	indices map[*Class]int32

	Line        *Collection[Line, LineBatch]
	LineCode    *Collection[LineCode, LineCodeBatch]
	Load        *Collection[Load, LoadBatch]
	Transformer *Collection[Transformer, TransformerBatch]
	Capacitor   *Collection[Capacitor, CapacitorBatch]
	Reactor     *Collection[Reactor, ReactorBatch]
	Generator   *Collection[Generator, GeneratorBatch]
	Vsource     *Collection[Vsource, VsourceBatch]
	PVSystem    *Collection[PVSystem, PVSystemBatch]
	Storage     *Collection[Storage, StorageBatch]
	LoadShape   *Collection[LoadShape, LoadShapeBatch]
	Monitor     *Collection[Monitor, MonitorBatch]
	EnergyMeter *Collection[EnergyMeter, EnergyMeterBatch]
}

// New binds the Obj/Batch API to an engine. A nil logger discards output.
func New(e Engine, log logging.Logger) *AltDSS {
	if log == nil {
		log = logging.Discard()
	}
	a := &AltDSS{
		e:       e,
		log:     log,
		classes: make(map[string]*Class),
		indices: make(map[*Class]int32),
	}
	a.Line = newCollection(a, lineClass, func(o Obj) Line { return Line{o} }, func(b *Batch) LineBatch { return LineBatch{b} })
	a.LineCode = newCollection(a, lineCodeClass, func(o Obj) LineCode { return LineCode{o} }, func(b *Batch) LineCodeBatch { return LineCodeBatch{b} })
	a.Load = newCollection(a, loadClass, func(o Obj) Load { return Load{o} }, func(b *Batch) LoadBatch { return LoadBatch{b} })
	a.Transformer = newCollection(a, transformerClass, func(o Obj) Transformer { return Transformer{o} }, func(b *Batch) TransformerBatch { return TransformerBatch{b} })
	a.Capacitor = newCollection(a, capacitorClass, func(o Obj) Capacitor { return Capacitor{o} }, func(b *Batch) CapacitorBatch { return CapacitorBatch{b} })
	a.Reactor = newCollection(a, reactorClass, func(o Obj) Reactor { return Reactor{o} }, func(b *Batch) ReactorBatch { return ReactorBatch{b} })
	a.Generator = newCollection(a, generatorClass, func(o Obj) Generator { return Generator{o} }, func(b *Batch) GeneratorBatch { return GeneratorBatch{b} })
	a.Vsource = newCollection(a, vsourceClass, func(o Obj) Vsource { return Vsource{o} }, func(b *Batch) VsourceBatch { return VsourceBatch{b} })
	a.PVSystem = newCollection(a, pvSystemClass, func(o Obj) PVSystem { return PVSystem{o} }, func(b *Batch) PVSystemBatch { return PVSystemBatch{b} })
	a.Storage = newCollection(a, storageClass, func(o Obj) Storage { return Storage{o} }, func(b *Batch) StorageBatch { return StorageBatch{b} })
	a.LoadShape = newCollection(a, loadShapeClass, func(o Obj) LoadShape { return LoadShape{o} }, func(b *Batch) LoadShapeBatch { return LoadShapeBatch{b} })
	a.Monitor = newCollection(a, monitorClass, func(o Obj) Monitor { return Monitor{o} }, func(b *Batch) MonitorBatch { return MonitorBatch{b} })
	a.EnergyMeter = newCollection(a, energyMeterClass, func(o Obj) EnergyMeter { return EnergyMeter{o} }, func(b *Batch) EnergyMeterBatch { return EnergyMeterBatch{b} })
	return a
}

func (a *AltDSS) Engine() Engine { return a.e }

func (a *AltDSS) register(cls *Class) {
	a.mu.Lock()
	a.classes[strings.ToLower(cls.Name)] = cls
	a.mu.Unlock()
}

// Class returns the class registered under name. Classes without a typed
// collection are registered, with an empty property table, when an object
// of theirs is first seen.
func (a *AltDSS) Class(name string) (*Class, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	cls, ok := a.classes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dsserr.ErrUnknownClass, name)
	}
	return cls, nil
}

func (a *AltDSS) classIndex(cls *Class) (int32, error) {
	a.mu.Lock()
	idx, ok := a.indices[cls]
	a.mu.Unlock()
	if ok {
		return idx, nil
	}
	idx, err := a.e.ClassIndex(cls.Name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cls.Name, err)
	}
	if idx <= 0 {
		return 0, fmt.Errorf("%w: %s", dsserr.ErrUnknownClass, cls.Name)
	}
	a.mu.Lock()
	a.indices[cls] = idx
	a.mu.Unlock()
	return idx, nil
}

// wrap builds an Obj for a handle of unknown class.
func (a *AltDSS) wrap(h Handle) (Obj, error) {
	name, err := a.e.ObjClassName(h)
	if err != nil {
		return Obj{}, err
	}
	a.mu.Lock()
	cls, ok := a.classes[strings.ToLower(name)]
	if !ok {
		cls = newClass(name)
		a.classes[strings.ToLower(name)] = cls
	}
	a.mu.Unlock()
	return Obj{a: a, cls: cls, h: h}, nil
}

// Object returns the object named "class.name".
func (a *AltDSS) Object(fullName string) (Obj, error) {
	clsName, name, ok := strings.Cut(fullName, ".")
	if !ok {
		return Obj{}, fmt.Errorf("%w: %q is not a full name", dsserr.ErrNotFound, fullName)
	}
	a.mu.Lock()
	cls, known := a.classes[strings.ToLower(clsName)]
	if !known {
		cls = newClass(clsName)
		a.classes[strings.ToLower(clsName)] = cls
	}
	a.mu.Unlock()
	idx, err := a.classIndex(cls)
	if err != nil {
		return Obj{}, err
	}
	h, err := a.e.ObjByName(idx, name)
	if err != nil {
		return Obj{}, err
	}
	if h == nil {
		return Obj{}, fmt.Errorf("%w: %s", dsserr.ErrNotFound, fullName)
	}
	return Obj{a: a, cls: cls, h: h}, nil
}

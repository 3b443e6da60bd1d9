package altdss

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"unsafe"
)

// fakeEngine keeps DSS objects in memory so the package can be exercised
// without the native library.
type fakeEngine struct {
	classes []string
	objs    map[int32][]*fakeObj

	edits    int
	endEdits int
	disposed atomic.Int32
	failEdit error
}

type fakeObj struct {
	cls   int32
	name  string
	props map[int32]any
}

type fakeBatch struct {
	objs []*fakeObj
}

func newFakeEngine(classes ...string) *fakeEngine {
	return &fakeEngine{classes: classes, objs: make(map[int32][]*fakeObj)}
}

func fh(o *fakeObj) Handle { return Handle(o) }

func fo(h Handle) *fakeObj { return (*fakeObj)(h) }

func (e *fakeEngine) raw(objs []*fakeObj) RawBatch {
	return RawBatch{Ptr: unsafe.Pointer(&fakeBatch{objs: objs}), Count: int32(len(objs))}
}

func fb(b RawBatch) *fakeBatch { return (*fakeBatch)(b.Ptr) }

func (e *fakeEngine) ClassIndex(name string) (int32, error) {
	for i, c := range e.classes {
		if strings.EqualFold(c, name) {
			return int32(i + 1), nil
		}
	}
	return 0, nil
}

func (e *fakeEngine) ObjCount(cls int32) (int32, error) { return int32(len(e.objs[cls])), nil }

func (e *fakeEngine) ObjByName(cls int32, name string) (Handle, error) {
	for _, o := range e.objs[cls] {
		if strings.EqualFold(o.name, name) {
			return fh(o), nil
		}
	}
	return nil, nil
}

func (e *fakeEngine) ObjByIndex(cls int32, idx int32) (Handle, error) {
	if idx < 1 || int(idx) > len(e.objs[cls]) {
		return nil, nil
	}
	return fh(e.objs[cls][idx-1]), nil
}

func (e *fakeEngine) ObjNew(cls int32, name string, activate, beginEdit bool) (Handle, error) {
	o := &fakeObj{cls: cls, name: strings.ToLower(name), props: make(map[int32]any)}
	e.objs[cls] = append(e.objs[cls], o)
	return fh(o), nil
}

func (e *fakeEngine) ObjName(h Handle) (string, error)      { return fo(h).name, nil }
func (e *fakeEngine) ObjClassName(h Handle) (string, error) { return e.classes[fo(h).cls-1], nil }

func (e *fakeEngine) ObjIndex(h Handle) (int32, error) {
	o := fo(h)
	for i, x := range e.objs[o.cls] {
		if x == o {
			return int32(i + 1), nil
		}
	}
	return 0, nil
}

func (e *fakeEngine) ObjNumProperties(h Handle) (int32, error) { return int32(len(fo(h).props)), nil }

func get[T any](h Handle, prop int32) (T, error) {
	v, _ := fo(h).props[prop].(T)
	return v, nil
}

func set(h Handle, prop int32, v any) error {
	fo(h).props[prop] = v
	return nil
}

func (e *fakeEngine) ObjFloat64(h Handle, p int32) (float64, error)        { return get[float64](h, p) }
func (e *fakeEngine) ObjInt32(h Handle, p int32) (int32, error)            { return get[int32](h, p) }
func (e *fakeEngine) ObjString(h Handle, p int32) (string, error)          { return get[string](h, p) }
func (e *fakeEngine) ObjObject(h Handle, p int32) (Handle, error)          { return get[Handle](h, p) }
func (e *fakeEngine) ObjFloat64Array(h Handle, p int32) ([]float64, error) { return get[[]float64](h, p) }
func (e *fakeEngine) ObjInt32Array(h Handle, p int32) ([]int32, error)     { return get[[]int32](h, p) }
func (e *fakeEngine) ObjStringArray(h Handle, p int32) ([]string, error)   { return get[[]string](h, p) }
func (e *fakeEngine) ObjObjectArray(h Handle, p int32) ([]Handle, error)   { return get[[]Handle](h, p) }

func (e *fakeEngine) ObjSetFloat64(h Handle, p int32, v float64) error        { return set(h, p, v) }
func (e *fakeEngine) ObjSetInt32(h Handle, p int32, v int32) error            { return set(h, p, v) }
func (e *fakeEngine) ObjSetString(h Handle, p int32, v string) error          { return set(h, p, v) }
func (e *fakeEngine) ObjSetObject(h Handle, p int32, v Handle) error          { return set(h, p, v) }
func (e *fakeEngine) ObjSetFloat64Array(h Handle, p int32, v []float64) error { return set(h, p, v) }
func (e *fakeEngine) ObjSetInt32Array(h Handle, p int32, v []int32) error     { return set(h, p, v) }
func (e *fakeEngine) ObjSetStringArray(h Handle, p int32, v []string) error   { return set(h, p, v) }
func (e *fakeEngine) ObjSetObjectArray(h Handle, p int32, v []Handle) error   { return set(h, p, v) }

func (e *fakeEngine) ObjAsString(h Handle, p int32) (string, error) {
	switch v := fo(h).props[p].(type) {
	case nil:
		return "", nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case Handle:
		return e.ObjName(v)
	default:
		return fmt.Sprint(v), nil
	}
}

// ObjSetAsString parses the text according to the current value type,
// falling back to storing the text.
func (e *fakeEngine) ObjSetAsString(h Handle, p int32, s string) error {
	switch fo(h).props[p].(type) {
	case float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		return set(h, p, v)
	case int32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return err
		}
		return set(h, p, int32(v))
	}
	return set(h, p, s)
}

func (e *fakeEngine) ObjBeginEdit(Handle) error {
	e.edits++
	return e.failEdit
}

func (e *fakeEngine) ObjEndEdit(Handle, int32) error {
	e.endEdits++
	return nil
}

func (e *fakeEngine) ObjActivate(Handle, bool) error { return nil }

func (e *fakeEngine) ObjToJSON(h Handle, flags int32) (string, error) {
	return fmt.Sprintf(`{"name":%q}`, fo(h).name), nil
}

func (e *fakeEngine) BatchByClass(cls int32) (RawBatch, error) {
	return e.raw(append([]*fakeObj(nil), e.objs[cls]...)), nil
}

func (e *fakeEngine) BatchByRegExp(cls int32, re string) (RawBatch, error) {
	rx, err := regexp.Compile("(?i)" + re)
	if err != nil {
		return RawBatch{}, err
	}
	var res []*fakeObj
	for _, o := range e.objs[cls] {
		if rx.MatchString(o.name) {
			res = append(res, o)
		}
	}
	return e.raw(res), nil
}

func (e *fakeEngine) BatchByIndex(cls int32, idx []int32) (RawBatch, error) {
	var res []*fakeObj
	for _, i := range idx {
		if i >= 1 && int(i) <= len(e.objs[cls]) {
			res = append(res, e.objs[cls][i-1])
		}
	}
	return e.raw(res), nil
}

func (e *fakeEngine) BatchByInt32Property(cls int32, prop int32, value int32) (RawBatch, error) {
	var res []*fakeObj
	for _, o := range e.objs[cls] {
		if v, _ := o.props[prop].(int32); v == value {
			res = append(res, o)
		}
	}
	return e.raw(res), nil
}

func (e *fakeEngine) BatchFromNew(cls int32, names []string, beginEdit bool) (RawBatch, error) {
	res := make([]*fakeObj, len(names))
	for i, n := range names {
		h, _ := e.ObjNew(cls, n, false, beginEdit)
		res[i] = fo(h)
	}
	return e.raw(res), nil
}

func (e *fakeEngine) BatchDispose(RawBatch) { e.disposed.Add(1) }

func (e *fakeEngine) BatchHandles(b RawBatch) []Handle {
	res := make([]Handle, len(fb(b).objs))
	for i, o := range fb(b).objs {
		res[i] = fh(o)
	}
	return res
}

func batchGet[T any](b RawBatch, prop int32) ([]T, error) {
	res := make([]T, len(fb(b).objs))
	for i, o := range fb(b).objs {
		res[i], _ = o.props[prop].(T)
	}
	return res, nil
}

func (e *fakeEngine) BatchFloat64(b RawBatch, p int32) ([]float64, error) { return batchGet[float64](b, p) }
func (e *fakeEngine) BatchInt32(b RawBatch, p int32) ([]int32, error)     { return batchGet[int32](b, p) }
func (e *fakeEngine) BatchString(b RawBatch, p int32) ([]string, error)   { return batchGet[string](b, p) }
func (e *fakeEngine) BatchObject(b RawBatch, p int32) ([]Handle, error)   { return batchGet[Handle](b, p) }

func applyOp[T float64 | int32](cur T, op BatchOp, v T) (T, error) {
	switch op {
	case BatchOp_Set:
		return v, nil
	case BatchOp_Multiply:
		return cur * v, nil
	case BatchOp_Increment:
		return cur + v, nil
	case BatchOp_Divide:
		return cur / v, nil
	}
	return cur, errors.New("bad op")
}

func (e *fakeEngine) BatchSetFloat64(b RawBatch, p int32, op BatchOp, v float64) error {
	for _, o := range fb(b).objs {
		cur, _ := o.props[p].(float64)
		n, err := applyOp(cur, op, v)
		if err != nil {
			return err
		}
		o.props[p] = n
	}
	return nil
}

func (e *fakeEngine) BatchSetFloat64Array(b RawBatch, p int32, op BatchOp, vs []float64) error {
	for i, o := range fb(b).objs {
		cur, _ := o.props[p].(float64)
		n, err := applyOp(cur, op, vs[i])
		if err != nil {
			return err
		}
		o.props[p] = n
	}
	return nil
}

func (e *fakeEngine) BatchSetInt32(b RawBatch, p int32, op BatchOp, v int32) error {
	for _, o := range fb(b).objs {
		cur, _ := o.props[p].(int32)
		n, err := applyOp(cur, op, v)
		if err != nil {
			return err
		}
		o.props[p] = n
	}
	return nil
}

func (e *fakeEngine) BatchSetInt32Array(b RawBatch, p int32, op BatchOp, vs []int32) error {
	for i, o := range fb(b).objs {
		cur, _ := o.props[p].(int32)
		n, err := applyOp(cur, op, vs[i])
		if err != nil {
			return err
		}
		o.props[p] = n
	}
	return nil
}

func (e *fakeEngine) BatchSetString(b RawBatch, p int32, v string) error {
	for _, o := range fb(b).objs {
		o.props[p] = v
	}
	return nil
}

func (e *fakeEngine) BatchSetStringArray(b RawBatch, p int32, vs []string) error {
	for i, o := range fb(b).objs {
		o.props[p] = vs[i]
	}
	return nil
}

func (e *fakeEngine) BatchSetObject(b RawBatch, p int32, v Handle) error {
	for _, o := range fb(b).objs {
		o.props[p] = v
	}
	return nil
}

func (e *fakeEngine) BatchBeginEdit(RawBatch) error {
	e.edits++
	return e.failEdit
}

func (e *fakeEngine) BatchEndEdit(RawBatch, int32) error {
	e.endEdits++
	return nil
}

func (e *fakeEngine) BatchToJSON(b RawBatch, flags int32) (string, error) {
	names := make([]string, len(fb(b).objs))
	for i, o := range fb(b).objs {
		names[i] = strconv.Quote(o.name)
	}
	return "[" + strings.Join(names, ",") + "]", nil
}

package altdss

import (
	"fmt"
	"iter"

	"github.com/dss-extensions/dss-go/dsserr"
)

type object interface {
	base() Obj
}

// Collection is the entry point to the objects of one class. T is the typed
// object wrapper and B the typed batch wrapper of the class.
type Collection[T object, B any] struct {
	a     *AltDSS
	cls   *Class
	obj   func(Obj) T
	batch func(*Batch) B
}

func newCollection[T object, B any](a *AltDSS, cls *Class, obj func(Obj) T, batch func(*Batch) B) *Collection[T, B] {
	a.register(cls)
	return &Collection[T, B]{a: a, cls: cls, obj: obj, batch: batch}
}

func (c *Collection[T, B]) Class() *Class { return c.cls }

func (c *Collection[T, B]) index() (int32, error) {
	return c.a.classIndex(c.cls)
}

func (c *Collection[T, B]) wrap(h Handle) T {
	return c.obj(Obj{a: c.a, cls: c.cls, h: h})
}

func (c *Collection[T, B]) Count() (int, error) {
	cls, err := c.index()
	if err != nil {
		return 0, err
	}
	n, err := c.a.e.ObjCount(cls)
	return int(n), err
}

// Find returns the object with the given name. Names are case-insensitive.
func (c *Collection[T, B]) Find(name string) (T, error) {
	var zero T
	cls, err := c.index()
	if err != nil {
		return zero, err
	}
	h, err := c.a.e.ObjByName(cls, name)
	if err != nil {
		return zero, err
	}
	if h == nil {
		return zero, fmt.Errorf("%w: %s.%s", dsserr.ErrNotFound, c.cls.Name, name)
	}
	return c.wrap(h), nil
}

// At returns the object at the 1-based index idx.
func (c *Collection[T, B]) At(idx int32) (T, error) {
	var zero T
	cls, err := c.index()
	if err != nil {
		return zero, err
	}
	h, err := c.a.e.ObjByIndex(cls, idx)
	if err != nil {
		return zero, err
	}
	if h == nil {
		return zero, fmt.Errorf("%w: %s #%d", dsserr.ErrNotFound, c.cls.Name, idx)
	}
	return c.wrap(h), nil
}

// New creates an object. When activate is set it also becomes the active
// object, as with a "new" command.
func (c *Collection[T, B]) New(name string, activate bool) (T, error) {
	var zero T
	cls, err := c.index()
	if err != nil {
		return zero, err
	}
	h, err := c.a.e.ObjNew(cls, name, activate, false)
	if err != nil {
		return zero, err
	}
	return c.wrap(h), nil
}

// Seq iterates over all objects of the class, in index order.
func (c *Collection[T, B]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		n, err := c.Count()
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for i := 1; i <= n; i++ {
			if !yield(c.At(int32(i))) {
				return
			}
		}
	}
}

func (c *Collection[T, B]) Names() ([]string, error) {
	var res []string
	for o, err := range c.Seq() {
		if err != nil {
			return nil, err
		}
		name, err := o.base().Name()
		if err != nil {
			return nil, err
		}
		res = append(res, name)
	}
	return res, nil
}

func (c *Collection[T, B]) newBatch(raw RawBatch, err error) (B, error) {
	if err != nil {
		var zero B
		return zero, err
	}
	return c.batch(newBatch(c.a, c.cls, raw)), nil
}

// Batch returns all objects of the class.
func (c *Collection[T, B]) Batch() (B, error) {
	cls, err := c.index()
	if err != nil {
		var zero B
		return zero, err
	}
	return c.newBatch(c.a.e.BatchByClass(cls))
}

// Match returns the objects whose names match the regular expression re.
func (c *Collection[T, B]) Match(re string) (B, error) {
	cls, err := c.index()
	if err != nil {
		var zero B
		return zero, err
	}
	return c.newBatch(c.a.e.BatchByRegExp(cls, re))
}

// Where returns the objects whose int32 property prop equals value.
func (c *Collection[T, B]) Where(prop int32, value int32) (B, error) {
	cls, err := c.index()
	if err != nil {
		var zero B
		return zero, err
	}
	return c.newBatch(c.a.e.BatchByInt32Property(cls, prop, value))
}

// ByIndex returns the objects at the given 1-based indices.
func (c *Collection[T, B]) ByIndex(idx ...int32) (B, error) {
	cls, err := c.index()
	if err != nil {
		var zero B
		return zero, err
	}
	return c.newBatch(c.a.e.BatchByIndex(cls, idx))
}

// NewBatch creates one object per name and returns them as a batch.
func (c *Collection[T, B]) NewBatch(names ...string) (B, error) {
	cls, err := c.index()
	if err != nil {
		var zero B
		return zero, err
	}
	return c.newBatch(c.a.e.BatchFromNew(cls, names, false))
}

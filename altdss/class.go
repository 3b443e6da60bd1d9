package altdss

import (
	"fmt"
	"strings"

	"github.com/dss-extensions/dss-go/dsserr"
)

// PropKind is the native storage type of a property.
type PropKind int

const (
	KindFloat64 PropKind = iota
	KindInt32
	KindString
	KindObject
	KindFloat64Array
	KindInt32Array
	KindStringArray
	KindObjectArray
)

// Property describes one entry of a class property table.
type Property struct {
	Name  string
	Index int32
	Kind  PropKind
}

// Class is a DSS class name plus its property table. The class index is
// resolved against the engine on first use.
type Class struct {
	Name       string
	Properties []Property

	byName map[string]*Property
}

func newClass(name string, props ...Property) *Class {
	c := &Class{Name: name, Properties: props, byName: make(map[string]*Property, len(props))}
	for i := range c.Properties {
		c.byName[strings.ToLower(c.Properties[i].Name)] = &c.Properties[i]
	}
	return c
}

// Property resolves a property by name, ignoring case.
func (c *Class) Property(name string) (*Property, error) {
	p, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", dsserr.ErrUnknownProperty, c.Name, name)
	}
	return p, nil
}

// PropertyNames lists the table in index order.
func (c *Class) PropertyNames() []string {
	res := make([]string, len(c.Properties))
	for i, p := range c.Properties {
		res[i] = p.Name
	}
	return res
}

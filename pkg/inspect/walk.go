package inspect

import (
	"errors"
	"reflect"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// SkipObject can be returned from an ObjectFunc to skip the object's
// parameters and children.
var SkipObject = errors.New("skip this object")

// ParameterValue is one present parameter in the form of a CWMP
// ParameterValueStruct.
type ParameterValue struct {
	// Name is the resolved parameter path.
	Name string `json:"name" yaml:"name"`

	// Value is the CWMP text form.
	Value string `json:"value" yaml:"value"`

	// Type is the xsd type announced for the value.
	Type string `json:"type" yaml:"type"`

	// Meta is the parameter's schema description.
	Meta *model.ParameterMetadata `json:"-" yaml:"-"`
}

// Node is an object instance reached during a walk.
type Node struct {
	// Path is the resolved object path.
	Path string

	// Indices are the instance numbers of every table on the way to the object.
	Indices []int

	// Object is the instance itself.
	Object model.Object
}

// Meta returns the node's schema description.
func (n Node) Meta() *model.ObjectMetadata {
	return n.Object.ObjectMetadata()
}

// ObjectFunc is called for every object reached by WalkObjects.
type ObjectFunc func(node Node) error

// WalkObjects visits obj and every present child object depth first, in
// schema order. Table instances are numbered by position starting at 1.
// indices resolve the placeholders of obj's own path.
func WalkObjects(obj model.Object, indices []int, fn ObjectFunc) error {
	meta := obj.ObjectMetadata()
	node := Node{
		Path:    model.Resolve(meta.Path, indices...),
		Indices: indices,
		Object:  obj,
	}
	if err := fn(node); err != nil {
		if errors.Is(err, SkipObject) {
			return nil
		}
		return err
	}

	for _, c := range meta.Children {
		if c.Table {
			for n, inst := range Instances(obj, c) {
				if inst == nil {
					continue
				}
				if err := WalkObjects(inst, appendIndex(indices, n+1), fn); err != nil {
					return err
				}
			}
			continue
		}
		if child, ok := Child(obj, c); ok {
			if err := WalkObjects(child, indices, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Walk visits every present parameter of obj and its descendants.
func Walk(obj model.Object, indices []int, fn func(pv ParameterValue) error) error {
	return WalkObjects(obj, indices, func(node Node) error {
		for _, p := range node.Meta().Parameters {
			text, ok := Text(node.Object, p)
			if !ok {
				continue
			}
			err := fn(ParameterValue{
				Name:  model.Join(node.Path, p.Name),
				Value: text,
				Type:  p.Type.XSDType(),
				Meta:  p,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Flatten returns every present parameter of obj and its descendants.
func Flatten(obj model.Object, indices ...int) []ParameterValue {
	var out []ParameterValue
	_ = Walk(obj, indices, func(pv ParameterValue) error {
		out = append(out, pv)
		return nil
	})
	return out
}

// Child returns a singleton child and whether it is present.
func Child(obj model.Object, c *model.ChildMetadata) (model.Object, bool) {
	f, err := field(obj, c.Field)
	if err != nil || f.Kind() != reflect.Pointer || f.IsNil() {
		return nil, false
	}
	child, ok := f.Interface().(model.Object)
	return child, ok
}

// Instances returns the instances of a table child in order. Nil entries
// are kept so positions match instance numbers.
func Instances(obj model.Object, c *model.ChildMetadata) []model.Object {
	f, err := field(obj, c.Field)
	if err != nil || f.Kind() != reflect.Slice {
		return nil
	}
	out := make([]model.Object, f.Len())
	for i := range out {
		e := f.Index(i)
		if e.IsNil() {
			continue
		}
		out[i], _ = e.Interface().(model.Object)
	}
	return out
}

func appendIndex(indices []int, n int) []int {
	out := make([]int, len(indices), len(indices)+1)
	copy(out, indices)
	return append(out, n)
}

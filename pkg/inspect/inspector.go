package inspect

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/cwmp-model/cwmp-go/pkg/log"
	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// Inspector errors.
var (
	ErrParameterNotFound = errors.New("parameter not found")
	ErrInstanceNotFound  = errors.New("instance not found")
	ErrNotWritable       = errors.New("parameter is not writable")
	ErrNotSet            = errors.New("parameter has no value")
)

// Inspector reads and edits an object tree by path. Every change is
// reported to the configured log.Logger. An Inspector is not safe for
// concurrent use.
type Inspector struct {
	root    model.Object
	indices []int
	logger  log.Logger
	session string
	now     func() time.Time
}

// NewInspector creates an Inspector for root. indices resolve the
// placeholders of root's path template; missing ones default to 1.
func NewInspector(root model.Object, indices ...int) *Inspector {
	n := model.InstanceCount(root.ObjectMetadata().Path)
	idx := make([]int, n)
	for k := range idx {
		idx[k] = 1
		if k < len(indices) && indices[k] > 0 {
			idx[k] = indices[k]
		}
	}
	return &Inspector{
		root:    root,
		indices: idx,
		logger:  log.NoopLogger{},
		session: uuid.NewString(),
		now:     time.Now,
	}
}

// Root returns the inspected object.
func (i *Inspector) Root() model.Object {
	return i.root
}

// Path returns the resolved path of the root object.
func (i *Inspector) Path() string {
	return model.Resolve(i.root.ObjectMetadata().Path, i.indices...)
}

// Indices returns the instance numbers of the root object.
func (i *Inspector) Indices() []int {
	return i.indices
}

// SessionID returns the session identifier stamped on logged events.
func (i *Inspector) SessionID() string {
	return i.session
}

// SetLogger sets the change logger. A nil logger disables logging.
func (i *Inspector) SetLogger(l log.Logger) {
	if l == nil {
		l = log.NoopLogger{}
	}
	i.logger = l
}

// Log stamps an event with the current time and session and records it.
func (i *Inspector) Log(event log.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = i.now()
	}
	if event.SessionID == "" {
		event.SessionID = i.session
	}
	i.logger.Log(event)
}

// target is the result of resolving a path against the tree.
type target struct {
	obj     model.Object
	path    string
	indices []int

	// param is set for parameter paths.
	param *model.ParameterMetadata

	// table is set for table paths without an instance number; obj is
	// then the table's parent.
	table *model.ChildMetadata

	// created lists singleton children constructed while resolving.
	created []createdChild
}

type createdChild struct {
	parent model.Object
	child  *model.ChildMetadata
}

// rollback removes the singleton children constructed while resolving,
// innermost first.
func (t *target) rollback() {
	for k := len(t.created) - 1; k >= 0; k-- {
		cc := t.created[k]
		if f, err := field(cc.parent, cc.child.Field); err == nil {
			f.Set(reflect.Zero(f.Type()))
		}
	}
	t.created = nil
}

// resolve walks input from the root. Absolute paths must start with the
// root path; anything else is taken relative to the root. With create set,
// absent singleton children on the way are constructed; callers must
// rollback the target if they fail afterwards.
func (i *Inspector) resolve(input string, create bool) (*target, error) {
	t := &target{obj: i.root, path: i.Path(), indices: i.indices}
	if err := i.walkPath(t, input, create); err != nil {
		t.rollback()
		return nil, err
	}
	return t, nil
}

func (i *Inspector) walkPath(t *target, input string, create bool) error {
	if input == "" || input == "." {
		return nil
	}

	p, err := ParsePath(input)
	if err != nil {
		return err
	}
	rest, ok := p.TrimPrefix(t.path)
	if !ok {
		rest = p.Segments
	}

	for n := 0; n < len(rest); n++ {
		meta := t.obj.ObjectMetadata()
		seg := canonicalName(meta, rest[n])
		last := n == len(rest)-1

		if pm, ok := meta.Parameter(seg); ok {
			if !last || p.Partial {
				return fmt.Errorf("%w: %s is a parameter", ErrInvalidPath, model.Join(t.path, seg))
			}
			t.param = pm
			return nil
		}

		c, ok := meta.Child(seg)
		if !ok {
			return fmt.Errorf("%w: %s", ErrParameterNotFound, model.Join(t.path, rest[n]))
		}

		if !c.Table {
			_, present := Child(t.obj, c)
			child, err := i.singleton(t.obj, c, create)
			if err != nil {
				return fmt.Errorf("%s: %w", model.Join(t.path, seg), err)
			}
			if !present {
				t.created = append(t.created, createdChild{parent: t.obj, child: c})
			}
			t.obj = child
			t.path = model.Join(t.path, seg)
			continue
		}

		if last {
			t.table = c
			t.path = model.Join(t.path, seg)
			return nil
		}

		n++
		inst, err := model.ParseInstance(rest[n])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
		insts := Instances(t.obj, c)
		if inst > len(insts) || insts[inst-1] == nil {
			return fmt.Errorf("%w: %s", ErrInstanceNotFound, model.Join(t.path, seg, rest[n]))
		}
		t.obj = insts[inst-1]
		t.path = model.Join(t.path, seg, rest[n])
		t.indices = appendIndex(t.indices, inst)
	}
	return nil
}

func (i *Inspector) singleton(parent model.Object, c *model.ChildMetadata, create bool) (model.Object, error) {
	if child, ok := Child(parent, c); ok {
		return child, nil
	}
	if !create {
		return nil, ErrNotSet
	}

	child, err := model.New(c.Path)
	if err != nil {
		return nil, err
	}
	f, err := field(parent, c.Field)
	if err != nil {
		return nil, err
	}
	v := reflect.ValueOf(child)
	if !v.Type().AssignableTo(f.Type()) {
		return nil, fmt.Errorf("registered type %T does not fit field %s", child, c.Field)
	}
	f.Set(v)
	return child, nil
}

// Get returns a parameter value.
func (i *Inspector) Get(path string) (ParameterValue, error) {
	t, err := i.resolve(path, false)
	if err != nil {
		return ParameterValue{}, err
	}
	if t.param == nil {
		return ParameterValue{}, fmt.Errorf("%w: %s is an object", ErrInvalidPath, t.path)
	}

	name := model.Join(t.path, t.param.Name)
	text, ok := Text(t.obj, t.param)
	if !ok {
		return ParameterValue{}, fmt.Errorf("%w: %s", ErrNotSet, name)
	}
	return ParameterValue{Name: name, Value: text, Type: t.param.Type.XSDType(), Meta: t.param}, nil
}

// List returns the present parameters at or below path. An empty path
// lists the whole tree.
func (i *Inspector) List(path string) ([]ParameterValue, error) {
	t, err := i.resolve(path, false)
	if err != nil {
		return nil, err
	}

	switch {
	case t.param != nil:
		pv, err := i.Get(path)
		if err != nil {
			return nil, err
		}
		return []ParameterValue{pv}, nil
	case t.table != nil:
		var out []ParameterValue
		for n, inst := range Instances(t.obj, t.table) {
			if inst != nil {
				out = append(out, Flatten(inst, appendIndex(t.indices, n+1)...)...)
			}
		}
		return out, nil
	default:
		return Flatten(t.obj, t.indices...), nil
	}
}

// Set parses value for the parameter's type and stores it, as an ACS
// SetParameterValues would. Read-only parameters are refused.
func (i *Inspector) Set(path, value string) error {
	return i.set(path, value, false)
}

// SetInternal stores a value on behalf of the device itself, bypassing
// the access check.
func (i *Inspector) SetInternal(path, value string) error {
	return i.set(path, value, true)
}

func (i *Inspector) set(path, value string, internal bool) error {
	t, err := i.resolve(path, true)
	if err != nil {
		return err
	}
	if t.param == nil {
		t.rollback()
		return fmt.Errorf("%w: %s is an object", ErrInvalidPath, t.path)
	}

	name := model.Join(t.path, t.param.Name)
	if !internal && !t.param.Access.CanWrite() {
		t.rollback()
		return fmt.Errorf("%w: %s", ErrNotWritable, name)
	}

	old, had, err := setText(t.obj, t.param, value)
	if err != nil {
		t.rollback()
		i.Log(log.Event{Kind: log.KindError, Path: name, Message: err.Error()})
		return err
	}

	event := log.Event{
		Kind:     log.KindValueChange,
		Path:     name,
		Object:   t.obj.ObjectMetadata().Path,
		Notify:   t.param.Notify,
		Internal: internal,
	}
	if had {
		event.OldValue = log.Value(old)
	}
	if text, ok := Text(t.obj, t.param); ok {
		event.NewValue = log.Value(text)
	}
	i.Log(event)
	return nil
}

// AddInstance appends a default-populated instance to a table and returns
// its instance number. The parent's NumberOfEntries parameter is updated.
// Tables the ACS may not extend are refused.
func (i *Inspector) AddInstance(tablePath string) (int, error) {
	t, err := i.resolve(tablePath, true)
	if err != nil {
		return 0, err
	}
	if t.table == nil {
		t.rollback()
		return 0, fmt.Errorf("%w: %s is not a table", ErrInvalidPath, t.path)
	}

	c := t.table
	if tm, ok := model.Lookup(c.Path); ok && !tm.Access.CanWrite() {
		t.rollback()
		return 0, fmt.Errorf("%w: %s", ErrNotWritable, t.path)
	}

	inst, err := model.New(c.Path)
	if err != nil {
		t.rollback()
		return 0, err
	}
	f, err := field(t.obj, c.Field)
	if err != nil {
		t.rollback()
		return 0, err
	}
	v := reflect.ValueOf(inst)
	if f.Kind() != reflect.Slice || !v.Type().AssignableTo(f.Type().Elem()) {
		t.rollback()
		return 0, fmt.Errorf("registered type %T does not fit field %s", inst, c.Field)
	}
	f.Set(reflect.Append(f, v))
	n := f.Len()

	if c.NumberOfEntries != "" {
		if pm, ok := t.obj.ObjectMetadata().Parameter(c.NumberOfEntries); ok {
			if _, _, err := setText(t.obj, pm, strconv.Itoa(n)); err != nil {
				return 0, err
			}
		}
	}

	i.Log(log.Event{
		Kind:     log.KindInstanceAdded,
		Path:     model.Join(t.path, strconv.Itoa(n)),
		Object:   c.Path,
		NewValue: log.Value(strconv.Itoa(n)),
	})
	return n, nil
}

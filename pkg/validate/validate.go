// Package validate checks populated data-model objects against the
// constraints their metadata declares.
//
// Entities never validate themselves; a Report is produced on demand and
// lists every violation found rather than stopping at the first.
package validate

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// Violation codes.
const (
	CodeLength    = "length_out_of_range"
	CodeRange     = "value_out_of_range"
	CodeEnum      = "enum_invalid"
	CodeItems     = "item_count_out_of_range"
	CodeFormat    = "format_invalid"
	CodeUnique    = "unique_violation"
	CodeEntries   = "entries_mismatch"
	CodeReadOnly  = "readonly_field"
	CodeTypeMatch = "type_mismatch"
)

// Violation is a single failed constraint.
type Violation struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error implements error.
func (v Violation) Error() string {
	return v.Path + ": " + v.Message
}

// Report collects the violations found by Validate or CheckUpdate.
type Report struct {
	Violations []Violation `json:"violations"`
}

// OK reports whether no violation was found.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// ByCode returns the violations with the given code.
func (r *Report) ByCode(code string) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Code == code {
			out = append(out, v)
		}
	}
	return out
}

// Err returns all violations joined into one error, or nil.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Violations))
	for i, v := range r.Violations {
		errs[i] = v
	}
	return errors.Join(errs...)
}

func (r *Report) add(code, path, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{
		Code:    code,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

type validity interface {
	Valid() bool
}

// Validate checks every present parameter of obj and its descendants.
// indices resolves the placeholders of obj's own path.
func Validate(obj model.Object, indices ...int) *Report {
	r := &Report{}
	_ = inspect.WalkObjects(obj, indices, func(n inspect.Node) error {
		meta := n.Meta()
		for _, p := range meta.Parameters {
			v, ok := inspect.Value(n.Object, p)
			if !ok {
				continue
			}
			checkParameter(r, n.Path+"."+p.Name, p, v)
		}
		for _, c := range meta.Children {
			if c.Table {
				checkTable(r, n, c)
			}
		}
		return nil
	})
	return r
}

func checkParameter(r *Report, path string, p *model.ParameterMetadata, v any) {
	if !p.List {
		checkScalar(r, path, p, reflect.ValueOf(v))
		return
	}

	items := reflect.ValueOf(v)
	n := items.Len()
	if n < p.MinItems || (p.MaxItems > 0 && n > p.MaxItems) {
		r.add(CodeItems, path, "%d items, want %s", n, bounds(p.MinItems, p.MaxItems))
	}
	for i := 0; i < n; i++ {
		checkScalar(r, fmt.Sprintf("%s[%d]", path, i), p, items.Index(i))
	}
}

func checkScalar(r *Report, path string, p *model.ParameterMetadata, v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		s := v.String()
		if n := utf8.RuneCountInString(s); !lengthOK(p, n) {
			r.add(CodeLength, path, "length %d, want %s", n, bounds(p.MinLength, p.MaxLength))
		}
		if !p.HasEnum(s) {
			r.add(CodeEnum, path, "%q is not one of %s", s, strings.Join(p.Enum, ", "))
		}
	case reflect.Slice:
		if n := v.Len(); !lengthOK(p, n) {
			r.add(CodeLength, path, "%d bytes, want %s", n, bounds(p.MinLength, p.MaxLength))
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if lo, hi, ok := typeRange(p.Type); ok && (n < lo || n > hi) {
			r.add(CodeRange, path, "%d outside the %s range [%d..%d]", n, p.Type, lo, hi)
		} else if belowInt(n, p.MinValue) || aboveInt(n, p.MaxValue) {
			r.add(CodeRange, path, "%d outside %s", n, valueRange(p))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := v.Uint()
		if belowUint(n, p.MinValue) || aboveUint(n, p.MaxValue) {
			r.add(CodeRange, path, "%d outside %s", n, valueRange(p))
		}
	}

	if f, ok := v.Interface().(validity); ok && !f.Valid() {
		r.add(CodeFormat, path, "%v is not a valid %s", v.Interface(), p.Type)
	}
}

// typeRange returns the range implied by a 32-bit schema type whose
// values are held in an int64.
func typeRange(dt model.DataType) (lo, hi int64, ok bool) {
	switch dt {
	case model.DataTypeInt:
		return math.MinInt32, math.MaxInt32, true
	case model.DataTypeUnsignedInt:
		return 0, math.MaxUint32, true
	}
	return 0, 0, false
}

// lengthOK applies MinLength and MaxLength. A MaxLength of zero or below
// leaves the length unbounded.
func lengthOK(p *model.ParameterMetadata, n int) bool {
	return n >= p.MinLength && (p.MaxLength <= 0 || n <= p.MaxLength)
}

func bounds(lo, hi int) string {
	if hi <= 0 {
		return fmt.Sprintf("at least %d", lo)
	}
	return fmt.Sprintf("%d..%d", lo, hi)
}

func valueRange(p *model.ParameterMetadata) string {
	lo, hi := "", ""
	if p.MinValue != nil {
		lo = fmt.Sprint(p.MinValue)
	}
	if p.MaxValue != nil {
		hi = fmt.Sprint(p.MaxValue)
	}
	return "[" + lo + ".." + hi + "]"
}

func belowInt(n int64, bound any) bool {
	switch b := bound.(type) {
	case int64:
		return n < b
	case uint64:
		return n < 0 || uint64(n) < b
	}
	return false
}

func aboveInt(n int64, bound any) bool {
	switch b := bound.(type) {
	case int64:
		return n > b
	case uint64:
		return n > 0 && uint64(n) > b
	}
	return false
}

func belowUint(n uint64, bound any) bool {
	switch b := bound.(type) {
	case int64:
		return b > 0 && n < uint64(b)
	case uint64:
		return n < b
	}
	return false
}

func aboveUint(n uint64, bound any) bool {
	switch b := bound.(type) {
	case int64:
		return b < 0 || n > uint64(b)
	case uint64:
		return n > b
	}
	return false
}

// checkTable verifies the unique keys across the instances of one table
// and the parent's NumberOfEntries counter.
func checkTable(r *Report, n inspect.Node, c *model.ChildMetadata) {
	instances := inspect.Instances(n.Object, c)
	tablePath := n.Path + "." + c.Name

	if c.NumberOfEntries != "" {
		if p, ok := n.Meta().Parameter(c.NumberOfEntries); ok {
			if text, ok := inspect.Text(n.Object, p); ok && text != strconv.Itoa(len(instances)) {
				r.add(CodeEntries, n.Path+"."+p.Name, "is %s but %s has %d instances", text, tablePath, len(instances))
			}
		}
	}

	meta, ok := model.Lookup(c.Path)
	if !ok {
		return
	}
	for _, key := range meta.Unique {
		seen := make(map[string]int)
		for i, inst := range instances {
			if inst == nil {
				continue
			}
			k, ok := keyText(inst, meta, key)
			if !ok {
				continue
			}
			num := i + 1
			if first, dup := seen[k]; dup {
				r.add(CodeUnique, tablePath+"."+strconv.Itoa(num),
					"%s duplicates instance %d", strings.Join(key, ", "), first)
				continue
			}
			seen[k] = num
		}
	}
}

// keyText joins the values of a unique key. Keys with an absent member
// are not compared.
func keyText(obj model.Object, meta *model.ObjectMetadata, key []string) (string, bool) {
	parts := make([]string, len(key))
	for i, name := range key {
		p, ok := meta.Parameter(name)
		if !ok {
			return "", false
		}
		text, ok := inspect.Text(obj, p)
		if !ok {
			return "", false
		}
		parts[i] = text
	}
	return strings.Join(parts, "\x00"), true
}

// CheckUpdate compares two versions of the same object tree and reports
// every read-only parameter whose value differs. Parameters of objects or
// instances that exist only in after are not compared.
func CheckUpdate(before, after model.Object, indices ...int) *Report {
	r := &Report{}
	if before.ObjectMetadata() != after.ObjectMetadata() {
		r.add(CodeTypeMatch, model.Resolve(after.ObjectMetadata().Path, indices...),
			"cannot compare %s with %s", before.ObjectMetadata().Path, after.ObjectMetadata().Path)
		return r
	}

	existed := make(map[string]bool)
	_ = inspect.WalkObjects(before, indices, func(n inspect.Node) error {
		existed[n.Path] = true
		return nil
	})
	exists := make(map[string]bool)
	_ = inspect.WalkObjects(after, indices, func(n inspect.Node) error {
		exists[n.Path] = true
		return nil
	})

	old := make(map[string]inspect.ParameterValue)
	for _, pv := range inspect.Flatten(before, indices...) {
		old[pv.Name] = pv
	}

	seen := make(map[string]bool)
	for _, pv := range inspect.Flatten(after, indices...) {
		seen[pv.Name] = true
		if pv.Meta.Access.CanWrite() {
			continue
		}
		prev, had := old[pv.Name]
		switch {
		case had && prev.Value != pv.Value:
			r.add(CodeReadOnly, pv.Name, "read-only value changed from %q to %q", prev.Value, pv.Value)
		case !had && existed[parent(pv.Name)]:
			r.add(CodeReadOnly, pv.Name, "read-only value set to %q", pv.Value)
		}
	}
	for _, pv := range inspect.Flatten(before, indices...) {
		if seen[pv.Name] || pv.Meta.Access.CanWrite() || !exists[parent(pv.Name)] {
			continue
		}
		r.add(CodeReadOnly, pv.Name, "read-only value %q removed", pv.Value)
	}
	return r
}

func parent(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[:i]
	}
	return ""
}

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/specparse"
)

// ReviewNote is a suspected schema authoring error carried by a parameter.
type ReviewNote struct {
	Path string
	Note string
}

// CheckModel verifies the references inside a data model: children resolve
// to objects of the same model, unique keys and entry counters name existing
// parameters, enumerations are non-empty and defaults parse for their type.
// It returns the review notes of all parameters.
func CheckModel(m *specparse.RawModel) ([]ReviewNote, error) {
	var errs []error
	var notes []ReviewNote

	typeNames := make(map[string]string)
	for _, def := range m.Objects {
		if !strings.HasPrefix(def.Path, m.Def.Root+".") {
			errs = append(errs, fmt.Errorf("%s: outside model root %s", def.Path, m.Def.Root))
		}
		if prev, dup := typeNames[def.TypeName()]; dup {
			errs = append(errs, fmt.Errorf("%s: type name %s already used by %s", def.Path, def.TypeName(), prev))
		}
		typeNames[def.TypeName()] = def.Path

		objErrs, objNotes := checkObject(m, def)
		errs = append(errs, objErrs...)
		notes = append(notes, objNotes...)
	}

	return notes, errors.Join(errs...)
}

func checkObject(m *specparse.RawModel, def *specparse.RawObjectDef) ([]error, []ReviewNote) {
	var errs []error
	var notes []ReviewNote
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %s", def.Path, fmt.Sprintf(format, args...)))
	}

	if _, err := model.ParseAccess(def.Access); err != nil {
		fail("%v", err)
	}

	params := make(map[string]*specparse.RawParameterDef)
	fields := make(map[string]bool)
	for i := range def.Parameters {
		p := &def.Parameters[i]
		if params[p.Name] != nil {
			fail("duplicate parameter %s", p.Name)
		}
		params[p.Name] = p
		if fields[p.FieldName()] {
			fail("duplicate field %s", p.FieldName())
		}
		fields[p.FieldName()] = true

		if err := checkParameter(p); err != nil {
			fail("%s: %v", p.Name, err)
		}

		path := def.Path + "." + p.Name
		switch {
		case p.Review != "":
			notes = append(notes, ReviewNote{Path: path, Note: p.Review})
		case p.MaxLength < 0:
			notes = append(notes, ReviewNote{Path: path, Note: fmt.Sprintf("negative maxLength %d", p.MaxLength)})
		}
	}

	for _, c := range def.Children {
		child, ok := m.Object(c.Object)
		if !ok {
			fail("child %s references unknown object %s", c.Name, c.Object)
			continue
		}
		want := def.Path + "." + c.Name
		if child.IsTable() {
			want += ".{i}"
		}
		if c.Object != want {
			fail("child %s: object path %s, want %s", c.Name, c.Object, want)
		}
		if fields[c.FieldName()] {
			fail("child field %s clashes with a parameter", c.FieldName())
		}
		fields[c.FieldName()] = true

		if c.NumberOfEntries != "" {
			if !child.IsTable() {
				fail("child %s: numberOfEntries on a single-instance object", c.Name)
			}
			counter, ok := params[c.NumberOfEntries]
			if !ok || counter.Type != "unsignedInt" {
				fail("child %s: numberOfEntries %s is not an unsignedInt parameter", c.Name, c.NumberOfEntries)
			}
		}
	}

	if len(def.Unique) > 0 && !def.IsTable() {
		fail("unique keys on a single-instance object")
	}
	for _, key := range def.Unique {
		if len(key) == 0 {
			fail("empty unique key")
		}
		for _, name := range key {
			if params[name] == nil {
				fail("unique key names unknown parameter %s", name)
			}
		}
	}

	return errs, notes
}

func checkParameter(p *specparse.RawParameterDef) error {
	dt, err := model.ParseDataType(p.Type)
	if err != nil {
		return err
	}
	if _, err := model.ParseAccess(p.Access); err != nil {
		return err
	}
	if _, err := model.ParseNotify(p.Notify); err != nil {
		return err
	}

	if len(p.Enum) > 0 && dt != model.DataTypeString {
		return fmt.Errorf("enumeration on %s parameter", p.Type)
	}
	for _, e := range p.Enum {
		if specparse.EnumConstSuffix(e) == "" {
			return fmt.Errorf("enumeration value %q has no identifier form", e)
		}
	}
	if p.List && dt.IsBinary() {
		return fmt.Errorf("%s lists are not supported", p.Type)
	}
	if !p.List && (p.MinItems != 0 || p.MaxItems != 0) {
		return fmt.Errorf("minItems/maxItems on a scalar parameter")
	}

	for _, bound := range []any{p.Min, p.Max} {
		if bound == nil {
			continue
		}
		if !dt.IsInteger() {
			return fmt.Errorf("numeric range on %s parameter", p.Type)
		}
		if _, err := boundExpr(dt, bound); err != nil {
			return err
		}
	}

	if p.Default != nil {
		if _, err := defaultExpr(p, dt, ""); err != nil {
			return err
		}
	}
	return nil
}

// defaultText returns the textual form of a YAML default value.
func defaultText(v any) string {
	switch d := v.(type) {
	case bool:
		return strconv.FormatBool(d)
	case string:
		return d
	default:
		return fmt.Sprint(d)
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/specparse"
)

// DeriveParameterIndex produces the parameter index YAML from the loaded
// data models. Models keep the order they were loaded in (by name) and
// objects are listed by path.
func DeriveParameterIndex(models []*specparse.RawModel) (string, error) {
	var b strings.Builder

	b.WriteString("# Code generated by cwmp-objgen. DO NOT EDIT.\n")
	b.WriteString("\nmodels:\n")

	for _, m := range models {
		if m.Def.Version == "" {
			return "", fmt.Errorf("model %s has no version", m.Def.Name)
		}
		fmt.Fprintf(&b, "  %s:\n", m.Def.Name)
		fmt.Fprintf(&b, "    version: %q\n", m.Def.Version)
		fmt.Fprintf(&b, "    package: %s\n", m.Def.PackageName())
		b.WriteString("    objects:\n")
		for _, def := range m.Objects {
			writeObjectIndex(&b, def)
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func writeObjectIndex(b *strings.Builder, def *specparse.RawObjectDef) {
	fmt.Fprintf(b, "      %q:\n", def.Path)
	fmt.Fprintf(b, "        type: %s\n", def.TypeName())
	if def.IsTable() {
		b.WriteString("        table: true\n")
	}

	// Partition parameters into writable and read-only
	var writable, readOnly []specparse.RawParameterDef
	for _, p := range def.Parameters {
		if p.Access == "readWrite" {
			writable = append(writable, p)
		} else {
			readOnly = append(readOnly, p)
		}
	}

	if len(writable) > 0 || len(readOnly) > 0 {
		b.WriteString("        parameters:\n")
		if len(writable) > 0 {
			b.WriteString("          readWrite:\n")
			for _, p := range writable {
				fmt.Fprintf(b, "            - %s\n", formatParamEntry(p))
			}
		}
		if len(readOnly) > 0 {
			b.WriteString("          readOnly:\n")
			for _, p := range readOnly {
				fmt.Fprintf(b, "            - %s\n", formatParamEntry(p))
			}
		}
	}

	if len(def.Children) > 0 {
		names := make([]string, len(def.Children))
		for i, c := range def.Children {
			names[i] = c.Name
		}
		fmt.Fprintf(b, "        children: [%s]\n", strings.Join(names, ", "))
	}

	if len(def.Unique) > 0 {
		keys := make([]string, len(def.Unique))
		for i, k := range def.Unique {
			keys[i] = "[" + strings.Join(k, ", ") + "]"
		}
		fmt.Fprintf(b, "        unique: [%s]\n", strings.Join(keys, ", "))
	}
}

// formatParamEntry formats one parameter as a flow mapping.
func formatParamEntry(p specparse.RawParameterDef) string {
	s := fmt.Sprintf("{ name: %s, type: %s", p.Name, p.Type)
	if p.List {
		s += ", list: true"
	}
	if p.Review != "" {
		s += ", review: true"
	}
	return s + " }"
}

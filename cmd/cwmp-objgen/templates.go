package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"comment":     comment,
	"quote":       func(s string) string { return fmt.Sprintf("%q", s) },
	"stringSlice": stringSlice,
	"uniqueKeys":  uniqueKeys,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	enumsTmpl +
		objectStructTmpl +
		metadataTmpl +
		constructorTmpl +
		accessorsTmpl +
		childrenTmpl +
		registryTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// commentWidth is the maximum length of a generated comment line.
const commentWidth = 77

// comment wraps text into "// " prefixed lines.
func comment(text string) string {
	var lines []string
	line := "//"
	for _, word := range strings.Fields(text) {
		if line != "//" && len(line)+1+len(word) > commentWidth {
			lines = append(lines, line)
			line = "//"
		}
		line += " " + word
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

// stringSlice renders a []string literal.
func stringSlice(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

// uniqueKeys renders a [][]string literal.
func uniqueKeys(keys [][]string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strings.TrimPrefix(stringSlice(k), "[]string")
	}
	return "[][]string{" + strings.Join(parts, ", ") + "}"
}

// --- Template definitions ---

const enumsTmpl = `{{define "enums"}}
{{- range .Enums}}
{{- $type := .Type}}
// {{$type}} is an enumerated value of {{.Path}}.
type {{$type}} string

// {{$type}} values.
const (
{{- range .Values}}
{{.Const}} {{$type}} = {{quote .Value}}
{{- end}}
)

{{end}}
{{- end}}`

const objectStructTmpl = `{{define "objectStruct"}}
// {{.Type}} represents {{.Path}}.
{{- if .Description}}
//
{{comment .Description}}
{{- end}}
type {{.Type}} struct {
{{- range .Params}}
{{.Field}} {{.FieldType}} ` + "`" + `xml:"{{.Name}},omitempty" json:"{{.Name}},omitempty"` + "`" + `
{{- end}}
{{- range .Children}}
{{.Field}} {{if .Table}}[]{{end}}*{{.Type}} ` + "`" + `xml:"{{.Name}},omitempty" json:"{{.Name}},omitempty"` + "`" + `
{{- end}}
}

{{end}}`

const metadataTmpl = `{{define "metadata"}}
var {{.MetaVar}} = &model.ObjectMetadata{
Path: {{quote .Path}},
Name: {{quote .Name}},
Model: {{quote .Model}},
Access: {{.Access}},
{{- if .Description}}
Description: {{quote .Description}},
{{- end}}
{{- if .Params}}
Parameters: []*model.ParameterMetadata{
{{- range .Params}}
{
Name: {{quote .Name}},
Field: {{quote .Field}},
Type: {{.DataType}},
{{- if .List}}
List: true,
{{- end}}
Access: {{.Access}},
{{- if .Notify}}
Notify: {{.Notify}},
{{- end}}
{{- if .Unit}}
Unit: {{quote .Unit}},
{{- end}}
{{- if .MinLength}}
MinLength: {{.MinLength}},
{{- end}}
{{- if .MaxLength}}
MaxLength: {{.MaxLength}},
{{- end}}
{{- if .MinExpr}}
MinValue: {{.MinExpr}},
{{- end}}
{{- if .MaxExpr}}
MaxValue: {{.MaxExpr}},
{{- end}}
{{- if .MinItems}}
MinItems: {{.MinItems}},
{{- end}}
{{- if .MaxItems}}
MaxItems: {{.MaxItems}},
{{- end}}
{{- if .Enum}}
Enum: {{stringSlice .Enum}},
{{- end}}
{{- if .Default}}
Default: {{quote .Default}},
{{- end}}
{{- if .Review}}
Review: {{quote .Review}},
{{- end}}
{{- if .Description}}
Description: {{quote .Description}},
{{- end}}
},
{{- end}}
},
{{- end}}
{{- if .Children}}
Children: []*model.ChildMetadata{
{{- range .Children}}
{Name: {{quote .Name}}, Field: {{quote .Field}}, Path: {{quote .Path}}{{if .Table}}, Table: true{{end}}{{if .NumberOfEntries}}, NumberOfEntries: {{quote .NumberOfEntries}}{{end}}},
{{- end}}
},
{{- end}}
{{- if .Unique}}
Unique: {{uniqueKeys .Unique}},
{{- end}}
}

{{end}}`

const constructorTmpl = `{{define "constructor"}}
// New{{.Type}} returns a new {{.Type}} with schema defaults applied.
func New{{.Type}}() *{{.Type}} {
{{- if .Defaults}}
return &{{.Type}}{
{{- range .Defaults}}
{{.Field}}: {{.Expr}},
{{- end}}
}
{{- else}}
return &{{.Type}}{}
{{- end}}
}

// ObjectMetadata returns the schema description of {{.Type}}.
func (*{{.Type}}) ObjectMetadata() *model.ObjectMetadata {
return {{.MetaVar}}
}

{{end}}`

const accessorsTmpl = `{{define "accessors"}}
{{- $t := .Type}}
{{- $r := .Recv}}
{{- range .Params}}
{{- if eq .Kind "list"}}
// Get{{.Field}} returns {{.Field}}.
func ({{$r}} *{{$t}}) Get{{.Field}}() []{{.ElemType}} {
return {{$r}}.{{.Field}}
}

// Set{{.Field}} sets {{.Field}}.
func ({{$r}} *{{$t}}) Set{{.Field}}(v []{{.ElemType}}) {
{{$r}}.{{.Field}} = v
}

// With{{.Field}} sets {{.Field}} and returns the receiver.
func ({{$r}} *{{$t}}) With{{.Field}}(v ...{{.ElemType}}) *{{$t}} {
{{$r}}.{{.Field}} = v
return {{$r}}
}

{{else if eq .Kind "bytes"}}
// Get{{.Field}} returns {{.Field}} and whether it is set.
func ({{$r}} *{{$t}}) Get{{.Field}}() ({{.ElemType}}, bool) {
return {{$r}}.{{.Field}}, {{$r}}.{{.Field}} != nil
}

// Set{{.Field}} sets {{.Field}}.
func ({{$r}} *{{$t}}) Set{{.Field}}(v {{.ElemType}}) {
{{$r}}.{{.Field}} = v
}

// With{{.Field}} sets {{.Field}} and returns the receiver.
func ({{$r}} *{{$t}}) With{{.Field}}(v {{.ElemType}}) *{{$t}} {
{{$r}}.{{.Field}} = v
return {{$r}}
}

{{else}}
// Get{{.Field}} returns {{.Field}} and whether it is set.
func ({{$r}} *{{$t}}) Get{{.Field}}() ({{.ElemType}}, bool) {
return model.Get({{$r}}.{{.Field}})
}

// Set{{.Field}} sets {{.Field}}.
func ({{$r}} *{{$t}}) Set{{.Field}}(v {{.ElemType}}) {
{{$r}}.{{.Field}} = &v
}

// With{{.Field}} sets {{.Field}} and returns the receiver.
func ({{$r}} *{{$t}}) With{{.Field}}(v {{.ElemType}}) *{{$t}} {
{{$r}}.{{.Field}} = &v
return {{$r}}
}

{{end}}
{{- end}}
{{- end}}`

const childrenTmpl = `{{define "children"}}
{{- $t := .Type}}
{{- $r := .Recv}}
{{- range .Children}}
{{- if .Table}}
// Get{{.Field}} returns the {{.Name}} table. An absent table is initialised empty.
func ({{$r}} *{{$t}}) Get{{.Field}}() []*{{.Type}} {
if {{$r}}.{{.Field}} == nil {
{{$r}}.{{.Field}} = []*{{.Type}}{}
}
return {{$r}}.{{.Field}}
}

// Set{{.Field}} replaces the {{.Name}} table.
func ({{$r}} *{{$t}}) Set{{.Field}}(v []*{{.Type}}) {
{{$r}}.{{.Field}} = v
}

// Add{{.Singular}} appends an instance to the {{.Name}} table and returns the receiver.
func ({{$r}} *{{$t}}) Add{{.Singular}}(v *{{.Type}}) *{{$t}} {
{{$r}}.{{.Field}} = append({{$r}}.{{.Field}}, v)
return {{$r}}
}

{{else}}
// Get{{.Field}} returns {{.Field}}, creating it if absent.
func ({{$r}} *{{$t}}) Get{{.Field}}() *{{.Type}} {
if {{$r}}.{{.Field}} == nil {
{{$r}}.{{.Field}} = New{{.Type}}()
}
return {{$r}}.{{.Field}}
}

// Set{{.Field}} sets {{.Field}}.
func ({{$r}} *{{$t}}) Set{{.Field}}(v *{{.Type}}) {
{{$r}}.{{.Field}} = v
}

// With{{.Field}} sets {{.Field}} and returns the receiver.
func ({{$r}} *{{$t}}) With{{.Field}}(v *{{.Type}}) *{{$t}} {
{{$r}}.{{.Field}} = v
return {{$r}}
}

{{end}}
{{- end}}
{{- end}}`

const registryTmpl = `{{define "registry"}}
// Code generated by cwmp-objgen. DO NOT EDIT.

package {{.Package}}

import "github.com/cwmp-model/cwmp-go/pkg/model"

// Model is the data model implemented by this package.
const Model = {{quote .Model}}

// Version is the data model version the types were generated from.
const Version = {{quote .Version}}

func init() {
{{- range .Objects}}
model.Register({{.MetaVar}}, func() model.Object { return New{{.Type}}() })
{{- end}}
}
{{end}}`

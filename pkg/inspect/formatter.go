package inspect

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes type, access and notification information.
	ShowMetadata bool

	// ShowDescriptions includes schema descriptions.
	ShowDescriptions bool

	// IndentWidth is the number of spaces per indent level.
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatValue formats a parameter value for display. Strings are quoted;
// numbers carry their unit.
func (f *Formatter) FormatValue(pv ParameterValue) string {
	p := pv.Meta
	if p == nil {
		return pv.Value
	}
	switch {
	case p.List:
		return "[" + pv.Value + "]"
	case p.Type.IsInteger():
		if p.Unit != "" {
			return pv.Value + " " + p.Unit
		}
		return pv.Value
	case p.Type == model.DataTypeBoolean:
		return pv.Value
	default:
		return fmt.Sprintf("%q", pv.Value)
	}
}

// FormatParameters formats parameter values as an aligned table.
func (f *Formatter) FormatParameters(values []ParameterValue) string {
	if len(values) == 0 {
		return "  (no parameters)\n"
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	for _, pv := range values {
		fmt.Fprintf(tw, "  %s\t= %s", pv.Name, f.FormatValue(pv))
		if f.ShowMetadata && pv.Meta != nil {
			fmt.Fprintf(tw, "\t(%s)", pv.Meta.Signature())
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
	return sb.String()
}

// FormatMetadata describes an object type: its parameters with types,
// access, units, defaults and enumerations, and its children.
func (f *Formatter) FormatMetadata(meta *model.ObjectMetadata) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s [%s] %s", meta.Path, meta.Model, FormatAccess(meta.Access))
	if meta.IsTable() {
		header += " table"
	}
	sb.WriteString(header + "\n")
	if f.ShowDescriptions && meta.Description != "" {
		sb.WriteString(f.Indent(1, meta.Description) + "\n")
	}
	for _, u := range meta.Unique {
		sb.WriteString(f.Indent(1, "unique: "+strings.Join(u, ", ")) + "\n")
	}

	if len(meta.Parameters) > 0 {
		sb.WriteString(f.Indent(1, "Parameters:") + "\n")
		tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
		for _, p := range meta.Parameters {
			fmt.Fprintf(tw, "%s\t%s", f.Indent(2, p.Name), p.Signature())
			if f.ShowMetadata {
				fmt.Fprintf(tw, "\t%s", parameterDetails(p))
			}
			fmt.Fprintln(tw)
			if f.ShowDescriptions && p.Description != "" {
				fmt.Fprintf(tw, "%s\n", f.Indent(3, p.Description))
			}
		}
		_ = tw.Flush()
	}

	if len(meta.Children) > 0 {
		sb.WriteString(f.Indent(1, "Children:") + "\n")
		for _, c := range meta.Children {
			line := c.Name
			if c.Table {
				line += ".{i}"
			}
			line += " -> " + c.Path
			if c.NumberOfEntries != "" {
				line += " (" + c.NumberOfEntries + ")"
			}
			sb.WriteString(f.Indent(2, line) + "\n")
		}
	}
	return sb.String()
}

func parameterDetails(p *model.ParameterMetadata) string {
	var parts []string
	if p.Unit != "" {
		parts = append(parts, "unit="+p.Unit)
	}
	if p.MinValue != nil || p.MaxValue != nil {
		parts = append(parts, fmt.Sprintf("range=[%s..%s]", boundText(p.MinValue), boundText(p.MaxValue)))
	}
	if p.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("minLength=%d", p.MinLength))
	}
	if p.MinItems > 0 || p.MaxItems > 0 {
		parts = append(parts, fmt.Sprintf("items=[%d..%s]", p.MinItems, boundText(nonZero(p.MaxItems))))
	}
	if p.Notify != model.NotifyNone {
		parts = append(parts, "notify="+p.Notify.String())
	}
	if p.Default != "" {
		parts = append(parts, "default="+p.Default)
	}
	if len(p.Enum) > 0 {
		parts = append(parts, "enum="+strings.Join(p.Enum, "|"))
	}
	if p.Review != "" {
		parts = append(parts, "REVIEW")
	}
	return strings.Join(parts, " ")
}

func nonZero(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func boundText(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// FormatTree renders the present objects and parameters of a tree, one
// object per line followed by its parameters, indented by depth.
func (f *Formatter) FormatTree(obj model.Object, indices ...int) string {
	var sb strings.Builder
	base := len(model.Segments(model.Resolve(obj.ObjectMetadata().Path, indices...)))

	_ = WalkObjects(obj, indices, func(n Node) error {
		depth := len(model.Segments(n.Path)) - base
		sb.WriteString(f.Indent(depth, n.Path+".") + "\n")
		for _, p := range n.Meta().Parameters {
			text, ok := Text(n.Object, p)
			if !ok {
				continue
			}
			line := p.Name + " = " + f.FormatValue(ParameterValue{Value: text, Meta: p})
			if f.ShowMetadata {
				line += " (" + p.Signature() + ")"
			}
			sb.WriteString(f.Indent(depth+1, line) + "\n")
		}
		return nil
	})
	return sb.String()
}

// FormatAccess formats an access level for display.
func FormatAccess(access model.Access) string {
	switch access {
	case model.AccessReadOnly:
		return "read-only"
	case model.AccessReadWrite:
		return "read-write"
	default:
		return fmt.Sprintf("access(%d)", access)
	}
}

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/objects"
)

// ObjectsCmd lists registered object types.
type ObjectsCmd struct {
	Prefix string `arg:"" optional:"" help:"Only list objects at or below this path."`
	Model  string `help:"Only list objects of this data model, e.g. TR-181."`
	Roots  bool   `help:"Only list objects no other object contains."`
	Models bool   `help:"List the compiled data models instead."`
}

// Run prints one line per object type.
func (c *ObjectsCmd) Run(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	if c.Models {
		fmt.Fprintln(tw, "MODEL\tVERSION\tOBJECTS")
		for _, m := range objects.Models() {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", m.Name, m.Version, len(objects.Objects(m.Name)))
		}
		return nil
	}

	var list []*model.ObjectMetadata
	switch {
	case c.Roots:
		list = objects.Roots(c.Model)
	default:
		list = objects.Find(c.Prefix)
	}

	fmt.Fprintln(tw, "PATH\tMODEL\tACCESS\tPARAMETERS\tCHILDREN")
	n := 0
	for _, m := range list {
		if c.Model != "" && !strings.EqualFold(m.Model, c.Model) {
			continue
		}
		if c.Roots && c.Prefix != "" && !strings.HasPrefix(m.Path, model.TemplateOf(c.Prefix)) {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", m.Path, m.Model, inspect.FormatAccess(m.Access), len(m.Parameters), len(m.Children))
		n++
	}
	if n == 0 {
		return fmt.Errorf("no object types match %q", c.Prefix)
	}
	return nil
}

// DescribeCmd prints the metadata of one object type.
type DescribeCmd struct {
	Path         string `arg:"" help:"Object path (template or concrete)."`
	Descriptions bool   `short:"d" help:"Include descriptions."`
	Brief        bool   `help:"Omit units, ranges, defaults and enumerations."`
}

// Run prints the object's parameters and children.
func (c *DescribeCmd) Run(out io.Writer) error {
	meta, ok := model.Lookup(strings.TrimSuffix(c.Path, "."))
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrUnknownObject, c.Path)
	}
	f := inspect.NewFormatter()
	f.ShowDescriptions = c.Descriptions
	f.ShowMetadata = !c.Brief
	_, err := io.WriteString(out, f.FormatMetadata(meta))
	return err
}

package inspect

import (
	"sort"
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// canonicalName returns the schema spelling of a parameter or child name,
// matched case-insensitively. Unknown names are returned unchanged.
func canonicalName(meta *model.ObjectMetadata, name string) string {
	if _, ok := meta.Parameter(name); ok {
		return name
	}
	if _, ok := meta.Child(name); ok {
		return name
	}
	for _, p := range meta.Parameters {
		if strings.EqualFold(p.Name, name) {
			return p.Name
		}
	}
	for _, c := range meta.Children {
		if strings.EqualFold(c.Name, name) {
			return c.Name
		}
	}
	return name
}

// Names returns the resolved paths of every parameter of every present
// object, whether set or not, plus every child object path with a
// trailing dot. The list is sorted.
func (i *Inspector) Names() []string {
	var out []string
	_ = WalkObjects(i.root, i.indices, func(n Node) error {
		meta := n.Meta()
		for _, p := range meta.Parameters {
			out = append(out, model.Join(n.Path, p.Name))
		}
		for _, c := range meta.Children {
			out = append(out, model.Join(n.Path, c.Name)+".")
		}
		return nil
	})
	sort.Strings(out)
	return out
}

// Complete returns the names that start with prefix, for shell completion.
// Relative prefixes are matched against names relative to the root.
func (i *Inspector) Complete(prefix string) []string {
	root := i.Path() + "."
	var out []string
	for _, name := range i.Names() {
		switch {
		case strings.HasPrefix(name, prefix):
			out = append(out, name)
		case strings.HasPrefix(strings.TrimPrefix(name, root), prefix):
			out = append(out, strings.TrimPrefix(name, root))
		}
	}
	return out
}

// Package objects links every generated data-model package into the
// metadata registry and answers questions across them.
//
// Importing this package is enough to make model.Lookup and model.New
// resolve any object path of the supported data models.
package objects

//go:generate go run ../../cmd/cwmp-objgen -objects ../../docs/objects -output . -manifest ../../docs/parameter-index.yaml

import (
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr098"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr104"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr135"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr181"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr196"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr262"
)

// ModelInfo identifies a generated data model.
type ModelInfo struct {
	Name    string
	Version string
}

var models = []ModelInfo{
	{tr098.Model, tr098.Version},
	{tr104.Model, tr104.Version},
	{tr135.Model, tr135.Version},
	{tr181.Model, tr181.Version},
	{tr196.Model, tr196.Version},
	{tr262.Model, tr262.Version},
}

// Models returns the data models compiled into the binary, sorted by name.
func Models() []ModelInfo {
	out := make([]ModelInfo, len(models))
	copy(out, models)
	return out
}

// Objects returns the registered object types of a data model, sorted by
// path. An empty name selects every model.
func Objects(modelName string) []*model.ObjectMetadata {
	var out []*model.ObjectMetadata
	for _, m := range model.Registered() {
		if modelName == "" || strings.EqualFold(m.Model, modelName) {
			out = append(out, m)
		}
	}
	return out
}

// Find returns the object types whose path equals prefix or lies below
// it. Concrete instance numbers in prefix match placeholders.
func Find(prefix string) []*model.ObjectMetadata {
	prefix = model.TemplateOf(prefix)
	var out []*model.ObjectMetadata
	for _, m := range model.Registered() {
		if prefix == "" || m.Path == prefix || strings.HasPrefix(m.Path, prefix+".") {
			out = append(out, m)
		}
	}
	return out
}

// Roots returns the registered object types that no other registered type
// holds as a child, sorted by path. These are the entry points for
// documents describing a whole subtree.
func Roots(modelName string) []*model.ObjectMetadata {
	all := Objects(modelName)
	held := make(map[string]bool)
	for _, m := range all {
		for _, c := range m.Children {
			held[c.Path] = true
		}
	}

	var out []*model.ObjectMetadata
	for _, m := range all {
		if !held[m.Path] {
			out = append(out, m)
		}
	}
	return out
}

package specparse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ModelFileName is the per-directory data model descriptor.
const ModelFileName = "model.yaml"

// RawModelDef describes one data model (one directory of object definitions).
type RawModelDef struct {
	Name        string `yaml:"name"`    // "TR-181"
	Package     string `yaml:"package"` // Optional: Go package name, defaults to PackageName(Name)
	Version     string `yaml:"version"` // data model version, e.g. "2.11"
	Root        string `yaml:"root"`    // root object, e.g. "Device" or "VoiceService.{i}"
	Description string `yaml:"description"`
}

// RawModel is a data model together with its object definitions.
type RawModel struct {
	Def     *RawModelDef
	Dir     string
	Objects []*RawObjectDef
}

// PackageName returns the Go package name of the model.
func (m *RawModelDef) PackageName() string {
	if m.Package != "" {
		return m.Package
	}
	return PackageName(m.Name)
}

// ParseModelDef parses a data model descriptor from YAML bytes.
func ParseModelDef(data []byte) (*RawModelDef, error) {
	var def RawModelDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing model def: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("model definition missing name")
	}
	return &def, nil
}

// LoadModelDir loads model.yaml and every other *.yaml file in dir as an
// object definition. Objects are sorted by path.
func LoadModelDir(dir string) (*RawModel, error) {
	data, err := os.ReadFile(filepath.Join(dir, ModelFileName))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ModelFileName, err)
	}
	def, err := ParseModelDef(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}

	m := &RawModel{Def: def, Dir: dir}
	for _, f := range files {
		if filepath.Base(f) == ModelFileName {
			continue
		}
		obj, err := LoadObjectDef(f)
		if err != nil {
			return nil, err
		}
		m.Objects = append(m.Objects, obj)
	}

	sort.Slice(m.Objects, func(i, j int) bool {
		return m.Objects[i].Path < m.Objects[j].Path
	})
	return m, nil
}

// LoadModels loads every subdirectory of base that holds a model.yaml.
// Models are returned sorted by name.
func LoadModels(base string) ([]*RawModel, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", base, err)
	}

	var models []*RawModel
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(base, e.Name())
		if _, err := os.Stat(filepath.Join(dir, ModelFileName)); err != nil {
			continue
		}
		m, err := LoadModelDir(dir)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].Def.Name < models[j].Def.Name
	})
	return models, nil
}

// Object returns the object definition with the given path.
func (m *RawModel) Object(path string) (*RawObjectDef, bool) {
	for _, o := range m.Objects {
		if o.Path == path {
			return o, true
		}
	}
	return nil, false
}

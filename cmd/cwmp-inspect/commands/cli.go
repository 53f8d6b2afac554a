// Package commands implements the cwmp-inspect CLI commands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/wire"

	// Register every generated data model.
	_ "github.com/cwmp-model/cwmp-go/pkg/objects"
)

// CLI is the command tree. Global flags apply to every command.
type CLI struct {
	Config   kong.ConfigFlag `help:"Load flags from a YAML configuration file."`
	LogLevel string          `help:"Log level." enum:"debug,info,warn,error" default:"info" env:"CWMP_LOG_LEVEL"`

	Objects  ObjectsCmd  `cmd:"" help:"List registered object types."`
	Describe DescribeCmd `cmd:"" help:"Describe an object type."`
	Template TemplateCmd `cmd:"" help:"Write a sample document for an object type."`
	Convert  ConvertCmd  `cmd:"" help:"Convert a document between formats."`
	Flatten  FlattenCmd  `cmd:"" help:"Print a document as CWMP name/value pairs."`
	Validate ValidateCmd `cmd:"" help:"Check a document against its schema constraints."`
	Shell    ShellCmd    `cmd:"" help:"Edit a document interactively."`
	Log      LogCmd      `cmd:"" help:"View a change log."`
}

// NewLogger returns a text logger writing to w at the named level.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// Document names a file holding one encoded object.
type Document struct {
	File   string `arg:"" name:"file" help:"Document file." type:"existingfile"`
	Object string `help:"Object path of the document root, e.g. Device.DNS.Client or Device.Ethernet.Interface.2." required:""`
	Format string `help:"Document format (xml, cbor, json). Defaults to the file extension."`
}

// load decodes the document and returns its root and the instance numbers
// of the root path.
func (d *Document) load() (model.Object, []int, error) {
	f, err := resolveFormat(d.Format, d.File)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(d.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}
	obj, err := wire.Decode(f, d.Object, data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", d.File, err)
	}
	return obj, rootIndices(d.Object), nil
}

// save re-encodes obj in the document's own format.
func (d *Document) save(obj model.Object) error {
	f, err := resolveFormat(d.Format, d.File)
	if err != nil {
		return err
	}
	return writeObject(d.File, f, obj)
}

func resolveFormat(name, file string) (wire.Format, error) {
	if name != "" {
		return wire.ParseFormat(name)
	}
	return wire.FormatOf(file)
}

// rootIndices returns the instance numbers of an object path.
// Placeholders left in the path count as instance 1.
func rootIndices(path string) []int {
	path = strings.TrimSuffix(path, ".")
	indices, err := model.Indices(model.TemplateOf(path), path)
	if err != nil {
		return nil
	}
	for i, n := range indices {
		if n == 0 {
			indices[i] = 1
		}
	}
	return indices
}

// writeObject encodes obj to file, or to stdout when file is empty or "-".
func writeObject(file string, f wire.Format, obj model.Object) error {
	if file == "" || file == "-" {
		return wire.Encode(os.Stdout, f, obj)
	}
	out, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := wire.Encode(out, f, obj); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/validate"
	"github.com/cwmp-model/cwmp-go/pkg/wire"
)

// ErrInvalidDocument is returned by validate when violations were found.
var ErrInvalidDocument = errors.New("document has violations")

// TemplateCmd writes a sample document for an object type.
type TemplateCmd struct {
	Path     string `arg:"" help:"Object path (template or concrete)."`
	Format   string `short:"f" help:"Output format (xml, cbor, json)." default:"xml"`
	Output   string `short:"o" help:"Output file (default: stdout)." type:"path"`
	Defaults bool   `help:"Only apply schema defaults instead of filling every parameter."`
}

// Run encodes a new object, populated with sample values unless only
// defaults are requested.
func (c *TemplateCmd) Run(logger *slog.Logger, out io.Writer) error {
	f, err := wire.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	obj, err := model.New(strings.TrimSuffix(c.Path, "."))
	if err != nil {
		return err
	}
	if !c.Defaults {
		if err := inspect.Populate(obj); err != nil {
			return fmt.Errorf("failed to populate %s: %w", c.Path, err)
		}
	}
	logger.Debug("template", "object", obj.ObjectMetadata().Path, "format", f)

	if c.Output == "" || c.Output == "-" {
		return wire.Encode(out, f, obj)
	}
	return writeObject(c.Output, f, obj)
}

// ConvertCmd re-encodes a document in another format.
type ConvertCmd struct {
	Document `embed:""`
	To     string `help:"Target format (xml, cbor, json)." required:""`
	Output string `short:"o" help:"Output file (default: stdout)." type:"path"`
}

// Run decodes the document and encodes it in the target format.
func (c *ConvertCmd) Run(logger *slog.Logger, out io.Writer) error {
	to, err := wire.ParseFormat(c.To)
	if err != nil {
		return err
	}
	obj, _, err := c.load()
	if err != nil {
		return err
	}
	logger.Debug("convert", "file", c.File, "object", obj.ObjectMetadata().Path, "to", to)

	if c.Output == "" || c.Output == "-" {
		return wire.Encode(out, to, obj)
	}
	return writeObject(c.Output, to, obj)
}

// FlattenCmd prints every present parameter of a document.
type FlattenCmd struct {
	Document `embed:""`
	JSON     bool `help:"Print a JSON array of name/value/type triples."`
	Metadata bool `short:"m" help:"Show type and access of each parameter."`
}

// Run prints the parameter values in schema order.
func (c *FlattenCmd) Run(out io.Writer) error {
	obj, indices, err := c.load()
	if err != nil {
		return err
	}
	values := inspect.Flatten(obj, indices...)

	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, pv := range values {
		if c.Metadata {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", pv.Name, pv.Value, pv.Meta.Signature())
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", pv.Name, pv.Value)
		}
	}
	return tw.Flush()
}

// ValidateCmd checks a document against its schema constraints.
type ValidateCmd struct {
	Document `embed:""`
	Before string `help:"Earlier version of the document; read-only parameters that changed are reported." type:"existingfile"`
	JSON   bool   `help:"Print the report as JSON."`
}

// Run prints the violations and fails if there are any.
func (c *ValidateCmd) Run(logger *slog.Logger, out io.Writer) error {
	obj, indices, err := c.load()
	if err != nil {
		return err
	}
	report := validate.Validate(obj, indices...)

	if c.Before != "" {
		prev := c.Document
		prev.File = c.Before
		before, _, err := prev.load()
		if err != nil {
			return err
		}
		report.Violations = append(report.Violations, validate.CheckUpdate(before, obj, indices...).Violations...)
	}

	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printReport(out, report)
	}

	logger.Info("validated", "file", c.File, "object", obj.ObjectMetadata().Path, "violations", len(report.Violations))
	if !report.OK() {
		return fmt.Errorf("%w: %d", ErrInvalidDocument, len(report.Violations))
	}
	return nil
}

func printReport(out io.Writer, report *validate.Report) {
	if report.OK() {
		fmt.Fprintln(out, "OK")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, v := range report.Violations {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Code, v.Path, v.Message)
	}
	_ = tw.Flush()
}

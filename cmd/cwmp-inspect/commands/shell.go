package commands

import (
	"fmt"
	"log/slog"

	"github.com/cwmp-model/cwmp-go/cmd/cwmp-inspect/interactive"
	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/log"
)

// ShellCmd edits a document in a readline session.
type ShellCmd struct {
	Document `embed:""`
	Log      string `help:"Append every change to this change log (.clog)." type:"path"`
}

// Run loads the document and starts the shell. save writes the document
// back in its own format.
func (c *ShellCmd) Run(logger *slog.Logger) error {
	obj, indices, err := c.load()
	if err != nil {
		return err
	}

	insp := inspect.NewInspector(obj, indices...)
	loggers := []log.Logger{log.NewSlogAdapter(logger)}
	if c.Log != "" {
		fl, err := log.NewFileLogger(c.Log)
		if err != nil {
			return fmt.Errorf("failed to open change log: %w", err)
		}
		defer func() {
			if err := fl.Err(); err != nil {
				logger.Warn("change log incomplete", "file", c.Log, "error", err)
			}
			if err := fl.Close(); err != nil {
				logger.Warn("failed to close change log", "file", c.Log, "error", err)
			}
		}()
		loggers = append(loggers, fl)
	}
	insp.SetLogger(log.NewMultiLogger(loggers...))
	insp.Log(log.Event{Kind: log.KindLoad, Path: insp.Path(), Object: obj.ObjectMetadata().Path, Message: c.File})

	sh, err := interactive.New(insp, func() error {
		if err := c.save(obj); err != nil {
			return err
		}
		insp.Log(log.Event{Kind: log.KindSave, Path: insp.Path(), Object: obj.ObjectMetadata().Path, Message: c.File})
		return nil
	})
	if err != nil {
		return err
	}
	return sh.Run()
}

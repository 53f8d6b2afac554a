// Command cwmp-objgen generates Go entity types from the YAML object
// definitions under docs/objects/.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/cwmp-model/cwmp-go/pkg/specparse"
)

func main() {
	objectsDir := flag.String("objects", "", "Base directory for object definitions (docs/objects/), one subdirectory per data model")
	outputDir := flag.String("output", "", "Output root; each model is generated into <output>/<package>/")
	manifestPath := flag.String("manifest", "", "Output path for the parameter index")
	flag.Parse()

	if *objectsDir == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: cwmp-objgen -objects <dir> -output <dir> [-manifest <path>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger, *objectsDir, *outputDir, *manifestPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, objectsDir, outputDir, manifestPath string) error {
	models, err := specparse.LoadModels(objectsDir)
	if err != nil {
		return fmt.Errorf("loading object definitions: %w", err)
	}
	if len(models) == 0 {
		return fmt.Errorf("no data models found in %s", objectsDir)
	}

	for _, m := range models {
		notes, err := CheckModel(m)
		if err != nil {
			return fmt.Errorf("checking %s: %w", m.Def.Name, err)
		}
		// Review notes are kept verbatim in the metadata; they only need
		// a human decision.
		for _, n := range notes {
			logger.Warn("schema review", "model", m.Def.Name, "parameter", n.Path, "note", n.Note)
		}

		pkgDir := filepath.Join(outputDir, m.Def.PackageName())
		if err := os.MkdirAll(pkgDir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}

		for _, def := range m.Objects {
			code, err := GenerateObject(m, def)
			if err != nil {
				return fmt.Errorf("generating %s: %w", def.Path, err)
			}

			outFileName := specparse.ObjectFileName(m.Def.Root, def.Path) + "_gen.go"
			outPath := filepath.Join(pkgDir, outFileName)
			if err := writeFormatted(outPath, code); err != nil {
				return fmt.Errorf("writing %s: %w", outFileName, err)
			}
			fmt.Printf("  generated %s\n", outPath)
		}

		code, err := GenerateRegistry(m)
		if err != nil {
			return fmt.Errorf("generating registry for %s: %w", m.Def.Name, err)
		}
		outPath := filepath.Join(pkgDir, "registry_gen.go")
		if err := writeFormatted(outPath, code); err != nil {
			return fmt.Errorf("writing registry_gen.go: %w", err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}

	if manifestPath != "" {
		manifest, err := DeriveParameterIndex(models)
		if err != nil {
			return fmt.Errorf("deriving parameter index: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(manifestPath), 0o755); err != nil {
			return fmt.Errorf("creating manifest dir: %w", err)
		}
		if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
			return fmt.Errorf("writing parameter index: %w", err)
		}
		fmt.Printf("  generated %s\n", manifestPath)
	}

	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}

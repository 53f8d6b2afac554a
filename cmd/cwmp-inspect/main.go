// Command cwmp-inspect explores the generated CWMP data-model objects and
// the documents and change logs built from them.
//
// Usage:
//
//	cwmp-inspect <command> [flags]
//
// Commands:
//
//	objects   List registered object types
//	describe  Describe an object type
//	template  Write a sample document for an object type
//	convert   Convert a document between XML, CBOR and JSON
//	flatten   Print a document as CWMP name/value pairs
//	validate  Check a document against its schema constraints
//	shell     Edit a document interactively
//	log       View a change log (.clog)
//
// Examples:
//
//	# Describe the DNS server table
//	cwmp-inspect describe Device.DNS.Client.Server.{i}
//
//	# Produce a populated sample and convert it to CBOR
//	cwmp-inspect template FAP.PerfMgmt -o perf.xml
//	cwmp-inspect convert perf.xml --object FAP.PerfMgmt --to cbor -o perf.cbor
//
//	# Edit a document and record the changes
//	cwmp-inspect shell perf.xml --object FAP.PerfMgmt --log perf.clog
//	cwmp-inspect log perf.clog --kind value
//
// Flags may also be given in a YAML file passed with --config or found at
// ./cwmp-inspect.yaml or ~/.config/cwmp-inspect/config.yaml.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/cwmp-model/cwmp-go/cmd/cwmp-inspect/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("cwmp-inspect"),
		kong.Description("Inspect CWMP data-model objects, documents and change logs"),
		kong.UsageOnError(),
		kong.Configuration(kongyaml.Loader, "./cwmp-inspect.yaml", "~/.config/cwmp-inspect/config.yaml"),
	)

	ctx.Bind(commands.NewLogger(cli.LogLevel, os.Stderr))
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

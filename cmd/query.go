package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	json "github.com/goccy/go-json"
	"github.com/google/subcommands"
)

type queryCmd struct {
	source string
}

func (*queryCmd) Name() string { return "query" }
func (*queryCmd) Synopsis() string {
	return "run a JSONPath expression against a raw dataset file"
}
func (*queryCmd) Usage() string {
	return `veedor query [-src legisladores|funcionarios] <jsonpath>

  Evaluates a JSONPath expression against one of the raw dataset files,
  before any reconciliation, and prints the result as JSON. Useful to
  inspect what the scraper actually produced.

Usage Examples:
# All CUITs in the legislators file.
$ veedor query '$.data[*].cuit'

# The inflation index carried by the officials file.
$ veedor query -src funcionarios '$.meta.indice_inflacion'

`
}

func (p *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.source, "src", "legisladores", "Dataset file to query (legisladores or funcionarios).")
}

func (p *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	var filename string
	switch p.source {
	case "legisladores":
		filename = *legislatorsFile
	case "funcionarios":
		filename = *officialsFile
	default:
		fmt.Fprintf(os.Stderr, "Error: -src must be legisladores or funcionarios, got %q\n", p.source)
		return subcommands.ExitUsageError
	}

	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	var jobj any
	if err := json.NewDecoder(file).Decode(&jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not decode %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	path := f.Arg(0)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not evaluate %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jval); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not encode result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/google/subcommands"
	"github.com/mrassano/veedor/indec"
)

type indecCmd struct {
	inputFile string
}

func (*indecCmd) Name() string { return "indec" }
func (*indecCmd) Synopsis() string {
	return "convert an INDEC series CSV into a dataset index table"
}
func (*indecCmd) Usage() string {
	return `veedor indec [-f <file.csv>]

  Parses a monthly series exported from INDEC (label and series id header
  lines, then one "YYYY-MM;value" row per month) and prints it as the JSON
  index table the dataset files embed under meta.indice_inflacion or
  meta.indice_dolar. Reads stdin when -f is not given.

`
}

func (p *indecCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.inputFile, "f", "", "CSV file to convert. Reads stdin by default.")
}

func (p *indecCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if p.inputFile != "" {
		f, err := os.Open(p.inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open %q: %v\n", p.inputFile, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		r = f
	}

	series, err := indec.ParseSeries(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not parse series: %v\n", err)
		return subcommands.ExitFailure
	}
	if *Verbose {
		fmt.Fprintf(os.Stderr, "series %q (%s), %d months\n", series.Label, series.IDBank, series.Values.Len())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(series.Values); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not encode table: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

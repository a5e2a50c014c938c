// Package cmd implements the CLI application to explore the officials
// debt registry.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	veedor "github.com/mrassano/veedor"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "registry")
	c.Register(&showCmd{}, "registry")

	c.Register(&seriesCmd{}, "series")
	c.Register(&milestonesCmd{}, "series")
	c.Register(&exportCmd{}, "series")

	c.Register(&shareCmd{}, "sharing")

	c.Register(&queryCmd{}, "tools")
	c.Register(&indecCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
	c.Register(&AssistCmd{}, "tools")
}

// CommandNames lists the built-in subcommand names, so a main package can
// decide when to fall back to an external extension.
func CommandNames() []string {
	return []string{
		"list", "show",
		"series", "milestones", "export",
		"share",
		"query", "indec", "topic", "assist",
		"help", "flags", "commands",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var legislatorsFile = flag.String("legisladores", "legisladores.json", "Path to the legislators dataset file (JSON)")
var officialsFile = flag.String("funcionarios", "funcionarios.json", "Path to the executive officials dataset file (JSON)")
var Verbose = flag.Bool("v", false, "Verbose output")

// openDocument decodes one registry document. A missing file is not an
// error: the dataset loader accepts a nil document.
func openDocument(filename string) (*veedor.Document, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, dataset file %q does not exist, skipping it", filename)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return veedor.DecodeDocument(f)
}

// OpenDataset is the central function to load and reconcile both registry
// documents from the app global flags.
func OpenDataset() (*veedor.Dataset, error) {
	legislators, err := openDocument(*legislatorsFile)
	if err != nil {
		return nil, err
	}
	officials, err := openDocument(*officialsFile)
	if err != nil {
		return nil, err
	}
	return veedor.LoadDataset(legislators, officials)
}

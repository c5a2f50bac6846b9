// Command fsmdump loads a declarative engine definition from a YAML file,
// validates it, and prints either its Graphviz DOT rendering or its
// canonical JSON form.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/comalice/fsmkit/internal/config"
	"github.com/comalice/fsmkit/internal/production"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-format dot|json] FILE.yaml\n", os.Args[0])
	}
	format := flag.String("format", "dot", "output format: dot or json")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", args[0], err)
		os.Exit(1)
	}

	def, err := config.Load(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", args[0], err)
		os.Exit(1)
	}

	visualizer := production.Visualizer{}
	switch *format {
	case "dot":
		fmt.Print(visualizer.ExportDOT(def))
	case "json":
		out, err := visualizer.ExportJSON(def)
		if err != nil {
			fmt.Fprintf(os.Stderr, "export json: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(1)
	}
}

// Command convert rewrites a correlation matrix CSV as the JSON relationship
// document the viewer also accepts.
//
// Usage:
//
//	go run ./cmd/convert -in correl.csv -out correl.json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pthm-cable/constellation/relations"
)

func main() {
	in := flag.String("in", "correl.csv", "Input relationship file (.csv matrix or .json)")
	out := flag.String("out", "", "Output JSON path (empty = stdout)")
	flag.Parse()

	table, err := relations.LoadFile(*in)
	if err != nil {
		log.Fatalf("failed to load %s: %v", *in, err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	if err := relations.WriteJSON(w, table); err != nil {
		log.Fatalf("failed to write JSON: %v", err)
	}

	if *out != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d labels, %d pairs to %s\n", len(table.Nodes()), len(table.Pairs()), *out)
	}
}

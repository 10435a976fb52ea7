// Command brewin runs Brewin programs encoded as JSON-described ASTs
// (spec §6's node contract has a concrete JSON wire shape here, since the
// source-text parser producing it is out of scope for this repository).
package main

import (
	"fmt"
	"os"

	"github.com/anushkanayak15/brewin-go/cmd/brewin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

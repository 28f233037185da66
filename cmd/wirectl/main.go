// Command wirectl lists the wire types of each guest schema and decodes
// wire values out of guest memory, either from a raw memory dump or from
// a live guest module.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

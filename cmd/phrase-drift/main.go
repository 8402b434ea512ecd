// Command phrase-drift animates words drifting through a rotating cube and
// assembles the ones crossing its center into phrases.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command vikor ranks alternatives from a YAML decision file using the
// VIKOR compromise method.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

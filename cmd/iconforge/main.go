// Command iconforge generates web app icons from a logo and slices a 2x2
// composite image into four named tiles.
package main

import (
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// cubesolver - CLI for scrambling and solving 3x3 Rubik's cubes.
package main

import (
	"github.com/SeamusWaldron/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}

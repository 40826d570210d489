// celestial prints the twin zigzag tapestry with its title and glow.
package main

import (
	"os"

	"github.com/drake/tapestry/internal/cli"
)

func main() {
	os.Exit(cli.RenderBuiltin("celestial"))
}

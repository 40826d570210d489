// ringtoken prints a ring bouncing through a gradient aura.
package main

import (
	"os"

	"github.com/drake/tapestry/internal/cli"
)

func main() {
	os.Exit(cli.RenderBuiltin("ringtoken"))
}

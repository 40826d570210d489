// braid prints two crossing star paths over a banded background.
package main

import (
	"os"

	"github.com/drake/tapestry/internal/cli"
)

func main() {
	os.Exit(cli.RenderBuiltin("braid"))
}

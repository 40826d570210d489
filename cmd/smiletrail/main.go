// smiletrail prints a smiley walking up and down a navy canvas.
package main

import (
	"os"

	"github.com/drake/tapestry/internal/cli"
)

func main() {
	os.Exit(cli.RenderBuiltin("smiletrail"))
}

// tapestry renders any built-in or scripted tapestry variant.
package main

import (
	"os"

	"github.com/drake/tapestry/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}

// Command otto runs tasks declared in an ottofile.
package main

import (
	"os"

	"github.com/scottidler/otto/internal/cmd"
)

var version = "dev"

func main() {
	os.Exit(cmd.Execute(version, os.Args[1:]))
}

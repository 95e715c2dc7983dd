package main

import (
	"fmt"
	"os"

	"github.com/syssam/exposedgen/internal/cli"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := cli.RootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

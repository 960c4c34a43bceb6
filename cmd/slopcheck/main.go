package main

import (
	"os"

	"github.com/dshills/slopcheck/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}

package main

import (
	"os"

	"github.com/ctxkit/ctxkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

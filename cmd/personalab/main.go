package main

import (
	"os"

	"github.com/kapu/pachinko-persona-lab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/arrstack/cfpattern/cmd/cfpattern/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/logtt/logtt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

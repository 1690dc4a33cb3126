package main

import (
	"os"

	"github.com/neon-ai/neon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

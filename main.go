package main

import (
	"os"

	"github.com/aidu/english/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

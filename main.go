package main

import (
	"os"

	"github.com/careerstu/careerstu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

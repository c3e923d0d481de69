package main

import (
	"os"

	"github.com/govalues/riemann/cmd/riemann/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

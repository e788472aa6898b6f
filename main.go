package main

import (
	"os"

	"github.com/kysno/kysno/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

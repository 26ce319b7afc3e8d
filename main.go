package main

import (
	"os"

	"github.com/amrw/vokab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/priyamshah/greenroute/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/msto63/go-utils/cmd/goutils/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/abhisek/cracked/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

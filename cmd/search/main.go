package main

import (
	"os"

	"pathfinder-be/cmd/search/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

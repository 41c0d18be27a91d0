package main

import (
	"fmt"
	"os"

	"workhours/internal/cli"
)

func main() {
	// Configuration is loaded and storage opened once cobra has parsed the flags
	root := cli.NewRootCommand(cli.Connect)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"roster/cmd"
)

func main() {
	if err := cmd.Execute(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "roster run into an error: %s\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"abroadctl/internal/cmd"
	"abroadctl/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
		os.Exit(1)
	}
}

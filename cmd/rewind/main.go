package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/rewind/core"
)

func main() {
	// Restore the terminal before printing any panic from the main goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCmd(&options{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rewind: %v\n", err)
		os.Exit(1)
	}
}

//go:build !android

package main

import (
	"fmt"
	"os"

	"firstgame/internal/platform/desktop"
)

func main() {
	if err := desktop.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "firstgame: %v\n", err)
		os.Exit(1)
	}
}

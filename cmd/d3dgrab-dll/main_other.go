//go:build !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "d3dgrab-dll targets Windows; build with GOOS=windows -buildmode=c-shared")
	os.Exit(1)
}

package main

import (
	"fmt"
	"os"

	"whitelang/cmd/whitelang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

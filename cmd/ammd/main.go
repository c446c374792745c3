package main

import (
	"fmt"
	"os"

	"github.com/paw-chain/pawdex/cmd/ammd/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

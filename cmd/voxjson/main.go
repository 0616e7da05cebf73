// Package main is the entry point for the voxjson CLI.
//
// Usage:
//
//	voxjson [flags] <command> [args]
//
// Commands:
//
//	print-profile  - Print the fully-resolved profile settings
//	get            - Read one or more settings by dotted path
//	check-profile  - Check that the profile has its trained artifacts
//	fetch-profile  - Download missing profile assets from a store
//	version        - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/voxjson/voxjson/cmd/voxjson/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

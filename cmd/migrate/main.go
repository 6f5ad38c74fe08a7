// Command migrate applies or inspects the goose schema migrations.
//
// Usage:
//
//	migrate up|down|status|version [--config path]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

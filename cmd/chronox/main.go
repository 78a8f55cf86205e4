// File: main.go
// Title: chronox Command Entry Point
// Description: Runs the chronox command tree and exits with the status
//              derived from the error code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/msto63/chronox/cmd/chronox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

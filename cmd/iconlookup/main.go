// Package main provides the iconlookup CLI.
// Implements: freedesktop.org Icon Theme 0.13 (§ Icon Lookup).
package main

import "github.com/mesh-intelligence/iconlookup/internal/cli"

func main() {
	cli.Execute()
}

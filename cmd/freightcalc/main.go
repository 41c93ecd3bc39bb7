// Package main is the entry point for the freightcalc command line.
//
// Usage:
//
//	freightcalc calc --item 50x40x30:10:DHL
//	freightcalc convert 10 --from imperial --to metric
//	freightcalc carriers
package main

import "github.com/hapkiduki/freight-weight/internal/interfaces/cli"

// version is set at build time via ldflags
var version = "dev"

func main() {
	cli.Execute(version)
}

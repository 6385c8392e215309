// Package main is the entry point for unitconv.
package main

import (
	"github.com/samber/lo"
	"github.com/unitconv-cli/unitconv/cmd"
	"github.com/unitconv-cli/unitconv/config"
	"github.com/unitconv-cli/unitconv/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

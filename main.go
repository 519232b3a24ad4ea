// Package main is the entry point for the vimeolb application.
package main

import (
	"github.com/samber/lo"
	"github.com/vimeolb/vimeolb/cmd"
	"github.com/vimeolb/vimeolb/config"
	"github.com/vimeolb/vimeolb/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

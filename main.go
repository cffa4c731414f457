// Package main is the entry point for the gaiacore application.
package main

import (
	// Embedded timezone database for hosts shipping without zoneinfo.
	_ "time/tzdata"

	"github.com/gaiakodi/gaiacore/cmd"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/gaiakodi/gaiacore/settings"
	"github.com/gaiakodi/gaiacore/where"
	"github.com/samber/lo"
)

func main() {
	where.RegisterRoots()
	lo.Must0(settings.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

// Package main is the ordstat demo tool.
//
// It runs the two selectors on literal inputs:
//
//	ordstat kth --a 3,4,10,23 --b 3,3,15 --k 5
//	ordstat combos --list 3,4,5,15,19,20,25 --k 5 -o json
//
// Without flags each command runs on its built-in sample input.
package main

import (
	"os"

	"github.com/katalvlaran/ordstat/cmd/ordstat/cli"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	log.SetLevel(log.WarnLevel)
	app := kingpin.New("ordstat", "Order-statistic selection over sorted integer sequences.")
	if err := run(app); err != nil {
		log.WithError(err).Debug("Command failed.")
		cli.PrintError(err)
		os.Exit(255)
	}
}

func run(app *kingpin.Application) error {
	ordstat := cli.RegisterCommands(app)
	return cli.Run(ordstat, os.Args[1:], os.Stdout)
}

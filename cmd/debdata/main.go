package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

var opts struct {
	Verbose bool         `short:"v" long:"verbose" description:"log every archive entry"`
	Build   BuildCommand `command:"build" description:"build the data archive and copyright file of a package"`
}

// main is the entry point for the debdata CLI tool.
func main() {
	p := flags.NewParser(&opts, flags.Default)
	if _, err := p.Parse(); err != nil && !flags.WroteHelp(err) {
		os.Exit(1)
	}
}
